package tpdu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDataCodingScheme(t *testing.T) {
	tt := []struct {
		value    string
		expected Encoding
	}{
		{"00", EncodingGSM7},
		{"04", EncodingBinary},
		{"08", EncodingUCS2},
		{"0C", EncodingGSM7}, // reserved character set code
		{"F6", EncodingBinary},
		{"E8", EncodingUCS2},
		{"D0", EncodingGSM7}, // message waiting indication group
	}
	for _, tc := range tt {
		t.Run(tc.value, func(t *testing.T) {
			actual, err := ParseDataCodingScheme(NewReader(tc.value))
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestParseDataCodingScheme_AlwaysYieldsAKnownEncoding(t *testing.T) {
	for octet := 0; octet <= 0xFF; octet++ {
		t.Run(fmt.Sprintf("%02X", octet), func(t *testing.T) {
			actual, err := ParseDataCodingScheme(NewReader(fmt.Sprintf("%02X", octet)))
			assert.NoError(t, err)
			assert.Contains(t, []Encoding{EncodingGSM7, EncodingBinary, EncodingUCS2}, actual)
		})
	}
}

func TestParseDataCodingScheme_Empty(t *testing.T) {
	_, err := ParseDataCodingScheme(NewReader(""))
	assert.Error(t, err)
}
