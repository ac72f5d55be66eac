package gsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexBinaryRoundtrip(t *testing.T) {
	hex := "0B915155214365F7"

	data, err := HexToBinary(hex)
	assert.NoError(t, err)

	actual := BinaryToHex(data)
	assert.Equal(t, hex, actual)
}

func TestHexToBinary_IgnoresWhitespace(t *testing.T) {
	data, err := HexToBinary("DE AD\tBE EF")
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, data)
}

func TestHexToBinary_LowercaseInput(t *testing.T) {
	data, err := HexToBinary("deadbeef")
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, data)
}

func TestHexToBinary_InvalidInput(t *testing.T) {
	_, err := HexToBinary("nothex")
	assert.Error(t, err)
}
