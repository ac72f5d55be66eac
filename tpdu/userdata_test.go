package tpdu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInformationElement(t *testing.T) {
	tt := []struct {
		desc     string
		value    string
		expected InformationElement
		invalid  bool
	}{
		{
			desc:  "concatenation with short reference",
			value: "0003C90201",
			expected: InformationElement{
				ID:     ConcatenatedShortReference,
				Length: 3,
				Data:   "C90201",
				Concatenation: &Concatenation{
					Reference:  0xC9,
					TotalParts: 2,
					PartNumber: 1,
				},
			},
		},
		{
			desc:  "concatenation with long reference",
			value: "0804C9CA0302",
			expected: InformationElement{
				ID:     ConcatenatedLongReference,
				Length: 4,
				Data:   "C9CA0302",
				Concatenation: &Concatenation{
					Reference:  0xC9CA,
					TotalParts: 3,
					PartNumber: 2,
				},
			},
		},
		{
			desc:  "unrecognized tag passes through raw",
			value: "700411223344",
			expected: InformationElement{
				ID:     0x70,
				Length: 4,
				Data:   "11223344",
			},
		},
		{
			desc:    "value too short for the declared length",
			value:   "0003C902",
			invalid: true,
		},
		{
			desc:    "concatenation value too short",
			value:   "0002C902",
			invalid: true,
		},
		{
			desc:    "empty",
			value:   "",
			invalid: true,
		},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			actual, err := ParseInformationElement(NewReader(tc.value))
			if tc.invalid {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, actual)
			}
		})
	}
}

func TestParseUserDataHeader(t *testing.T) {
	tt := []struct {
		desc     string
		value    string
		expected UserDataHeader
		invalid  bool
	}{
		{
			desc:  "single concatenation element",
			value: "050003C90201",
			expected: UserDataHeader{
				Length: 5,
				Elements: []InformationElement{
					{
						ID:     ConcatenatedShortReference,
						Length: 3,
						Data:   "C90201",
						Concatenation: &Concatenation{
							Reference:  0xC9,
							TotalParts: 2,
							PartNumber: 1,
						},
					},
				},
			},
		},
		{
			desc:  "multiple elements",
			value: "0A0003C902017003112233",
			expected: UserDataHeader{
				Length: 10,
				Elements: []InformationElement{
					{
						ID:     ConcatenatedShortReference,
						Length: 3,
						Data:   "C90201",
						Concatenation: &Concatenation{
							Reference:  0xC9,
							TotalParts: 2,
							PartNumber: 1,
						},
					},
					{
						ID:     0x70,
						Length: 3,
						Data:   "112233",
					},
				},
			},
		},
		{
			desc:  "empty header",
			value: "00",
			expected: UserDataHeader{
				Length: 0,
			},
		},
		{
			desc:    "element overruns the declared header length",
			value:   "040003C90201",
			invalid: true,
		},
		{
			desc:    "header length exceeds the available data",
			value:   "050003C902",
			invalid: true,
		},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			actual, err := ParseUserDataHeader(NewReader(tc.value))
			if tc.invalid {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, actual)
			}
		})
	}
}

func TestUserDataHeaderConcatenation(t *testing.T) {
	header, err := ParseUserDataHeader(NewReader("050003C90201"))
	assert.NoError(t, err)

	concatenation, ok := header.Concatenation()
	assert.True(t, ok)
	assert.Equal(t, Concatenation{Reference: 0xC9, TotalParts: 2, PartNumber: 1}, concatenation)

	header, err = ParseUserDataHeader(NewReader("057003112233"))
	assert.NoError(t, err)

	_, ok = header.Concatenation()
	assert.False(t, ok)
}

func TestParseUserData(t *testing.T) {
	tt := []struct {
		desc      string
		value     string
		hasHeader bool
		encoding  Encoding
		expected  UserData
		invalid   bool
	}{
		{
			desc:     "gsm7 without header",
			value:    "0CC8F71D14969741F977FD07",
			encoding: EncodingGSM7,
			expected: UserData{
				Text: "How are you?",
			},
		},
		{
			desc:      "gsm7 with concatenation header",
			value:     "11050003C90201D06536FB8D2EB3D96F",
			hasHeader: true,
			encoding:  EncodingGSM7,
			expected: UserData{
				Header: &UserDataHeader{
					Length: 5,
					Elements: []InformationElement{
						{
							ID:     ConcatenatedShortReference,
							Length: 3,
							Data:   "C90201",
							Concatenation: &Concatenation{
								Reference:  0xC9,
								TotalParts: 2,
								PartNumber: 1,
							},
						},
					},
				},
				Text: "hellohello",
			},
		},
		{
			desc:     "gsm7 empty",
			value:    "00",
			encoding: EncodingGSM7,
			expected: UserData{},
		},
		{
			desc:     "ucs2 complete",
			value:    "16004C006F00720065006D00200049007000730075006D",
			encoding: EncodingUCS2,
			expected: UserData{
				Text: "Lorem Ipsum",
			},
		},
		{
			desc:     "ucs2 truncated decodes the available prefix",
			value:    "44597D70E6597D70E651CF80A551CF80A55C",
			encoding: EncodingUCS2,
			expected: UserData{
				Text:    "好烦好烦减肥减肥…",
				Warning: "truncated PDU: user data is shorter than specified by the user data length",
			},
		},
		{
			desc:     "binary",
			value:    "04DEADBEEF",
			encoding: EncodingBinary,
			expected: UserData{
				Binary: []byte{0xDE, 0xAD, 0xBE, 0xEF},
			},
		},
		{
			desc:      "binary with header",
			value:     "0A050003C90201DEADBEEF",
			hasHeader: true,
			encoding:  EncodingBinary,
			expected: UserData{
				Header: &UserDataHeader{
					Length: 5,
					Elements: []InformationElement{
						{
							ID:     ConcatenatedShortReference,
							Length: 3,
							Data:   "C90201",
							Concatenation: &Concatenation{
								Reference:  0xC9,
								TotalParts: 2,
								PartNumber: 1,
							},
						},
					},
				},
				Binary: []byte{0xDE, 0xAD, 0xBE, 0xEF},
			},
		},
		{
			desc:     "binary truncated fails",
			value:    "04DEAD",
			encoding: EncodingBinary,
			invalid:  true,
		},
		{
			desc:     "gsm7 truncated fails",
			value:    "0CC8F71D14",
			encoding: EncodingGSM7,
			invalid:  true,
		},
		{
			desc:      "declared length smaller than the header span",
			value:     "02050003C90201",
			hasHeader: true,
			encoding:  EncodingUCS2,
			invalid:   true,
		},
		{
			desc:    "empty",
			value:   "",
			invalid: true,
		},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			actual, err := ParseUserData(NewReader(tc.value), tc.hasHeader, tc.encoding)
			if tc.invalid {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, actual)
			}
		})
	}
}
