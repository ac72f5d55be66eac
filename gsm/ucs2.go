package gsm

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

// ucs2Codec actually uses the UTF-16 extension of UCS-2 and does not warn if
// some characters are out of the pure UCS-2 charset range.
var ucs2Codec = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// DecodeUCS2 decodes UCS-2 text from its hex representation.
func DecodeUCS2(hexData string) (string, error) {
	data, err := HexToBinary(hexData)
	if err != nil {
		return "", fmt.Errorf("cannot decode hex UCS-2 data: %w", err)
	}

	utf8, err := ucs2Codec.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("cannot decode UCS-2 data: %w", err)
	}
	return string(utf8), nil
}

// EncodeUCS2 encodes the given text as UCS-2 and returns its hex representation.
func EncodeUCS2(text string) (string, error) {
	data, err := ucs2Codec.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return "", fmt.Errorf("cannot encode UCS-2 data: %w", err)
	}
	return BinaryToHex(data), nil
}
