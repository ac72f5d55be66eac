package gsm

import (
	"fmt"
	"strings"
)

// alphabet contains the GSM 7 bit default alphabet according to [GSM0338] 6.2.1,
// indexed by the septet value.
var alphabet = []rune("@£$¥èéùìòÇ\nØø\rÅåΔ_ΦΓΛΩΠΨΣΘΞ\x1bÆæßÉ !\"#¤%&'()*+,-./0123456789:;<=>?" +
	"¡ABCDEFGHIJKLMNOPQRSTUVWXYZÄÖÑÜ§¿abcdefghijklmnopqrstuvwxyzäöñüà")

// extensionAlphabet contains the default alphabet extension table according to
// [GSM0338] 6.2.1.1. It is reached through the escape septet.
var extensionAlphabet = map[byte]rune{
	0x0A: '\f',
	0x14: '^',
	0x28: '{',
	0x29: '}',
	0x2F: '\\',
	0x3C: '[',
	0x3D: '~',
	0x3E: ']',
	0x40: '|',
	0x65: '€',
}

// escapeSeptet announces a character from the extension table.
const escapeSeptet byte = 0x1B

// paddingCharacter fills the 7 spare bits at the end of the last octet when
// the encoded text is 8n+7 septets long, see [GSM0338] 6.1.2.3.1.
const paddingCharacter = '\r'

var alphabetIndex map[rune]byte
var extensionIndex map[rune]byte

func init() {
	alphabetIndex = make(map[rune]byte, len(alphabet))
	for i, r := range alphabet {
		alphabetIndex[r] = byte(i)
	}
	delete(alphabetIndex, rune(escapeSeptet))

	extensionIndex = make(map[rune]byte, len(extensionAlphabet))
	for septet, r := range extensionAlphabet {
		extensionIndex[r] = septet
	}
}

// Decode7Bit decodes text in the packed 7 bit default alphabet from its hex
// representation. Unknown extension table codes decode to a space.
func Decode7Bit(hexData string) (string, error) {
	data, err := HexToBinary(hexData)
	if err != nil {
		return "", fmt.Errorf("cannot decode hex 7 bit data: %w", err)
	}

	septets := unpackSeptets(data)
	var result strings.Builder
	extended := false
	for _, septet := range septets {
		if septet == escapeSeptet {
			extended = true
			continue
		}
		if extended {
			extended = false
			r, ok := extensionAlphabet[septet]
			if !ok {
				r = ' '
			}
			result.WriteRune(r)
		} else {
			result.WriteRune(alphabet[septet])
		}
	}
	return result.String(), nil
}

// Decode7BitPadded works like Decode7Bit, but removes a trailing padding
// character if the septet count indicates that one was used.
func Decode7BitPadded(hexData string) (string, error) {
	data, err := HexToBinary(hexData)
	if err != nil {
		return "", fmt.Errorf("cannot decode hex 7 bit data: %w", err)
	}

	septetCount := len(data) * 8 / 7
	result, err := Decode7Bit(hexData)
	if err != nil {
		return "", err
	}
	if septetCount%8 == 0 && strings.HasSuffix(result, string(paddingCharacter)) {
		result = result[:len(result)-1]
	}
	return result, nil
}

// Encode7Bit encodes the given text in the packed 7 bit default alphabet and
// returns its hex representation.
func Encode7Bit(text string) (string, error) {
	septets, err := textToSeptets(text)
	if err != nil {
		return "", err
	}
	return BinaryToHex(packSeptets(septets)), nil
}

// Encode7BitPadded works like Encode7Bit, but appends a padding character if
// the encoded text would end with 7 spare bits, or if it ends with the padding
// character on an octet boundary.
func Encode7BitPadded(text string) (string, error) {
	septets, err := textToSeptets(text)
	if err != nil {
		return "", err
	}
	if len(septets)%8 == 0 && strings.HasSuffix(text, string(paddingCharacter)) {
		septets = append(septets, alphabetIndex[paddingCharacter])
	}
	if len(septets)%8 == 7 {
		septets = append(septets, alphabetIndex[paddingCharacter])
	}
	return BinaryToHex(packSeptets(septets)), nil
}

func textToSeptets(text string) ([]byte, error) {
	result := make([]byte, 0, len(text))
	for _, r := range text {
		if septet, ok := alphabetIndex[r]; ok {
			result = append(result, septet)
			continue
		}
		if septet, ok := extensionIndex[r]; ok {
			result = append(result, escapeSeptet, septet)
			continue
		}
		return nil, fmt.Errorf("character %q cannot be encoded with the GSM 7 bit default alphabet", r)
	}
	return result, nil
}

func unpackSeptets(data []byte) []byte {
	result := make([]byte, 0, len(data)*8/7)
	var accumulator uint16
	var bits uint
	for _, octet := range data {
		accumulator |= uint16(octet) << bits
		bits += 8
		for bits >= 7 {
			result = append(result, byte(accumulator&0x7F))
			accumulator >>= 7
			bits -= 7
		}
	}
	return result
}

func packSeptets(septets []byte) []byte {
	result := make([]byte, 0, (len(septets)*7+7)/8)
	var accumulator uint16
	var bits uint
	for _, septet := range septets {
		accumulator |= uint16(septet&0x7F) << bits
		bits += 7
		for bits >= 8 {
			result = append(result, byte(accumulator))
			accumulator >>= 8
			bits -= 8
		}
	}
	if bits > 0 {
		result = append(result, byte(accumulator))
	}
	return result
}
