package gsm

import (
	"fmt"
	"strings"
)

// DecodeDigits decodes a semi-octet encoded digit string according to
// [GSM0340] 9.1.2.3. The nibbles of each octet are swapped back into reading
// order, a trailing filler nibble is dropped.
func DecodeDigits(hexData string) (string, error) {
	if len(hexData)%2 != 0 {
		return "", fmt.Errorf("semi-octet data must contain an even number of hex digits, got %d", len(hexData))
	}

	var swapped strings.Builder
	swapped.Grow(len(hexData))
	for i := 0; i+1 < len(hexData); i += 2 {
		if !isHexDigit(hexData[i]) || !isHexDigit(hexData[i+1]) {
			return "", fmt.Errorf("invalid semi-octet data %q", hexData[i:i+2])
		}
		swapped.WriteByte(hexData[i+1])
		swapped.WriteByte(hexData[i])
	}

	return strings.TrimRight(strings.ToUpper(swapped.String()), "F"), nil
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	default:
		return false
	}
}
