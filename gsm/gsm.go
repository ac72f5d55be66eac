package gsm

import (
	"encoding/hex"
	"regexp"
	"strings"
)

var hexSanitizer = regexp.MustCompile(`\s+`)

// HexToBinary converts the hex representation of a PDU into a slice of bytes
func HexToBinary(s string) ([]byte, error) {
	sanitized := hexSanitizer.ReplaceAllString(s, "")
	return hex.DecodeString(sanitized)
}

// BinaryToHex converts a slice of bytes into the hex representation of a PDU
func BinaryToHex(pdu []byte) string {
	return strings.ToUpper(hex.EncodeToString(pdu))
}
