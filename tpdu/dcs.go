package tpdu

import (
	"fmt"
)

// Encoding identifies the character encoding of the user data.
type Encoding byte

// All encodings distinguished by the data coding scheme
const (
	EncodingGSM7 Encoding = iota
	EncodingBinary
	EncodingUCS2
)

// ParseDataCodingScheme reads the TP-DCS octet and derives the user data
// encoding from its 2 bit character set field according to [GSM0338] 4.
// This is a simplification of the full coding group table: groups that select
// neither 8 bit data nor UCS-2 (message waiting indications among them)
// collapse to the 7 bit default alphabet, so the result is always one of the
// three encodings.
func ParseDataCodingScheme(r *Reader) (Encoding, error) {
	octet, err := r.ReadOctet()
	if err != nil {
		return 0, fmt.Errorf("cannot read data coding scheme: %w", err)
	}

	switch (octet & 0b1100) >> 2 {
	case 1:
		return EncodingBinary, nil
	case 2:
		return EncodingUCS2, nil
	default:
		return EncodingGSM7, nil
	}
}
