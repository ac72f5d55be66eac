package gsm

import (
	"fmt"
	"time"
)

// DecodeTimestamp decodes the 7 octet service centre time stamp according to
// [GSM0340] 9.2.3.11. The time zone is returned as a fixed zone with the
// offset in quarters of an hour that the PDU carries.
func DecodeTimestamp(hexData string) (time.Time, error) {
	if len(hexData) != 14 {
		return time.Time{}, fmt.Errorf("a timestamp must be 14 hex digits long, got %d", len(hexData))
	}

	var fields [6]int
	for i := range fields {
		value, err := decodeBCDPair(hexData[2*i : 2*i+2])
		if err != nil {
			return time.Time{}, err
		}
		fields[i] = value
	}

	zone, err := decodeTimeZone(hexData[12:14])
	if err != nil {
		return time.Time{}, err
	}

	year := 2000 + fields[0]
	return time.Date(year, time.Month(fields[1]), fields[2], fields[3], fields[4], fields[5], 0, zone), nil
}

// decodeBCDPair reads one semi-octet as a two digit decimal number.
func decodeBCDPair(pair string) (int, error) {
	tens := digitValue(pair[1])
	units := digitValue(pair[0])
	if tens < 0 || tens > 9 || units < 0 || units > 9 {
		return 0, fmt.Errorf("invalid BCD pair %q in timestamp", pair)
	}
	return tens*10 + units, nil
}

// decodeTimeZone interprets the last timestamp octet. Bit 3 of the octet as
// transmitted carries the algebraic sign, the remaining nibbles are the offset
// in quarters of an hour, semi-octet swapped like the other fields.
func decodeTimeZone(pair string) (*time.Location, error) {
	high := digitValue(pair[0])
	low := digitValue(pair[1])
	if high < 0 || low < 0 {
		return nil, fmt.Errorf("invalid time zone %q in timestamp", pair)
	}

	negative := low&0x8 != 0
	tens := low & 0x7
	units := high
	if tens > 9 || units > 9 {
		return nil, fmt.Errorf("invalid time zone %q in timestamp", pair)
	}

	quarterHours := tens*10 + units
	offset := quarterHours * 15 * 60
	sign := "+"
	if negative {
		offset = -offset
		sign = "-"
	}
	name := fmt.Sprintf("%s%02d:%02d", sign, quarterHours/4, (quarterHours%4)*15)
	return time.FixedZone(name, offset), nil
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}
