package tpdu

import (
	"fmt"
	"log"

	"github.com/ftl/sms-tpdu/gsm"
)

// The information element identifiers that are interpreted during decoding,
// according to [GSM0340] 9.2.3.24. All other identifiers pass through raw.
const (
	ConcatenatedShortReference byte = 0x00
	ConcatenatedLongReference  byte = 0x08
)

// Concatenation carries the metadata needed to reassemble a concatenated
// message from its parts. Reassembly itself is up to the caller.
type Concatenation struct {
	Reference  uint16
	TotalParts byte
	PartNumber byte
}

// InformationElement is one tag-length-value element of the user data header.
// Data always holds the raw value in hex. Concatenation is set in addition
// when the identifier is one of the concatenation elements.
type InformationElement struct {
	ID            byte
	Length        int // length of the value in octets
	Data          string
	Concatenation *Concatenation
}

// ParseInformationElement decodes a single tag-length-value element.
func ParseInformationElement(r *Reader) (InformationElement, error) {
	id, err := r.ReadOctet()
	if err != nil {
		return InformationElement{}, fmt.Errorf("cannot read information element identifier: %w", err)
	}
	length, err := r.ReadOctet()
	if err != nil {
		return InformationElement{}, fmt.Errorf("cannot read information element length: %w", err)
	}
	data, err := r.Read(2 * int(length))
	if err != nil {
		return InformationElement{}, fmt.Errorf("cannot read information element value: %w", err)
	}

	result := InformationElement{
		ID:     id,
		Length: int(length),
		Data:   data,
	}

	switch id {
	case ConcatenatedShortReference:
		result.Concatenation, err = parseConcatenation(data, 1)
	case ConcatenatedLongReference:
		result.Concatenation, err = parseConcatenation(data, 2)
	}
	if err != nil {
		return InformationElement{}, fmt.Errorf("cannot decode concatenation element 0x%02x: %w", id, err)
	}

	return result, nil
}

func parseConcatenation(data string, referenceOctets int) (*Concatenation, error) {
	value := NewReader(data)

	var result Concatenation
	for i := 0; i < referenceOctets; i++ {
		octet, err := value.ReadOctet()
		if err != nil {
			return nil, err
		}
		result.Reference = result.Reference<<8 | uint16(octet)
	}

	var err error
	result.TotalParts, err = value.ReadOctet()
	if err != nil {
		return nil, err
	}
	result.PartNumber, err = value.ReadOctet()
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// UserDataHeader represents the in-band metadata prefix of the user data
// according to [GSM0340] 9.2.3.24.
type UserDataHeader struct {
	Length   int // number of octets following the length octet
	Elements []InformationElement
}

// Concatenation returns the concatenation metadata if this header carries a
// concatenation information element.
func (h UserDataHeader) Concatenation() (Concatenation, bool) {
	for _, element := range h.Elements {
		if element.Concatenation != nil {
			return *element.Concatenation, true
		}
	}
	return Concatenation{}, false
}

// ParseUserDataHeader decodes information elements until the cursor has
// advanced exactly the declared number of octets past the length octet.
func ParseUserDataHeader(r *Reader) (UserDataHeader, error) {
	length, err := r.ReadOctet()
	if err != nil {
		return UserDataHeader{}, fmt.Errorf("cannot read user data header length: %w", err)
	}

	var result UserDataHeader
	result.Length = int(length)

	end := r.Pos() + 2*int(length)
	for r.Pos() < end {
		element, err := ParseInformationElement(r)
		if err != nil {
			return UserDataHeader{}, err
		}
		result.Elements = append(result.Elements, element)
	}
	if r.Pos() != end {
		return UserDataHeader{}, fmt.Errorf("user data header elements overrun the declared length of %d octets", length)
	}

	return result, nil
}

// truncationMark is appended to the text of a truncated UCS-2 payload.
const truncationMark = "…"

// UserData represents the decoded payload of a TPDU.
type UserData struct {
	Header  *UserDataHeader // only set if the header indicator flag of the message was set
	Text    string          // the decoded text for the gsm7 and ucs2 encodings
	Binary  []byte          // the raw payload for the binary encoding
	Warning string          // a non-fatal decode anomaly, set when a UCS-2 payload was truncated
}

// ParseUserData decodes the user data field. hasHeader must be the header
// indicator flag decoded earlier in the same message, encoding the result of
// the data coding scheme: the unit of the length field depends on the
// encoding (septets for gsm7, octets otherwise), the presence of the user
// data header depends on the flag.
func ParseUserData(r *Reader, hasHeader bool, encoding Encoding) (UserData, error) {
	length, err := r.ReadOctet()
	if err != nil {
		return UserData{}, fmt.Errorf("cannot read user data length: %w", err)
	}
	start := r.Pos()

	var result UserData
	headerLength := 0
	if hasHeader {
		header, err := ParseUserDataHeader(r)
		if err != nil {
			return UserData{}, err
		}
		result.Header = &header
		headerLength = header.Length + 1 // the length octet itself
	}

	switch encoding {
	case EncodingBinary:
		if int(length) < headerLength {
			return UserData{}, fmt.Errorf("user data length %d is smaller than the header length %d", length, headerLength)
		}
		payload, err := r.Read(2 * (int(length) - headerLength))
		if err != nil {
			return UserData{}, fmt.Errorf("cannot read binary user data: %w", err)
		}
		result.Binary, err = gsm.HexToBinary(payload)
		if err != nil {
			return UserData{}, fmt.Errorf("cannot decode binary user data: %w", err)
		}
	case EncodingGSM7:
		// The septets are not octet aligned behind the header, so the whole
		// span including the header is decoded as one 7 bit stream and the
		// header characters are discarded afterwards.
		r.Seek(start)
		headerSeptets := headerLength * 8 / 7
		if (headerLength*8)%7 != 0 {
			headerSeptets++
		}
		payloadOctets := int(length) * 7 / 8
		if (int(length)*7)%8 != 0 {
			payloadOctets++
		}
		payload, err := r.Read(2 * payloadOctets)
		if err != nil {
			return UserData{}, fmt.Errorf("cannot read user data: %w", err)
		}
		text, err := gsm.Decode7Bit(payload)
		if err != nil {
			return UserData{}, fmt.Errorf("cannot decode user data: %w", err)
		}
		characters := []rune(text)
		from := headerSeptets
		if from > len(characters) {
			from = len(characters)
		}
		to := int(length)
		if to > len(characters) {
			to = len(characters)
		}
		if to < from {
			to = from
		}
		result.Text = string(characters[from:to])
	case EncodingUCS2:
		if int(length) < headerLength {
			return UserData{}, fmt.Errorf("user data length %d is smaller than the header length %d", length, headerLength)
		}
		expected := 2 * (int(length) - headerLength)
		payload := r.ReadAtMost(expected)
		if len(payload) < expected {
			// recoverable truncation: keep the complete 2 octet code units
			// and mark the cut instead of failing the whole decode
			complete := payload[:len(payload)-len(payload)%4]
			text, err := gsm.DecodeUCS2(complete)
			if err != nil {
				return UserData{}, fmt.Errorf("cannot decode UCS-2 user data: %w", err)
			}
			result.Text = text + truncationMark
			result.Warning = "truncated PDU: user data is shorter than specified by the user data length"
			log.Printf("got truncated UCS-2 user data, expected %d hex digits, but got %d", expected, len(payload))
		} else {
			text, err := gsm.DecodeUCS2(payload)
			if err != nil {
				return UserData{}, fmt.Errorf("cannot decode UCS-2 user data: %w", err)
			}
			result.Text = text
		}
	}

	return result, nil
}
