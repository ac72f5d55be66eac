package tpdu

import (
	"fmt"

	"github.com/ftl/sms-tpdu/gsm"
)

// TypeOfNumber enum according to [GSM0340] 9.1.2.5
type TypeOfNumber byte

// All defined TypeOfNumber values
const (
	UnknownNumber TypeOfNumber = iota
	InternationalNumber
	NationalNumber
	NetworkSpecificNumber
	SubscriberNumber
	AlphanumericNumber
	AbbreviatedNumber
	ReservedNumber
)

// NumberingPlan enum according to [GSM0340] 9.1.2.5
type NumberingPlan byte

// All numbering plan identifications relevant for SMS handling
const (
	UnknownPlan  NumberingPlan = 0x00
	ISDNPlan     NumberingPlan = 0x01
	DataPlan     NumberingPlan = 0x03
	TelexPlan    NumberingPlan = 0x04
	NationalPlan NumberingPlan = 0x08
	PrivatePlan  NumberingPlan = 0x09
	ERMESPlan    NumberingPlan = 0x0A
)

// TypeOfAddress describes the numbering scheme of an address field.
type TypeOfAddress struct {
	TON TypeOfNumber
	NPI NumberingPlan
}

// ParseTypeOfAddress splits a type of address octet into the type of number
// and the numbering plan identification.
func ParseTypeOfAddress(octet byte) TypeOfAddress {
	return TypeOfAddress{
		TON: TypeOfNumber((octet >> 4) & 0x07),
		NPI: NumberingPlan(octet & 0x0F),
	}
}

// Address represents an originating or destination address according to
// [GSM0340] 9.1.2.5. Typically a telephone number, or an alphanumeric
// identifier.
type Address struct {
	Length int // number of digits in the address
	Type   TypeOfAddress
	Number string
}

// ParseAddress decodes an address field. The leading length octet counts
// digits, not octets: the number payload spans ceil(length/2) octets
// regardless of the type of address. An alphanumeric payload is decoded
// through the 7 bit default alphabet over that whole span.
func ParseAddress(r *Reader) (Address, error) {
	length, err := r.ReadOctet()
	if err != nil {
		return Address{}, fmt.Errorf("cannot read address length: %w", err)
	}
	toaOctet, err := r.ReadOctet()
	if err != nil {
		return Address{}, fmt.Errorf("cannot read type of address: %w", err)
	}

	var result Address
	result.Length = int(length)
	result.Type = ParseTypeOfAddress(toaOctet)

	payload, err := r.Read(int(length) + int(length)%2)
	if err != nil {
		return Address{}, fmt.Errorf("cannot read address payload: %w", err)
	}

	result.Number, err = decodeAddressPayload(result.Type, payload)
	if err != nil {
		return Address{}, err
	}
	if result.Type.TON != AlphanumericNumber && len(result.Number) > result.Length {
		// an odd digit count leaves a filler nibble that is not part of the number
		result.Number = result.Number[:result.Length]
	}

	return result, nil
}

// ServiceCenterAddress represents the SMSC information prefixed to a TPDU
// according to [GSM0340] 8.2.5.2. A zero length indicates that no service
// centre address is present.
type ServiceCenterAddress struct {
	Length int // number of octets covering the type of address and the number
	Type   TypeOfAddress
	Number string
}

// Present indicates if a service centre address was included in the PDU.
func (a ServiceCenterAddress) Present() bool {
	return a.Length > 0
}

// ParseServiceCenterAddress decodes the SMSC information. In contrast to
// ParseAddress the length octet counts octets, not digits. A zero length
// yields the absent sentinel without any further reads.
func ParseServiceCenterAddress(r *Reader) (ServiceCenterAddress, error) {
	length, err := r.ReadOctet()
	if err != nil {
		return ServiceCenterAddress{}, fmt.Errorf("cannot read service centre address length: %w", err)
	}
	if length == 0 {
		return ServiceCenterAddress{}, nil
	}

	toaOctet, err := r.ReadOctet()
	if err != nil {
		return ServiceCenterAddress{}, fmt.Errorf("cannot read type of address: %w", err)
	}

	var result ServiceCenterAddress
	result.Length = int(length)
	result.Type = ParseTypeOfAddress(toaOctet)

	payload, err := r.Read(2 * (int(length) - 1))
	if err != nil {
		return ServiceCenterAddress{}, fmt.Errorf("cannot read service centre address payload: %w", err)
	}

	result.Number, err = decodeAddressPayload(result.Type, payload)
	if err != nil {
		return ServiceCenterAddress{}, err
	}

	return result, nil
}

func decodeAddressPayload(toa TypeOfAddress, payload string) (string, error) {
	if toa.TON == AlphanumericNumber {
		number, err := gsm.Decode7Bit(payload)
		if err != nil {
			return "", fmt.Errorf("cannot decode alphanumeric address: %w", err)
		}
		return number, nil
	}

	number, err := gsm.DecodeDigits(payload)
	if err != nil {
		return "", fmt.Errorf("cannot decode address digits: %w", err)
	}
	return number, nil
}
