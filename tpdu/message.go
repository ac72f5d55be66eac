package tpdu

import (
	"fmt"
	"time"

	"github.com/ftl/sms-tpdu/gsm"
)

// Deliver represents a decoded SMS-DELIVER TPDU according to [GSM0340] 9.2.2.1.
type Deliver struct {
	ServiceCenter ServiceCenterAddress
	Header        Header
	Sender        Address
	ProtocolID    byte
	Encoding      Encoding
	Timestamp     time.Time
	UserData      UserData
}

// ParseDeliver decodes an SMS-DELIVER TPDU from its hex representation. All
// fields are decoded in one pass over a shared cursor, the shape of each
// field depends on values decoded before it: the header flags select whether
// a user data header is present, the data coding scheme selects how the user
// data length is interpreted.
func ParseDeliver(pduHex string) (Deliver, error) {
	r := NewReader(pduHex)

	var result Deliver
	var err error

	result.ServiceCenter, err = ParseServiceCenterAddress(r)
	if err != nil {
		return Deliver{}, fmt.Errorf("cannot decode service centre address: %w", err)
	}
	result.Header, err = ParseHeader(r)
	if err != nil {
		return Deliver{}, fmt.Errorf("cannot decode header: %w", err)
	}
	result.Sender, err = ParseAddress(r)
	if err != nil {
		return Deliver{}, fmt.Errorf("cannot decode sender address: %w", err)
	}
	result.ProtocolID, err = r.ReadOctet()
	if err != nil {
		return Deliver{}, fmt.Errorf("cannot decode protocol identifier: %w", err)
	}
	result.Encoding, err = ParseDataCodingScheme(r)
	if err != nil {
		return Deliver{}, fmt.Errorf("cannot decode data coding scheme: %w", err)
	}

	timestamp, err := r.Read(14)
	if err != nil {
		return Deliver{}, fmt.Errorf("cannot decode service centre timestamp: %w", err)
	}
	result.Timestamp, err = gsm.DecodeTimestamp(timestamp)
	if err != nil {
		return Deliver{}, fmt.Errorf("cannot decode service centre timestamp: %w", err)
	}

	result.UserData, err = ParseUserData(r, result.Header.HasUserDataHeader, result.Encoding)
	if err != nil {
		return Deliver{}, fmt.Errorf("cannot decode user data: %w", err)
	}

	return result, nil
}

// Submit represents a decoded SMS-SUBMIT TPDU according to [GSM0340] 9.2.2.2.
type Submit struct {
	ServiceCenter    ServiceCenterAddress
	Header           OutgoingHeader
	MessageReference byte
	Recipient        Address
	ProtocolID       byte
	Encoding         Encoding
	ValidityPeriod   ValidityPeriod
	UserData         UserData
}

// ParseSubmit decodes an SMS-SUBMIT TPDU from its hex representation. The
// validity period format from the header selects which validity period
// representation is read, if any.
func ParseSubmit(pduHex string) (Submit, error) {
	r := NewReader(pduHex)

	var result Submit
	var err error

	result.ServiceCenter, err = ParseServiceCenterAddress(r)
	if err != nil {
		return Submit{}, fmt.Errorf("cannot decode service centre address: %w", err)
	}
	result.Header, err = ParseOutgoingHeader(r)
	if err != nil {
		return Submit{}, fmt.Errorf("cannot decode header: %w", err)
	}
	result.MessageReference, err = r.ReadOctet()
	if err != nil {
		return Submit{}, fmt.Errorf("cannot decode message reference: %w", err)
	}
	result.Recipient, err = ParseAddress(r)
	if err != nil {
		return Submit{}, fmt.Errorf("cannot decode recipient address: %w", err)
	}
	result.ProtocolID, err = r.ReadOctet()
	if err != nil {
		return Submit{}, fmt.Errorf("cannot decode protocol identifier: %w", err)
	}
	result.Encoding, err = ParseDataCodingScheme(r)
	if err != nil {
		return Submit{}, fmt.Errorf("cannot decode data coding scheme: %w", err)
	}
	result.ValidityPeriod, err = ParseValidityPeriod(r, result.Header.ValidityPeriodFormat)
	if err != nil {
		return Submit{}, fmt.Errorf("cannot decode validity period: %w", err)
	}
	result.UserData, err = ParseUserData(r, result.Header.HasUserDataHeader, result.Encoding)
	if err != nil {
		return Submit{}, fmt.Errorf("cannot decode user data: %w", err)
	}

	return result, nil
}
