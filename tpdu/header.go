package tpdu

import (
	"fmt"
)

// MessageType is the 2 bit message type indicator (TP-MTI). The same codes
// mean different things depending on the transfer direction, the direction of
// the parsed header disambiguates them.
type MessageType byte

// All message type indicators according to [GSM0340] 9.2.3.1
const (
	// incoming (SC to MS)

	MessageTypeDeliver      MessageType = 0b00
	MessageTypeSubmitReport MessageType = 0b01
	MessageTypeStatusReport MessageType = 0b10

	// outgoing (MS to SC)

	MessageTypeSubmit MessageType = 0b01
	MessageTypeStatus MessageType = 0b10
)

// invalidMessageType is the one unassigned TP-MTI code, in both directions.
const invalidMessageType byte = 0b11

// Header represents the first octet of an incoming TPDU according to
// [GSM0340] 9.2.2.1.
type Header struct {
	ReplyPath              bool
	HasUserDataHeader      bool
	StatusReportIndication bool
	LoopPrevention         bool
	MoreMessagesToSend     bool
	MessageType            MessageType
}

// ParseHeader decodes the flag octet of an incoming TPDU. The only failure
// condition besides running out of data is the unassigned message type code.
func ParseHeader(r *Reader) (Header, error) {
	octet, err := r.ReadOctet()
	if err != nil {
		return Header{}, fmt.Errorf("cannot read header octet: %w", err)
	}

	var result Header
	bits := NewBitReader(octet)
	result.ReplyPath = bits.Bool()
	result.HasUserDataHeader = bits.Bool()
	result.StatusReportIndication = bits.Bool()
	bits.Skip(1)
	result.LoopPrevention = bits.Bool()
	result.MoreMessagesToSend = bits.Bool()

	mti := bits.Uint(2)
	if mti == invalidMessageType {
		return Header{}, fmt.Errorf("invalid message type indicator 0b%02b", mti)
	}
	result.MessageType = MessageType(mti)

	return result, nil
}

// OutgoingHeader represents the first octet of an outgoing TPDU according to
// [GSM0340] 9.2.2.2.
type OutgoingHeader struct {
	ReplyPath            bool
	HasUserDataHeader    bool
	StatusReportRequest  bool
	ValidityPeriodFormat ValidityPeriodFormat
	RejectDuplicates     bool
	MessageType          MessageType
}

// ParseOutgoingHeader decodes the flag octet of an outgoing TPDU.
func ParseOutgoingHeader(r *Reader) (OutgoingHeader, error) {
	octet, err := r.ReadOctet()
	if err != nil {
		return OutgoingHeader{}, fmt.Errorf("cannot read header octet: %w", err)
	}

	var result OutgoingHeader
	bits := NewBitReader(octet)
	result.ReplyPath = bits.Bool()
	result.HasUserDataHeader = bits.Bool()
	result.StatusReportRequest = bits.Bool()
	result.ValidityPeriodFormat = ValidityPeriodFormat(bits.Uint(2))
	result.RejectDuplicates = bits.Bool()

	mti := bits.Uint(2)
	if mti == invalidMessageType {
		return OutgoingHeader{}, fmt.Errorf("invalid message type indicator 0b%02b", mti)
	}
	result.MessageType = MessageType(mti)

	return result, nil
}
