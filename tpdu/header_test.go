package tpdu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHeader(t *testing.T) {
	tt := []struct {
		desc     string
		value    string
		expected Header
		invalid  bool
	}{
		{
			desc:  "deliver with user data header and more messages",
			value: "44",
			expected: Header{
				ReplyPath:              false,
				HasUserDataHeader:      true,
				StatusReportIndication: false,
				LoopPrevention:         false,
				MoreMessagesToSend:     true,
				MessageType:            MessageTypeDeliver,
			},
		},
		{
			desc:  "deliver with status report indication",
			value: "24",
			expected: Header{
				StatusReportIndication: true,
				MoreMessagesToSend:     true,
				MessageType:            MessageTypeDeliver,
			},
		},
		{
			desc:  "submit report",
			value: "01",
			expected: Header{
				MessageType: MessageTypeSubmitReport,
			},
		},
		{
			desc:  "status report with reply path and loop prevention",
			value: "8A",
			expected: Header{
				ReplyPath:      true,
				LoopPrevention: true,
				MessageType:    MessageTypeStatusReport,
			},
		},
		{
			desc:    "unassigned message type code",
			value:   "03",
			invalid: true,
		},
		{
			desc:    "unassigned message type code with all flags set",
			value:   "FF",
			invalid: true,
		},
		{
			desc:    "empty",
			value:   "",
			invalid: true,
		},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			actual, err := ParseHeader(NewReader(tc.value))
			if tc.invalid {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, actual)
			}
		})
	}
}

func TestParseOutgoingHeader(t *testing.T) {
	tt := []struct {
		desc     string
		value    string
		expected OutgoingHeader
		invalid  bool
	}{
		{
			desc:  "submit with relative validity period",
			value: "11",
			expected: OutgoingHeader{
				ValidityPeriodFormat: ValidityPeriodRelative,
				MessageType:          MessageTypeSubmit,
			},
		},
		{
			desc:  "submit without validity period",
			value: "01",
			expected: OutgoingHeader{
				ValidityPeriodFormat: ValidityPeriodAbsent,
				MessageType:          MessageTypeSubmit,
			},
		},
		{
			desc:  "submit with absolute validity period and status report request",
			value: "39",
			expected: OutgoingHeader{
				StatusReportRequest:  true,
				ValidityPeriodFormat: ValidityPeriodAbsolute,
				MessageType:          MessageTypeSubmit,
			},
		},
		{
			desc:  "submit with reject duplicates",
			value: "05",
			expected: OutgoingHeader{
				RejectDuplicates: true,
				MessageType:      MessageTypeSubmit,
			},
		},
		{
			desc:  "outgoing status",
			value: "02",
			expected: OutgoingHeader{
				MessageType: MessageTypeStatus,
			},
		},
		{
			desc:    "unassigned message type code",
			value:   "03",
			invalid: true,
		},
		{
			desc:    "empty",
			value:   "",
			invalid: true,
		},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			actual, err := ParseOutgoingHeader(NewReader(tc.value))
			if tc.invalid {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, actual)
			}
		})
	}
}
