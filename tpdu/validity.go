package tpdu

import (
	"fmt"
	"time"

	"github.com/ftl/sms-tpdu/gsm"
)

// ValidityPeriodFormat is the 2 bit TP-VPF field of an outgoing header
// according to [GSM0340] 9.2.3.3.
type ValidityPeriodFormat byte

// All validity period formats
const (
	ValidityPeriodAbsent   ValidityPeriodFormat = 0b00
	ValidityPeriodEnhanced ValidityPeriodFormat = 0b01
	ValidityPeriodRelative ValidityPeriodFormat = 0b10
	ValidityPeriodAbsolute ValidityPeriodFormat = 0b11
)

// ValidityPeriod represents the validity period of a submitted message
// according to [GSM0340] 9.2.3.12. Format selects which of the other fields
// is meaningful: Duration for the relative format, Until for the absolute
// format. The enhanced format is not interpreted, its fixed 7 octet span is
// skipped during decoding.
type ValidityPeriod struct {
	Format   ValidityPeriodFormat
	Duration time.Duration
	Until    time.Time
}

// Present indicates if the message carries a validity period.
func (p ValidityPeriod) Present() bool {
	return p.Format != ValidityPeriodAbsent
}

// ParseValidityPeriod reads the validity period representation selected by
// the given format code. The absent format consumes nothing.
func ParseValidityPeriod(r *Reader, format ValidityPeriodFormat) (ValidityPeriod, error) {
	result := ValidityPeriod{Format: format}
	switch format {
	case ValidityPeriodAbsent:
	case ValidityPeriodRelative:
		octet, err := r.ReadOctet()
		if err != nil {
			return ValidityPeriod{}, fmt.Errorf("cannot read relative validity period: %w", err)
		}
		result.Duration = RelativeValidityPeriod(octet)
	case ValidityPeriodAbsolute:
		data, err := r.Read(14)
		if err != nil {
			return ValidityPeriod{}, fmt.Errorf("cannot read absolute validity period: %w", err)
		}
		result.Until, err = gsm.DecodeTimestamp(data)
		if err != nil {
			return ValidityPeriod{}, fmt.Errorf("cannot decode absolute validity period: %w", err)
		}
	default: // the enhanced format is not supported, skip its fixed span
		if _, err := r.Read(14); err != nil {
			return ValidityPeriod{}, fmt.Errorf("cannot skip enhanced validity period: %w", err)
		}
	}
	return result, nil
}

// RelativeValidityPeriod maps the relative validity period octet to a
// duration according to [GSM0340] table 9.2.3.12.1.
func RelativeValidityPeriod(value byte) time.Duration {
	switch {
	case value <= 143:
		return time.Duration(value) * 5 * time.Minute
	case value <= 167:
		return 12*time.Hour + time.Duration(value-143)*30*time.Minute
	case value <= 196:
		return time.Duration(value-166) * 24 * time.Hour
	default:
		return time.Duration(value-192) * 7 * 24 * time.Hour
	}
}
