package valueobject

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MonthKey identifies a billing month. Its wire and storage form is the
// two-digit "MM_YYYY" string used as receipt identifier and object-store path
// segment throughout the system.
type MonthKey struct {
	month int
	year  int
}

// ErrInvalidMonthKey indicates a malformed "MM_YYYY" string
var ErrInvalidMonthKey = errors.New("invalid month key, expected MM_YYYY")

// NewMonthKey creates a MonthKey from numeric month and year
func NewMonthKey(month, year int) (MonthKey, error) {
	if month < 1 || month > 12 {
		return MonthKey{}, fmt.Errorf("month out of range: %d", month)
	}
	if year < 1 {
		return MonthKey{}, fmt.Errorf("year out of range: %d", year)
	}
	return MonthKey{month: month, year: year}, nil
}

// ParseMonthKey parses a "MM_YYYY" string into a MonthKey.
// Returns ErrInvalidMonthKey for anything that is not a two-part numeric key.
func ParseMonthKey(s string) (MonthKey, error) {
	parts := strings.Split(s, "_")
	if len(parts) != 2 {
		return MonthKey{}, ErrInvalidMonthKey
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil {
		return MonthKey{}, ErrInvalidMonthKey
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return MonthKey{}, ErrInvalidMonthKey
	}
	if month < 1 || month > 12 || year < 1 {
		return MonthKey{}, ErrInvalidMonthKey
	}
	return MonthKey{month: month, year: year}, nil
}

// MonthKeyFromTime returns the MonthKey for the month containing t
func MonthKeyFromTime(t time.Time) MonthKey {
	return MonthKey{month: int(t.Month()), year: t.Year()}
}

// Month returns the calendar month (1-12)
func (k MonthKey) Month() int {
	return k.month
}

// Year returns the calendar year
func (k MonthKey) Year() int {
	return k.year
}

// IsZero returns true for the zero MonthKey
func (k MonthKey) IsZero() bool {
	return k.month == 0 && k.year == 0
}

// String returns the canonical "MM_YYYY" form
func (k MonthKey) String() string {
	return fmt.Sprintf("%02d_%04d", k.month, k.year)
}

// Before reports whether k is strictly earlier than other
func (k MonthKey) Before(other MonthKey) bool {
	if k.year != other.year {
		return k.year < other.year
	}
	return k.month < other.month
}

// Equal reports whether both keys name the same month
func (k MonthKey) Equal(other MonthKey) bool {
	return k.month == other.month && k.year == other.year
}

// Next returns the following calendar month
func (k MonthKey) Next() MonthKey {
	if k.month == 12 {
		return MonthKey{month: 1, year: k.year + 1}
	}
	return MonthKey{month: k.month + 1, year: k.year}
}

// PaymentTrackingCutoff is the first month for which receipt payment status is
// derived from payment records. Every receipt before it is treated as settled
// historical data.
var PaymentTrackingCutoff = MonthKey{month: 7, year: 2025}

// Eligible reports whether receipts for this month participate in dynamic
// payment tracking, i.e. the month is on or after the cutoff.
func (k MonthKey) Eligible() bool {
	return !k.Before(PaymentTrackingCutoff)
}

// IsEligibleKey parses a raw month key and reports eligibility.
// Malformed keys are never eligible.
func IsEligibleKey(s string) bool {
	k, err := ParseMonthKey(s)
	if err != nil {
		return false
	}
	return k.Eligible()
}

// MarshalJSON implements json.Marshaler
func (k MonthKey) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(k.String())), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (k *MonthKey) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return ErrInvalidMonthKey
	}
	parsed, err := ParseMonthKey(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Value implements driver.Valuer for storage as "MM_YYYY"
func (k MonthKey) Value() (driver.Value, error) {
	return k.String(), nil
}

// Scan implements sql.Scanner
func (k *MonthKey) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		parsed, err := ParseMonthKey(v)
		if err != nil {
			return err
		}
		*k = parsed
		return nil
	case []byte:
		parsed, err := ParseMonthKey(string(v))
		if err != nil {
			return err
		}
		*k = parsed
		return nil
	default:
		return fmt.Errorf("failed to scan MonthKey: unsupported type %T", value)
	}
}
