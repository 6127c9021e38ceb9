package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the single wire and storage format for task dates.
const DateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day component. It has exactly one
// textual representation, DateLayout, on both the JSON and storage
// boundaries; any other input fails parsing rather than being coerced.
type Date struct {
	t time.Time
}

// NewDate builds a Date from year, month, and day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a date string in the DateLayout format.
// Returns ErrInvalidDate (wrapped) for any non-conforming input.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q does not match %s", ErrInvalidDate, s, DateLayout)
	}
	return Date{t: t}, nil
}

// Time returns the date as a UTC midnight time.Time.
func (d Date) Time() time.Time {
	return d.t
}

// String returns the date in the DateLayout format.
func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Before reports whether d is before other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// MarshalJSON implements json.Marshaler using the DateLayout format.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler. Only DateLayout strings are
// accepted; anything else surfaces as ErrInvalidDate.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer so dates can be written through database/sql.
func (d Date) Value() (driver.Value, error) {
	return d.t, nil
}

// Scan implements sql.Scanner, accepting time.Time or DateLayout strings
// from the driver.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.t = time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	default:
		return fmt.Errorf("%w: cannot scan %T into Date", ErrInvalidDate, src)
	}
}
