// Package common defines the shared value types used across all layers of
// Fristenwächter: opaque identifiers, the day-granularity Date type that all
// deadline arithmetic is built on, and the generic API response envelope.
package common

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ID is a string alias for UUID v4.
type ID string

// NewID returns a freshly generated random ID.
func NewID() ID {
	return ID(uuid.NewString())
}

// ─────────────────────────────────────────────────────────────────────────────
// Date — calendar date with day granularity
// ─────────────────────────────────────────────────────────────────────────────

// DateLayout is the wire representation of a Date.
const DateLayout = "2006-01-02"

// Date is a calendar date without a time-of-day component.  It is the unit of
// all deadline arithmetic in the engine: statutory periods are counted in whole
// calendar days and months, never in hours.  Internally a Date is stored as
// midnight UTC so that subtraction yields exact multiples of 24h.
//
// The zero Date is invalid and reported by IsZero; it marshals to JSON null.
type Date struct {
	t time.Time
}

// NewDate constructs a Date from its calendar components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar date in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate parses a Date from its YYYY-MM-DD wire form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("common: invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// IsZero reports whether d is the invalid zero Date.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Year returns the calendar year.
func (d Date) Year() int { return d.t.Year() }

// Month returns the calendar month.
func (d Date) Month() time.Month { return d.t.Month() }

// Day returns the day of the month.
func (d Date) Day() int { return d.t.Day() }

// Time returns the Date as midnight UTC.
func (d Date) Time() time.Time { return d.t }

// AddDays returns the Date n calendar days after d (before, if n is negative).
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// AddMonths returns the Date n months after d, clamped to the last valid day
// of the target month when the source day does not exist in it
// (e.g. Jan 31 + 1 month → Feb 28/29).  Plain time.AddDate would overflow
// into the following month instead, which is wrong for statutory periods.
func (d Date) AddMonths(n int) Date {
	y, m, day := d.t.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	if last := daysInMonth(first.Year(), first.Month()); day > last {
		day = last
	}
	return NewDate(first.Year(), first.Month(), day)
}

// AddYears returns the Date n years after d, with Feb 29 clamping to Feb 28
// in non-leap target years.
func (d Date) AddYears(n int) Date {
	return d.AddMonths(12 * n)
}

// DaysUntil returns the signed number of whole days from d to other.
// Negative values mean other lies in the past relative to d.
func (d Date) DaysUntil(other Date) int {
	return int(other.t.Sub(d.t).Hours() / 24)
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool { return d.t.After(other.t) }

// Equal reports whether d and other denote the same calendar date.
func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }

// String returns the YYYY-MM-DD wire form.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// MarshalJSON implements json.Marshaler.  The zero Date marshals to null so
// that optional date fields round-trip cleanly.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil || *s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(*s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// daysInMonth returns the number of days in the given month.
func daysInMonth(year int, month time.Month) int {
	// Day zero of the following month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ─────────────────────────────────────────────────────────────────────────────
// API response envelope
// ─────────────────────────────────────────────────────────────────────────────

// ErrorDetail provides structured error information for API responses.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// APIResponse is the generic wrapper for all API responses.
type APIResponse[T any] struct {
	Success   bool         `json:"success"`
	Data      T            `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// OK constructs a successful APIResponse around data.
func OK[T any](data T) APIResponse[T] {
	return APIResponse[T]{Success: true, Data: data, Timestamp: time.Now().UTC()}
}
