// ABOUTME: Calendar date type with day granularity
// ABOUTME: Marshals as ISO 2006-01-02 strings for the JSONL wire format and sqlite
package models

import (
	"fmt"
	"time"
)

// DateLayout is the wire representation of a calendar date.
const DateLayout = "2006-01-02"

// Date is a calendar day in UTC. The zero value is the zero time.
type Date struct {
	time.Time
}

// NewDate builds a Date from calendar components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its UTC calendar day.
func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return NewDate(y, m, d)
}

// ParseDate parses the 2006-01-02 form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

// AddDays returns the date n days later (n may be negative).
func (d Date) AddDays(n int) Date {
	return Date{d.Time.AddDate(0, 0, n)}
}

// DaysUntil returns the number of whole days from d to other.
func (d Date) DaysUntil(other Date) int {
	return int(other.Time.Sub(d.Time) / (24 * time.Hour))
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date literal %s", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
