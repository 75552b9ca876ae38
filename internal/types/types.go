// Package types holds the shared data structures used across the
// application. Keeping them in one place prevents import cycles: handlers,
// storage and the repository all import types without depending on each
// other.
package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Student represents a row of the student table.
//
// Struct tags:
//
//  1. db:"..."       column name in the student table.
//  2. json:"..."     key name in request and response bodies.
//  3. validate:"..." rules checked by go-playground/validator in the HTTP layer.
type Student struct {
	ID       int64   `db:"id"       json:"id"`
	Name     string  `db:"name"     json:"name"     validate:"required"`
	Score    float64 `db:"score"    json:"score"    validate:"gte=0"`
	Birthday Date    `db:"birthday" json:"birthday" validate:"required"`
}

// DateLayout is the storage and JSON representation of a Date.
const DateLayout = "2006-01-02"

// Date is a calendar day in UTC with no time-of-day component.
type Date struct {
	time.Time
}

// NewDate returns the Date for the given year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day, keeping the day as seen in t's
// own location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// storedLayouts are the timestamp layouts go-sqlite3 writes for time values.
var storedLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05Z07:00",
	time.RFC3339Nano,
}

// ParseDate parses exactly "YYYY-MM-DD".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{Time: t}, nil
}

// parseStoredDate also accepts a full timestamp, as long as the date is
// followed by 'T' or a space and the whole value is a valid timestamp.
func parseStoredDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if len(s) <= len(DateLayout) {
		return ParseDate(s)
	}
	if sep := s[len(DateLayout)]; sep != 'T' && sep != ' ' {
		return Date{}, fmt.Errorf("parse date %q: unexpected text after date", s)
	}
	for _, layout := range storedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), nil
		}
	}
	return Date{}, fmt.Errorf("parse date %q: not a timestamp", s)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// Equal reports whether d and other are the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.String() == other.String()
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("birthday must be a string: %w", err)
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value stores the date as "YYYY-MM-DD" text; a zero Date is stored as NULL.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// Scan accepts what go-sqlite3 hands back for a DATE column: a time.Time
// when the text parses as a timestamp, the raw text otherwise.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		parsed, err := parseStoredDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}
