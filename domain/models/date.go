package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// DayDateFmt is the wire format for calendar dates (due dates, filters).
const DayDateFmt = "2006-01-02"

// DayDate is a calendar date with no time component. The zero value means
// "no date set", which is a valid state for a task due date, not an error.
// On the wire it is an ISO date string, or "" when absent.
type DayDate struct {
	Time  time.Time
	Valid bool
}

func DayOf(t time.Time) DayDate {
	y, m, d := t.Date()
	return DayDate{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Valid: true}
}

func ParseDayDate(s string) (DayDate, error) {
	if s == "" {
		return DayDate{}, nil
	}
	t, err := time.Parse(DayDateFmt, s)
	if err != nil {
		return DayDate{}, err
	}
	return DayOf(t), nil
}

func (d DayDate) String() string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format(DayDateFmt)
}

func (d DayDate) Equal(other DayDate) bool {
	if !d.Valid || !other.Valid {
		return d.Valid == other.Valid
	}
	return d.Time.Equal(other.Time)
}

func (d DayDate) Before(other DayDate) bool {
	return d.Valid && other.Valid && d.Time.Before(other.Time)
}

func (d DayDate) After(other DayDate) bool {
	return d.Valid && other.Valid && d.Time.After(other.Time)
}

func (d DayDate) AddDays(days int) DayDate {
	if !d.Valid {
		return d
	}
	return DayOf(d.Time.AddDate(0, 0, days))
}

func (d DayDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *DayDate) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		*d = DayDate{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid day date %s", s)
	}
	parsed, err := ParseDayDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan implements sql.Scanner so pgx can read nullable date columns.
func (d *DayDate) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = DayDate{}
		return nil
	case time.Time:
		*d = DayOf(v)
		return nil
	case string:
		parsed, err := ParseDayDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into DayDate", src)
	}
}

// Value implements driver.Valuer, storing absent dates as NULL.
func (d DayDate) Value() (driver.Value, error) {
	if !d.Valid {
		return nil, nil
	}
	return d.Time, nil
}
