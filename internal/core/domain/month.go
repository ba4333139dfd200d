package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
)

const (
	MinMonthYear = 1900
	MaxMonthYear = 2100

	monthLayout = "2006-01"
)

// Month is a calendar month with no day or timezone component.
// The zero value is not a valid month; use NewMonth, ParseMonth or MonthOf.
type Month struct {
	year  int
	month time.Month
}

// NewMonth builds a Month, rejecting out of range years and months with ErrFormat.
func NewMonth(year, month int) (Month, error) {
	if year < MinMonthYear || year > MaxMonthYear {
		return Month{}, apperrors.NewFormatError("year %d outside %d-%d", year, MinMonthYear, MaxMonthYear)
	}
	if month < 1 || month > 12 {
		return Month{}, apperrors.NewFormatError("month %d outside 1-12", month)
	}
	return Month{year: year, month: time.Month(month)}, nil
}

// MustMonth is NewMonth for constants known to be valid. It panics otherwise.
func MustMonth(year, month int) Month {
	m, err := NewMonth(year, month)
	if err != nil {
		panic(err)
	}
	return m
}

// ParseMonth parses the canonical YYYY-MM form.
func ParseMonth(s string) (Month, error) {
	if len(s) != len(monthLayout) || s[4] != '-' {
		return Month{}, apperrors.NewFormatError("month %q is not in YYYY-MM form", s)
	}
	var year, month int
	for i, r := range s {
		if i == 4 {
			continue
		}
		if r < '0' || r > '9' {
			return Month{}, apperrors.NewFormatError("month %q is not in YYYY-MM form", s)
		}
		if i < 4 {
			year = year*10 + int(r-'0')
		} else {
			month = month*10 + int(r-'0')
		}
	}
	return NewMonth(year, month)
}

// MonthOf returns the calendar month containing t, in t's location.
func MonthOf(t time.Time) Month {
	return Month{year: t.Year(), month: t.Month()}
}

// CurrentMonth reads the wall clock. Services take the month as a parameter instead;
// this is for the outer layers that decide what "now" is.
func CurrentMonth() Month {
	return MonthOf(time.Now().UTC())
}

func (m Month) Year() int { return m.year }

func (m Month) Month() time.Month { return m.month }

// IsZero reports whether m is the zero value.
func (m Month) IsZero() bool { return m.year == 0 && m.month == 0 }

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.year, int(m.month))
}

// Previous returns the month before m, rolling over the year boundary.
func (m Month) Previous() Month {
	if m.month == time.January {
		return Month{year: m.year - 1, month: time.December}
	}
	return Month{year: m.year, month: m.month - 1}
}

// Next returns the month after m, rolling over the year boundary.
func (m Month) Next() Month {
	if m.month == time.December {
		return Month{year: m.year + 1, month: time.January}
	}
	return Month{year: m.year, month: m.month + 1}
}

// Compare returns -1, 0 or +1 ordering by (year, month).
func (m Month) Compare(o Month) int {
	switch {
	case m.year < o.year:
		return -1
	case m.year > o.year:
		return 1
	case m.month < o.month:
		return -1
	case m.month > o.month:
		return 1
	}
	return 0
}

func (m Month) Before(o Month) bool { return m.Compare(o) < 0 }

func (m Month) After(o Month) bool { return m.Compare(o) > 0 }

func (m Month) Equal(o Month) bool { return m == o }

// LaterOf returns whichever of m and o comes last.
func (m Month) LaterOf(o Month) Month {
	if m.Before(o) {
		return o
	}
	return m
}

// FirstDay is midnight UTC on the first of the month.
func (m Month) FirstDay() time.Time {
	return time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.UTC)
}

// DaysIn returns the number of days in the month.
func (m Month) DaysIn() int {
	return time.Date(m.year, m.month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Date returns the given day of the month, clamped to the month's last day.
func (m Month) Date(day int) time.Time {
	if last := m.DaysIn(); day > last {
		day = last
	}
	if day < 1 {
		day = 1
	}
	return time.Date(m.year, m.month, day, 0, 0, 0, 0, time.UTC)
}

func (m Month) MarshalText() ([]byte, error) {
	if m.IsZero() {
		return []byte{}, nil
	}
	return []byte(m.String()), nil
}

func (m *Month) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*m = Month{}
		return nil
	}
	parsed, err := ParseMonth(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
