//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package potd

import (
	"regexp"
	"time"
)

const dateLayout = "2006-01-02"

var dateShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Date is a calendar day, held at UTC midnight
type Date struct {
	t time.Time
}

// ParseDate parses a strict YYYY-MM-DD date.
func ParseDate(text string) (date Date, err error) {
	if !dateShape.MatchString(text) {
		err = &InputError{Kind: ErrInvalidDateFormat, Value: text}
		return
	}

	t, perr := time.Parse(dateLayout, text)
	if perr != nil {
		err = inputError(ErrInvalidDateValue, text, "%v", perr)
		return
	}

	date = Date{t: t}

	return
}

// NewDate returns the calendar day containing t, in t's location
func NewDate(t time.Time) (date Date) {
	year, month, day := t.Date()
	date = Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}

	return
}

func (date Date) Year() int          { return date.t.Year() }
func (date Date) Month() time.Month  { return date.t.Month() }
func (date Date) Day() int           { return date.t.Day() }
func (date Date) Time() time.Time    { return date.t }
func (date Date) String() string     { return date.t.Format(dateLayout) }
func (date Date) Equal(d Date) bool  { return date.t.Equal(d.t) }
func (date Date) Before(d Date) bool { return date.t.Before(d.t) }

// Weekday returns 0 for Monday through 6 for Sunday
func (date Date) Weekday() int {
	return (int(date.t.Weekday()) + 6) % 7
}

// ShortYear is the last two digits of the year
func (date Date) ShortYear() int {
	return date.t.Year() % 100
}

// AddDays returns the date n days later (or earlier, for negative n)
func (date Date) AddDays(n int) Date {
	return Date{t: date.t.AddDate(0, 0, n)}
}

// DaysUntil counts the days from date to other; negative if other is earlier
func (date Date) DaysUntil(other Date) int {
	const secondsPerDay = 24 * 60 * 60

	return int((other.t.Unix() - date.t.Unix()) / secondsPerDay)
}
