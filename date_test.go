//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package potd

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	table := map[string]struct {
		Text      string
		Weekday   int
		ShortYear int
		Error     error
	}{
		"christmas": {"2021-12-25", 5, 21, nil},
		"monday":    {"2000-01-31", 0, 0, nil},
		"sunday":    {"2023-01-01", 6, 23, nil},
		"leap":      {"2024-02-29", 3, 24, nil},
		"not-leap":  {"2023-02-29", 0, 0, ErrInvalidDateValue},
		"month":     {"2021-00-10", 0, 0, ErrInvalidDateValue},
		"spaces":    {" 2021-12-25", 0, 0, ErrInvalidDateFormat},
		"empty":     {"", 0, 0, ErrInvalidDateFormat},
	}

	for key, item := range table {
		date, err := ParseDate(item.Text)
		if !errors.Is(err, item.Error) {
			t.Errorf("%v: expected %v, got %v", key, item.Error, err)
			continue
		}

		if err != nil {
			continue
		}

		if date.String() != item.Text {
			t.Errorf("%v: expected %v, got %v", key, item.Text, date)
		}

		if date.Weekday() != item.Weekday {
			t.Errorf("%v: weekday expected %v, got %v", key, item.Weekday, date.Weekday())
		}

		if date.ShortYear() != item.ShortYear {
			t.Errorf("%v: short year expected %v, got %v", key, item.ShortYear, date.ShortYear())
		}
	}
}

func TestNewDate(t *testing.T) {
	loc := time.FixedZone("UTC-8", -8*60*60)
	date := NewDate(time.Date(2021, time.December, 24, 23, 30, 0, 0, loc))

	if date.String() != "2021-12-24" {
		t.Errorf("expected %v, got %v", "2021-12-24", date)
	}
}

func TestDaysUntil(t *testing.T) {
	begin, _ := ParseDate("2021-12-25")
	end, _ := ParseDate("2022-12-25")

	if days := begin.DaysUntil(end); days != 365 {
		t.Errorf("expected %v, got %v", 365, days)
	}

	if days := end.DaysUntil(begin); days != -365 {
		t.Errorf("expected %v, got %v", -365, days)
	}

	if next := begin.AddDays(7); next.String() != "2022-01-01" {
		t.Errorf("expected %v, got %v", "2022-01-01", next)
	}
}
