//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package potd

import (
	"sync"
)

// DayPassword is the password for a single date
type DayPassword struct {
	Date     Date
	Password string
}

// PasswordList holds passwords in ascending date order
type PasswordList []DayPassword

// Map returns the passwords keyed by YYYY-MM-DD date
func (list PasswordList) Map() (passwords map[string]string) {
	passwords = make(map[string]string, len(list))
	for _, item := range list {
		passwords[item.Date.String()] = item.Password
	}

	return
}

// Generator derives passwords from a seed that has been
// validated and normalized once. It is safe for concurrent use.
type Generator struct {
	seed       string
	normalized string
}

func NewGenerator(seed string) (gen *Generator, err error) {
	normalized, err := NormalizeSeed(seed)
	if err != nil {
		return
	}

	gen = &Generator{
		seed:       seed,
		normalized: normalized,
	}

	return
}

// Seed returns the seed as given to NewGenerator
func (gen *Generator) Seed() string {
	return gen.seed
}

// Password derives the password for a single date
func (gen *Generator) Password(date Date) (password string) {
	password = Mix(NewDateKey(date), gen.normalized)

	return
}

// Range derives the password for every date in dr
func (gen *Generator) Range(dr *DateRange) (list PasswordList) {
	list = gen.RangeProgress(dr, nil)

	return
}

// RangeProgress is Range, reporting each completed date to prog.
// prog may be nil.
func (gen *Generator) RangeProgress(dr *DateRange, prog Progressor) (list PasswordList) {
	list = make(PasswordList, dr.Days())

	progress := NewProgress(prog, len(list))
	defer progress.Close()

	var wg sync.WaitGroup

	iter := dr.Iter()
	for index := 0; ; index++ {
		date, ok := iter.Next()
		if !ok {
			break
		}

		wg.Add(1)
		go func(index int, date Date) {
			defer wg.Done()
			list[index] = DayPassword{
				Date:     date,
				Password: gen.Password(date),
			}
			progress.Indicate()
		}(index, date)
	}

	wg.Wait()

	return
}
