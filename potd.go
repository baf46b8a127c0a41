//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

// Package potd derives the ARRIS/CommScope cable modem password of the day
package potd

import (
	"github.com/ezrec/potd/seedtoken"
)

// Generate returns the password of the day for a YYYY-MM-DD date and seed
func Generate(date string, seed string) (password string, err error) {
	day, err := ParseDate(date)
	if err != nil {
		return
	}

	gen, err := NewGenerator(seed)
	if err != nil {
		return
	}

	password = gen.Password(day)

	return
}

// GenerateRange returns the passwords for every date from begin to end,
// inclusive. end must be after begin, and at most MaxRangeDays later.
func GenerateRange(begin string, end string, seed string) (list PasswordList, err error) {
	list, err = GenerateRangeProgress(begin, end, seed, nil)

	return
}

// GenerateRangeProgress is GenerateRange, reporting each completed
// date to prog. prog may be nil.
func GenerateRangeProgress(begin string, end string, seed string, prog Progressor) (list PasswordList, err error) {
	first, err := ParseDate(begin)
	if err != nil {
		return
	}

	last, err := ParseDate(end)
	if err != nil {
		return
	}

	dr, err := NewDateRange(first, last)
	if err != nil {
		return
	}

	gen, err := NewGenerator(seed)
	if err != nil {
		return
	}

	list = gen.RangeProgress(dr, prog)

	return
}

// EncodeSeed returns the DES encrypted seed token used in modem
// configuration files. A modem configured with the token accepts
// the passwords generated from the same seed.
func EncodeSeed(seed string) (token string, err error) {
	if seed == DefaultSeed {
		token = DefaultToken
		return
	}

	err = ValidateSeed(seed)
	if err != nil {
		return
	}

	token, err = seedtoken.Encode(seed)

	return
}
