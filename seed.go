//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package potd

import (
	"unicode/utf8"
)

// ValidateSeed checks that a seed is usable for generation and encoding.
// Seeds are ASCII, so their length in bytes is their length in characters.
func ValidateSeed(seed string) (err error) {
	if seed == DefaultSeed {
		return
	}

	for n := 0; n < len(seed); n++ {
		if seed[n] >= utf8.RuneSelf {
			err = inputError(ErrInvalidSeedCharacter, seed, "byte %#02x at offset %d", seed[n], n)
			return
		}
	}

	if len(seed) < MinSeedLength || len(seed) > MaxSeedLength {
		err = inputError(ErrInvalidSeedLength, seed, "got %d characters", len(seed))
	}

	return
}

// NormalizeSeed pads a seed to PasswordLength by repeating its
// leading bytes cyclically. The default seed is returned as is.
//
// A 4 character seed "ABCD" becomes "ABCDABCDAB", as the modem
// firmware pads it; not "ABCDABABCD".
func NormalizeSeed(seed string) (normalized string, err error) {
	err = ValidateSeed(seed)
	if err != nil {
		return
	}

	if seed == DefaultSeed {
		normalized = seed
		return
	}

	padded := make([]byte, 0, PasswordLength)
	padded = append(padded, seed...)
	for n := 0; len(padded) < PasswordLength; n++ {
		padded = append(padded, seed[n%len(seed)])
	}

	normalized = string(padded)

	return
}
