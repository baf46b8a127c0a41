//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package potd

import (
	"math"
)

// Mix runs a date key and normalized seed through the checksum,
// permutation and offset stages and returns the password.
//
// seed must already be normalized to PasswordLength bytes.
func Mix(key DateKey, seed string) (password string) {
	sums := checksumStage(key, seed)
	mixed := permutationStage(sums)
	final := offsetStage(mixed, seed)

	out := make([]byte, PasswordLength)
	for n, value := range final {
		out[n] = Alphabet[value]
	}

	password = string(out)

	return
}

func checksumStage(key DateKey, seed string) (sums [PasswordLength]int) {
	total := 0
	for n := 0; n < dateKeyLength; n++ {
		sums[n] = (key[n] + int(seed[n])) % alphabetModulus
		total += sums[n]
	}

	sums[8] = total % alphabetModulus

	// Always integral; kept to match the device's float rounding
	square := math.Pow(float64(sums[8]%6), 2)
	if square-math.Floor(square) < 0.5 {
		sums[9] = int(math.Floor(square))
	} else {
		sums[9] = int(math.Ceil(square))
	}

	return
}

func permutationStage(sums [PasswordLength]int) (mixed [PasswordLength]int) {
	order := &permutationTable[sums[8]%6]
	for n := range mixed {
		mixed[n] = sums[order[n]]
	}

	return
}

func offsetStage(mixed [PasswordLength]int, seed string) (final [PasswordLength]int) {
	for n := range final {
		final[n] = (int(seed[n]) + mixed[n]) % alphabetModulus
	}

	return
}
