//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package potd

const (
	// DefaultSeed is the seed ARRIS/CommScope modems ship with
	DefaultSeed = "MPSJKMDHAI"

	// DefaultToken is the configuration file token for DefaultSeed.
	// The seed is longer than one DES block, so it cannot be derived
	// through seedtoken and is kept as an opaque value.
	DefaultToken = "DB.B5.CB.D6.11.17.D6.EB"

	// Alphabet maps mixed values to password characters
	Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	PasswordLength   = 10
	MinSeedLength    = 4
	MaxSeedLength    = 8
	MaxRangeDays     = 365
	alphabetModulus  = len(Alphabet)
	dateKeyLength    = 8
	weekdayKeyLength = 5
)

// Date key seeds, indexed by weekday (Monday = 0)
var weekdayTable = [7][weekdayKeyLength]int{
	{15, 15, 24, 20, 24},
	{13, 14, 27, 32, 10},
	{29, 14, 32, 29, 24},
	{23, 32, 24, 29, 29},
	{14, 29, 10, 21, 29},
	{34, 27, 16, 23, 30},
	{14, 22, 24, 17, 13},
}

// Output orderings, selected by checksum mod 6
var permutationTable = [6][PasswordLength]int{
	{0, 1, 2, 9, 3, 4, 5, 6, 7, 8},
	{1, 4, 3, 9, 0, 7, 8, 2, 5, 6},
	{7, 2, 8, 9, 4, 1, 6, 0, 3, 5},
	{6, 3, 5, 9, 1, 8, 2, 7, 4, 0},
	{4, 7, 0, 9, 5, 2, 3, 1, 8, 6},
	{5, 6, 1, 9, 8, 0, 4, 3, 2, 7},
}
