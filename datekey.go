//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package potd

// DateKey is the per-day input to the mixing pipeline
type DateKey [dateKeyLength]int

func NewDateKey(date Date) (key DateKey) {
	year := date.ShortYear()
	month := int(date.Month())
	day := date.Day()

	copy(key[:weekdayKeyLength], weekdayTable[date.Weekday()][:])

	key[5] = day

	diff := (year + month) - day
	if diff < 0 {
		key[6] = (diff + 36) % 36
	} else {
		key[6] = diff % 36
	}

	key[7] = (((3 + ((year + month) % 12)) * day) % 37) % 36

	return
}
