//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package potd

// DateRange is an inclusive, validated span of days
type DateRange struct {
	Begin Date
	End   Date
}

// NewDateRange checks that end is after begin, and no more
// than MaxRangeDays away.
func NewDateRange(begin, end Date) (dr *DateRange, err error) {
	span := begin.DaysUntil(end)
	value := begin.String() + ".." + end.String()

	switch {
	case span <= 0:
		err = inputError(ErrInvalidDateRange, value, "beginning date must occur before end date")
		return
	case span > MaxRangeDays:
		err = inputError(ErrInvalidDateRange, value, "range exceeds %d days", MaxRangeDays)
		return
	}

	dr = &DateRange{
		Begin: begin,
		End:   end,
	}

	return
}

// Days is the number of dates in the range, both ends included
func (dr *DateRange) Days() int {
	return dr.Begin.DaysUntil(dr.End) + 1
}

// Iter starts a new pass over the range
func (dr *DateRange) Iter() (iter *DateIterator) {
	iter = &DateIterator{
		next: dr.Begin,
		end:  dr.End,
	}

	return
}

type DateIterator struct {
	next Date
	end  Date
	done bool
}

// Next returns the next date, or false once the end date has been returned
func (iter *DateIterator) Next() (date Date, ok bool) {
	if iter.done || iter.end.Before(iter.next) {
		iter.done = true
		return
	}

	date = iter.next
	ok = true
	iter.next = iter.next.AddDays(1)

	return
}
