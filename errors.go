//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package potd

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDateFormat = errors.New("invalid date format, must be YYYY-MM-DD")
	ErrInvalidDateValue  = errors.New("year, month or day value out of range")
	ErrInvalidSeedLength = errors.New("seed must be between 4 and 8 characters long")
	ErrInvalidDateRange  = errors.New("invalid date range")

	ErrInvalidSeedCharacter = errors.New("seed must be ASCII")
)

// InputError reports which input failed validation, and why.
// Kind is one of the Err* sentinels above.
type InputError struct {
	Kind  error
	Value string
	Msg   string
}

func (e *InputError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return fmt.Sprintf("%q: %s", e.Value, e.Kind.Error())
	}
	return fmt.Sprintf("%q: %s: %s", e.Value, e.Kind.Error(), e.Msg)
}

func (e *InputError) Unwrap() error { return e.Kind }

func inputError(kind error, value string, format string, args ...interface{}) error {
	return &InputError{Kind: kind, Value: value, Msg: fmt.Sprintf(format, args...)}
}
