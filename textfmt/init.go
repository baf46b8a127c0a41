//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

// Package textfmt writes password lists as plain text, one date per line
package textfmt

import (
	"github.com/ezrec/potd"
)

func init() {
	newFormatter := func(name string) (format potd.Formatter) { return NewFormatter(name) }

	potd.RegisterFormatter("text", newFormatter)
}
