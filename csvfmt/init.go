//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

// Package csvfmt writes password lists as comma separated values
package csvfmt

import (
	"github.com/ezrec/potd"
)

func init() {
	newFormatter := func(name string) (format potd.Formatter) { return NewFormatter(name) }

	potd.RegisterFormatter("csv", newFormatter)
}
