//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

// Package jsonfmt writes password lists as JSON
package jsonfmt

import (
	"github.com/ezrec/potd"
)

func init() {
	newFormatter := func(name string) (format potd.Formatter) { return NewFormatter(name) }

	potd.RegisterFormatter("json", newFormatter)
}
