//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package jsonfmt

import (
	"encoding/json"
	"io"

	"github.com/spf13/pflag"

	"github.com/ezrec/potd"
)

type Formatter struct {
	*pflag.FlagSet

	List   bool
	Indent bool
}

type entry struct {
	Date     string `json:"date"`
	Password string `json:"password"`
}

func NewFormatter(name string) (jf *Formatter) {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flagSet.SetInterspersed(false)

	jf = &Formatter{
		FlagSet: flagSet,
	}

	jf.BoolVarP(&jf.List, "list", "l", false, "Write an array of date/password objects instead of a date keyed object")
	jf.BoolVarP(&jf.Indent, "indent", "I", false, "Indent the output")

	return
}

func (jf *Formatter) Encode(writer io.Writer, list potd.PasswordList) (err error) {
	enc := json.NewEncoder(writer)
	if jf.Indent {
		enc.SetIndent("", "  ")
	}

	// encoding/json sorts map keys, so YYYY-MM-DD keys stay ascending
	if !jf.List {
		err = enc.Encode(list.Map())
		return
	}

	entries := make([]entry, len(list))
	for n, item := range list {
		entries[n] = entry{
			Date:     item.Date.String(),
			Password: item.Password,
		}
	}

	err = enc.Encode(entries)

	return
}
