//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package csvfmt

import (
	"encoding/csv"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/spf13/pflag"

	"github.com/ezrec/potd"
)

type Formatter struct {
	*pflag.FlagSet

	NoHeader bool
	Comma    string
}

func NewFormatter(name string) (cf *Formatter) {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flagSet.SetInterspersed(false)

	cf = &Formatter{
		FlagSet: flagSet,
	}

	cf.BoolVarP(&cf.NoHeader, "no-header", "n", false, "Omit the header row")
	cf.StringVarP(&cf.Comma, "comma", "c", ",", "Field delimiter")

	return
}

func (cf *Formatter) Encode(writer io.Writer, list potd.PasswordList) (err error) {
	comma, size := utf8.DecodeRuneInString(cf.Comma)
	if size == 0 || size != len(cf.Comma) || comma == utf8.RuneError {
		err = fmt.Errorf("--comma %q: must be a single character", cf.Comma)
		return
	}

	out := csv.NewWriter(writer)
	out.Comma = comma

	if !cf.NoHeader {
		err = out.Write([]string{"date", "password"})
		if err != nil {
			return
		}
	}

	for _, item := range list {
		err = out.Write([]string{item.Date.String(), item.Password})
		if err != nil {
			return
		}
	}

	out.Flush()
	err = out.Error()

	return
}
