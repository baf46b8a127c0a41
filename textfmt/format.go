//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package textfmt

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/ezrec/potd"
)

type Formatter struct {
	*pflag.FlagSet

	Header    bool
	Separator string
}

func NewFormatter(name string) (tf *Formatter) {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flagSet.SetInterspersed(false)

	tf = &Formatter{
		FlagSet: flagSet,
	}

	tf.BoolVarP(&tf.Header, "header", "H", false, "Print a header line")
	tf.StringVarP(&tf.Separator, "separator", "S", " ", "Separator between date and password")

	return
}

func (tf *Formatter) Encode(writer io.Writer, list potd.PasswordList) (err error) {
	out := bufio.NewWriter(writer)

	if tf.Header {
		_, err = fmt.Fprintf(out, "%-10s%s%s\n", "Date", tf.Separator, "Password")
		if err != nil {
			return
		}
	}

	for _, item := range list {
		_, err = fmt.Fprintf(out, "%s%s%s\n", item.Date, tf.Separator, item.Password)
		if err != nil {
			return
		}
	}

	err = out.Flush()

	return
}
