//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/pflag"

	"github.com/ezrec/potd"
)

type GenerateCommand struct {
	*pflag.FlagSet

	Date string
	Des  bool
}

func NewGenerateCommand() (cmd *GenerateCommand) {
	flagSet := pflag.NewFlagSet("generate", pflag.ContinueOnError)
	flagSet.SetInterspersed(false)

	cmd = &GenerateCommand{
		FlagSet: flagSet,
	}

	cmd.StringVarP(&cmd.Date, "date", "d", "", "Date as YYYY-MM-DD (default today, UTC)")
	cmd.BoolVarP(&cmd.Des, "des", "D", false, "Also print the DES encrypted seed")

	return
}

func (cmd *GenerateCommand) Execute(opts *Options, out io.Writer) (err error) {
	date := cmd.Date
	if !cmd.Changed("date") {
		date = potd.NewDate(time.Now().UTC()).String()
	}

	slog.Debug("generating password", "date", date)

	password, err := potd.Generate(date, opts.Seed)
	if err != nil {
		return
	}

	if !cmd.Des {
		_, err = fmt.Fprintln(out, password)
		return
	}

	token, err := potd.EncodeSeed(opts.Seed)
	if err != nil {
		return
	}

	_, err = fmt.Fprintf(out, "%s %s\nDES: %s\n", date, password, token)

	return
}
