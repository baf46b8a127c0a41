//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/ezrec/potd"
)

type DesCommand struct {
	*pflag.FlagSet
}

func NewDesCommand() (cmd *DesCommand) {
	cmd = &DesCommand{
		FlagSet: pflag.NewFlagSet("des", pflag.ContinueOnError),
	}

	cmd.SetInterspersed(false)

	return
}

func (cmd *DesCommand) Execute(opts *Options, out io.Writer) (err error) {
	token, err := potd.EncodeSeed(opts.Seed)
	if err != nil {
		return
	}

	_, err = fmt.Fprintln(out, token)

	return
}
