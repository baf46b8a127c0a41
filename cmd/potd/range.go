//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/ezrec/potd"
)

type RangeCommand struct {
	*pflag.FlagSet

	Begin    string
	End      string
	Progress bool
}

func NewRangeCommand() (cmd *RangeCommand) {
	flagSet := pflag.NewFlagSet("range", pflag.ContinueOnError)
	flagSet.SetInterspersed(false)

	cmd = &RangeCommand{
		FlagSet: flagSet,
	}

	cmd.StringVarP(&cmd.Begin, "begin", "b", "", "First date, YYYY-MM-DD")
	cmd.StringVarP(&cmd.End, "end", "e", "", "Last date, YYYY-MM-DD (at most 365 days after --begin)")
	cmd.BoolVarP(&cmd.Progress, "progress", "p", false, "Show progress on stderr")

	return
}

// Execute writes the passwords through the format named by the
// first argument (or --format), with the remaining arguments as
// the format's options.
func (cmd *RangeCommand) Execute(opts *Options, out io.Writer) (err error) {
	if len(cmd.Begin) == 0 || len(cmd.End) == 0 {
		err = errors.New("--begin and --end are required")
		return
	}

	name := opts.Format
	args := cmd.Args()
	if len(args) > 0 {
		name = args[0]
		args = args[1:]
	}

	format, err := potd.NewFormat(name, args)
	if err != nil {
		return
	}

	var prog potd.Progressor
	if cmd.Progress {
		prog = NewProgressBar(os.Stderr)
	}

	slog.Debug("generating range", "begin", cmd.Begin, "end", cmd.End, "format", name)

	list, err := potd.GenerateRangeProgress(cmd.Begin, cmd.End, opts.Seed, prog)
	if err != nil {
		return
	}

	slog.Debug("generated range", "days", len(list))

	err = format.Encode(out, list)

	return
}
