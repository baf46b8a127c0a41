//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/spf13/pflag"

	"github.com/ezrec/potd"
	_ "github.com/ezrec/potd/csvfmt"
	_ "github.com/ezrec/potd/jsonfmt"
	_ "github.com/ezrec/potd/textfmt"
)

// Options shared by every command
type Options struct {
	Seed    string
	Format  string
	Verbose bool
}

type Command interface {
	Parse(args []string) (err error)
	Args() (args []string)
	NArg() int
	PrintDefaults()

	Execute(opts *Options, out io.Writer) (err error)
}

type commandInfo struct {
	NewCommand  func() Command
	Description string
}

var commandMap = map[string]commandInfo{
	"generate": {
		NewCommand:  func() Command { return NewGenerateCommand() },
		Description: "Print the password for a single day",
	},
	"range": {
		NewCommand:  func() Command { return NewRangeCommand() },
		Description: "Print the passwords for a range of days",
	},
	"des": {
		NewCommand:  func() Command { return NewDesCommand() },
		Description: "Print the DES encrypted seed for modem configuration files",
	},
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newFlagSet(opts *Options) (flagSet *pflag.FlagSet) {
	flagSet = pflag.NewFlagSet("potd", pflag.ContinueOnError)
	flagSet.SetInterspersed(false)

	flagSet.StringVarP(&opts.Seed, "seed", "s", envStr("POTD_SEED", potd.DefaultSeed), "Seed, 4 to 8 characters ($POTD_SEED)")
	flagSet.StringVarP(&opts.Format, "format", "f", envStr("POTD_FORMAT", "text"), "Output format for ranges ($POTD_FORMAT)")
	flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "Verbose logging")

	flagSet.Usage = func() {}

	return
}

func PrintUsage(flagSet *pflag.FlagSet) {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "  potd [options] command [command options]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr)
	flagSet.PrintDefaults()

	keys := []string{}
	for key := range commandMap {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		info := commandMap[key]
		fmt.Fprintln(os.Stderr)
		fmt.Fprintf(os.Stderr, "  %s: %s\n", key, info.Description)
		fmt.Fprintln(os.Stderr)
		info.NewCommand().PrintDefaults()
	}

	potd.FormatterUsage()
}

var errUsage = errors.New("usage")

func evaluate(args []string, out io.Writer) (err error) {
	opts := &Options{}
	flagSet := newFlagSet(opts)

	err = flagSet.Parse(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			PrintUsage(flagSet)
			err = errUsage
		}
		return
	}

	level := parseLogLevel(envStr("POTD_LOG_LEVEL", "info"))
	if opts.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if flagSet.NArg() == 0 {
		PrintUsage(flagSet)
		err = errUsage
		return
	}

	name := flagSet.Arg(0)
	info, found := commandMap[name]
	if !found {
		err = fmt.Errorf("%s: unknown command", name)
		return
	}

	cmd := info.NewCommand()
	err = cmd.Parse(flagSet.Args()[1:])
	if err != nil {
		err = fmt.Errorf("%s: %w", name, err)
		return
	}

	slog.Debug("running command", "command", name, "seed_length", len(opts.Seed), "format", opts.Format)

	err = cmd.Execute(opts, out)
	if err != nil {
		err = fmt.Errorf("%s: %w", name, err)
		return
	}

	return
}

func main() {
	err := evaluate(os.Args[1:], os.Stdout)
	if err != nil {
		if !errors.Is(err, errUsage) {
			slog.Error("failed", "err", err)
		}
		os.Exit(1)
	}
}
