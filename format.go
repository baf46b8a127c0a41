//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package potd

import (
	"fmt"
	"io"
	"os"
	"sort"
)

// Password list output format
type Formatter interface {
	Parse(args []string) (err error)
	Parsed() bool
	Args() (args []string)
	NArg() int
	PrintDefaults()

	Encode(writer io.Writer, list PasswordList) (err error)
}

type NewFormatter func(name string) (formatter Formatter)

var formatterMap map[string]NewFormatter

func RegisterFormatter(name string, newFormatter NewFormatter) {
	if formatterMap == nil {
		formatterMap = make(map[string]NewFormatter)
	}

	formatterMap[name] = newFormatter
}

// FormatterNames lists the registered formats, sorted
func FormatterNames() (names []string) {
	names = []string{}
	for name := range formatterMap {
		names = append(names, name)
	}
	sort.Strings(names)

	return
}

func FormatterUsage() {
	for _, name := range FormatterNames() {
		newFormatter := formatterMap[name]
		fmt.Fprintln(os.Stderr)
		fmt.Fprintf(os.Stderr, "Options for '%s' format:\n", name)
		fmt.Fprintln(os.Stderr)
		newFormatter(name).PrintDefaults()
	}
}

type Format struct {
	Formatter
	Name string
}

// NewFormat looks up a registered format, and parses its options
func NewFormat(name string, args []string) (format *Format, err error) {
	newFormatter, found := formatterMap[name]
	if !found {
		err = fmt.Errorf("%s: unknown format, expected one of %v", name, FormatterNames())
		return
	}

	formatter := newFormatter(name)

	err = formatter.Parse(args)
	if err != nil {
		return
	}

	format = &Format{
		Formatter: formatter,
		Name:      name,
	}

	return
}
