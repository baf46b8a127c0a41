//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ezrec/potd"
)

func TestEvaluate(t *testing.T) {
	t.Setenv("POTD_SEED", "")
	t.Setenv("POTD_FORMAT", "")

	table := map[string]struct {
		Args []string
		Out  string
	}{
		"generate": {[]string{"generate", "--date", "2021-12-25"}, "ZCARK8TPK5\n"},
		"seed":     {[]string{"-s", "1122AABB", "generate", "-d", "2021-12-25"}, "FEWNX8OS0O\n"},
		"with-des": {[]string{"-s", "ABCD", "generate", "-d", "2021-12-25", "--des"},
			"2021-12-25 WDE5E96WGL\nDES: 3F.94.E2.AA.46.63.AA.78\n"},
		"des":         {[]string{"--seed", "ABCD", "des"}, "3F.94.E2.AA.46.63.AA.78\n"},
		"des-default": {[]string{"des"}, "DB.B5.CB.D6.11.17.D6.EB\n"},
		"range": {[]string{"range", "-b", "2021-12-25", "-e", "2021-12-26"},
			"2021-12-25 ZCARK8TPK5\n2021-12-26 ZOU3MLLZO4\n"},
		"range-progress": {[]string{"range", "-p", "-b", "2021-12-25", "-e", "2021-12-26"},
			"2021-12-25 ZCARK8TPK5\n2021-12-26 ZOU3MLLZO4\n"},
		"range-csv": {[]string{"-f", "csv", "range", "-b", "2021-12-25", "-e", "2021-12-26"},
			"date,password\n2021-12-25,ZCARK8TPK5\n2021-12-26,ZOU3MLLZO4\n"},
		"range-json": {[]string{"range", "-b", "2021-12-25", "-e", "2021-12-26", "json", "--list"},
			`[{"date":"2021-12-25","password":"ZCARK8TPK5"},{"date":"2021-12-26","password":"ZOU3MLLZO4"}]` + "\n"},
	}

	for key, item := range table {
		buff := &bytes.Buffer{}
		err := evaluate(item.Args, buff)
		if err != nil {
			t.Errorf("%v: unexpected error %v", key, err)
			continue
		}

		if buff.String() != item.Out {
			t.Errorf("%v: expected %q, got %q", key, item.Out, buff.String())
		}
	}
}

func TestEvaluateErrors(t *testing.T) {
	t.Setenv("POTD_SEED", "")
	t.Setenv("POTD_FORMAT", "")

	table := map[string]struct {
		Args  []string
		Error error
	}{
		"short-seed": {[]string{"-s", "ABC", "generate", "-d", "2021-12-25"}, potd.ErrInvalidSeedLength},
		"bad-date":   {[]string{"generate", "-d", "25/12/2021"}, potd.ErrInvalidDateFormat},
		"des-seed":   {[]string{"-s", "ABCDEFGHIJK", "des"}, potd.ErrInvalidSeedLength},
		"reversed":   {[]string{"range", "-b", "2021-12-26", "-e", "2021-12-25"}, potd.ErrInvalidDateRange},
		"no-command": {[]string{}, errUsage},
	}

	for key, item := range table {
		buff := &bytes.Buffer{}
		err := evaluate(item.Args, buff)
		if !errors.Is(err, item.Error) {
			t.Errorf("%v: expected %v, got %v", key, item.Error, err)
		}

		if buff.Len() != 0 {
			t.Errorf("%v: expected no output, got %q", key, buff.String())
		}
	}

	for _, args := range [][]string{
		{"bogus"},
		{"range", "-b", "2021-12-25"},
		{"range", "-b", "2021-12-25", "-e", "2021-12-26", "yaml"},
	} {
		err := evaluate(args, &bytes.Buffer{})
		if err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

func TestProgressBar(t *testing.T) {
	buff := &bytes.Buffer{}
	bar := NewProgressBar(buff)
	bar.Show(50.0)
	bar.Stop()

	expected := "\r[####################                    ]  50%\n"
	if buff.String() != expected {
		t.Errorf("expected %q, got %q", expected, buff.String())
	}
}
