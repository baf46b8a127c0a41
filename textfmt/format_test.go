//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package textfmt

import (
	"bytes"
	"testing"

	"github.com/ezrec/potd"
)

func TestEncode(t *testing.T) {
	list, err := potd.GenerateRange("2021-12-25", "2021-12-26", potd.DefaultSeed)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	table := map[string]struct {
		Args []string
		Out  string
	}{
		"plain":     {[]string{}, "2021-12-25 ZCARK8TPK5\n2021-12-26 ZOU3MLLZO4\n"},
		"header":    {[]string{"--header"}, "Date       Password\n2021-12-25 ZCARK8TPK5\n2021-12-26 ZOU3MLLZO4\n"},
		"separator": {[]string{"-S", ": "}, "2021-12-25: ZCARK8TPK5\n2021-12-26: ZOU3MLLZO4\n"},
	}

	for key, item := range table {
		format, err := potd.NewFormat("text", item.Args)
		if err != nil {
			t.Errorf("%v: unexpected error %v", key, err)
			continue
		}

		buff := &bytes.Buffer{}
		err = format.Encode(buff, list)
		if err != nil {
			t.Errorf("%v: unexpected error %v", key, err)
			continue
		}

		if buff.String() != item.Out {
			t.Errorf("%v: expected %q, got %q", key, item.Out, buff.String())
		}
	}
}
