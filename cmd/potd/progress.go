//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"fmt"
	"io"
	"strings"
)

const progressWidth = 40

// ProgressBar draws a text progress bar, redrawn in place
type ProgressBar struct {
	writer io.Writer
}

func NewProgressBar(writer io.Writer) (bar *ProgressBar) {
	bar = &ProgressBar{
		writer: writer,
	}

	return
}

func (bar *ProgressBar) Show(percent float32) {
	filled := int(percent * progressWidth / 100.0)
	if filled > progressWidth {
		filled = progressWidth
	}

	fmt.Fprintf(bar.writer, "\r[%s%s] %3.0f%%",
		strings.Repeat("#", filled), strings.Repeat(" ", progressWidth-filled), percent)
}

func (bar *ProgressBar) Stop() {
	fmt.Fprintln(bar.writer)
}
