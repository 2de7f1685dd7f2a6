package logging

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// isTerminal reports whether a writer is a TTY; replaced in tests.
var isTerminal = defaultIsTerminal

// ShouldStyle reports whether colored output should be written to w. NO_COLOR,
// TERM=dumb and CLICOLOR=0 disable styling.
func ShouldStyle(w io.Writer, noColor bool) bool {
	if noColor || w == nil {
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	if strings.EqualFold(os.Getenv("CLICOLOR"), "0") {
		return false
	}
	return isTerminal(w)
}

func defaultIsTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := w.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
