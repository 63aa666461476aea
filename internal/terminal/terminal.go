// Package terminal provides host terminal detection helpers.
package terminal

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether f is attached to a terminal. Cygwin and MSYS
// ptys on Windows count as terminals.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Interactive reports whether full-screen prompts can be shown on the
// process's standard streams.
func Interactive() bool {
	return interactive(os.Stdin, os.Stdout, os.Getenv)
}

func interactive(in, out *os.File, getenv func(string) string) bool {
	if getenv("TERM") == "dumb" {
		return false
	}
	return IsTerminal(in) && IsTerminal(out)
}
