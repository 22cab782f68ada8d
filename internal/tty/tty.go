// Package tty provides terminal detection for jsoncheck's stdin handling.
package tty

import (
	"io"
	"os"
)

// IsTTY returns true if the given file is a TTY.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// IsTerminal reports whether r is a file attached to a terminal.
// Readers that are not *os.File (pipes in tests, buffers) are never terminals.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return IsTTY(f)
}
