// Package cliutil provides output helpers shared by the mdbind commands.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// Warnf writes a single "Warning: " line to w.
func Warnf(w io.Writer, format string, args ...any) {
	Writef(w, "Warning: "+format+"\n", args...)
}

// Heading writes a "Title (n):" line, or nothing when n is zero.
func Heading(w io.Writer, title string, n int) {
	if n == 0 {
		return
	}
	Writef(w, "%s (%d):\n", title, n)
}
