// Package lines provides a pull-based line cursor over a byte stream.
package lines

import (
	"bufio"
	"io"
)

// maxLineSize bounds a single line. Reference documents embed long JSON
// examples, so the bufio default of 64KB is raised.
const maxLineSize = 1 << 20

// Cursor yields the lines of a stream in order, exactly once each.
// Peek looks at the next line without consuming it.
// Line terminators are stripped, including a trailing carriage return.
type Cursor struct {
	scanner *bufio.Scanner
	next    string
	hasNext bool
	primed  bool
	line    int
	err     error
}

// New creates a Cursor reading from r.
func New(r io.Reader) *Cursor {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Cursor{scanner: s}
}

// fill reads one line ahead if nothing is buffered.
func (c *Cursor) fill() {
	if c.primed {
		return
	}
	c.primed = true
	if c.scanner.Scan() {
		c.next = c.scanner.Text()
		c.hasNext = true
		return
	}
	c.hasNext = false
	c.err = c.scanner.Err()
}

// HasMore reports whether another line is available.
func (c *Cursor) HasMore() bool {
	c.fill()
	return c.hasNext
}

// Peek returns the next line without consuming it.
// ok is false when the stream is exhausted.
func (c *Cursor) Peek() (line string, ok bool) {
	c.fill()
	return c.next, c.hasNext
}

// Next consumes and returns the next line.
// ok is false when the stream is exhausted.
func (c *Cursor) Next() (line string, ok bool) {
	c.fill()
	if !c.hasNext {
		return "", false
	}
	line = c.next
	c.next = ""
	c.hasNext = false
	c.primed = false
	c.line++
	return line, true
}

// Line returns the 1-based number of the most recently consumed line,
// or 0 before the first call to Next.
func (c *Cursor) Line() int {
	return c.line
}

// Err returns the first read error encountered, if any.
// End of stream is not an error.
func (c *Cursor) Err() error {
	return c.err
}
