package lineedit

import (
	"fmt"
	"io"
)

// Escape sequences emitted by the editor.
const (
	seqClearScreen          = "\x1b[2J"
	seqClearLine            = "\x1b[K" // from the cursor to the end of the line
	seqCursorBackward       = "\x1b[1D"
	seqCursorForward        = "\x1b[%dC"
	seqCursorColumnAbsolute = "\x1b[%dG"
)

// Terminal writes control sequences to an output device. Every write is
// all-or-nothing: a short write is reported as an error, and no partial-redraw
// recovery is attempted.
type Terminal struct {
	out io.Writer
}

// NewTerminal creates a terminal over the given writer.
func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

// Write sends raw bytes to the device, failing on short writes.
// Implements io.Writer.
func (t *Terminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("lineedit: terminal write: %w", err)
	}
	if n != len(p) {
		return n, fmt.Errorf("lineedit: terminal write: wrote %d of %d bytes", n, len(p))
	}
	return n, nil
}

// WriteString sends a string to the device, failing on short writes.
func (t *Terminal) WriteString(s string) error {
	_, err := t.Write([]byte(s))
	return err
}

// ClearScreen erases the whole screen.
func (t *Terminal) ClearScreen() error {
	return t.WriteString(seqClearScreen)
}

// ClearLine erases from the cursor to the end of the current line.
func (t *Terminal) ClearLine() error {
	return t.WriteString(seqClearLine)
}

// MoveCursorBackward moves the cursor one column to the left.
func (t *Terminal) MoveCursorBackward() error {
	return t.WriteString(seqCursorBackward)
}

// MoveCursorForward moves the cursor n columns to the right.
func (t *Terminal) MoveCursorForward(n int) error {
	return t.WriteString(fmt.Sprintf(seqCursorForward, n))
}

// MoveCursorToColumn moves the cursor to the 1-based absolute column n.
func (t *Terminal) MoveCursorToColumn(n int) error {
	return t.WriteString(fmt.Sprintf(seqCursorColumnAbsolute, n))
}
