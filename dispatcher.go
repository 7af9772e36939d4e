package lineedit

import (
	"fmt"
	"io"
)

// UnknownCommandError reports a byte that matched no bound sequence while no
// fallback action was installed. The caller decides whether to log and keep
// scanning or treat it as fatal; the dispatcher itself resumes cleanly from
// the trie root if Run is called again.
type UnknownCommandError struct {
	Byte byte
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("lineedit: unknown command byte %d", e.Byte)
}

// Dispatcher decodes a byte stream into actions using longest-match lookup
// over bound sequences.
//
// Matching is byte-synchronous: a match is finalized either when the trie
// cannot be extended further (no lookahead needed) or when the next byte fails
// to continue it, in which case that byte is pushed back and reconsidered
// from the root. An unmatched byte goes to the fallback action, carrying the
// byte itself, which is how "insert this literal character" is expressed.
//
// Dispatcher is not safe for concurrent use.
type Dispatcher struct {
	trie     *sequenceTrie
	fallback Action

	// pending is a one-byte push-back slot, consulted before the reader.
	pending    byte
	hasPending bool

	last    byte
	stopped bool
}

// NewDispatcher creates a dispatcher with no bindings and no fallback.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		trie: newSequenceTrie(),
	}
}

// Bind associates a byte sequence (length >= 1) with an action.
// Binding a prefix or an extension of an existing sequence is legal; the
// longest match wins at decode time. Binding an empty sequence does nothing.
func (d *Dispatcher) Bind(seq []byte, action Action) {
	d.trie.insert(seq, action)
}

// BindByte associates a single byte with an action.
func (d *Dispatcher) BindByte(c byte, action Action) {
	d.trie.insert([]byte{c}, action)
}

// SetFallback installs the action invoked for bytes that match no binding.
func (d *Dispatcher) SetFallback(action Action) {
	d.fallback = action
}

// Stop makes Run return after the current action completes.
// Typically called from within a bound action (e.g. "line accepted").
func (d *Dispatcher) Stop() {
	d.stopped = true
}

// Reset clears the per-session state: the stop flag, the push-back slot, and
// the last byte. Bindings are kept. Call before reusing the dispatcher for a
// new read session.
func (d *Dispatcher) Reset() {
	d.stopped = false
	d.hasPending = false
	d.pending = 0
	d.last = 0
}

// LastByte returns the byte most recently consumed from the input.
func (d *Dispatcher) LastByte() byte {
	return d.last
}

// Run consumes input one byte at a time, invoking bound actions until an
// action calls Stop, the input is exhausted (clean return), an action returns
// an error, or an unmatched byte arrives with no fallback installed
// (UnknownCommandError).
func (d *Dispatcher) Run(input io.Reader) error {
	node := trieRoot

	for !d.stopped {
		c, err := d.readByte(input)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("lineedit: read input: %w", err)
		}
		d.last = c

		next := d.trie.child(node, c)
		if next < 0 {
			if act := d.trie.action(node); act != nil {
				// We were sitting on a completed match when a byte
				// that cannot extend it arrived: fire the match and
				// reconsider the byte from the root.
				if err := act(c); err != nil {
					return err
				}
				d.pushBack(c)
			} else if d.fallback != nil {
				if err := d.fallback(c); err != nil {
					return err
				}
			} else {
				return &UnknownCommandError{Byte: c}
			}
			node = trieRoot
			continue
		}

		node = next
		if d.trie.isLeaf(node) {
			if act := d.trie.action(node); act != nil {
				if err := act(c); err != nil {
					return err
				}
			}
			node = trieRoot
		}
	}

	return nil
}

// readByte returns the pushed-back byte if present, otherwise reads exactly
// one byte from input.
func (d *Dispatcher) readByte(input io.Reader) (byte, error) {
	if d.hasPending {
		d.hasPending = false
		return d.pending, nil
	}

	var buf [1]byte
	if _, err := io.ReadFull(input, buf[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			err = io.EOF
		}
		return 0, err
	}
	return buf[0], nil
}

// pushBack returns c to the front of the input so the next readByte sees it.
func (d *Dispatcher) pushBack(c byte) {
	d.pending = c
	d.hasPending = true
}
