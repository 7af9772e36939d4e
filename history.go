package lineedit

import "fmt"

// DefaultHistorySize is the number of lines retained when no capacity is configured.
const DefaultHistorySize = 1024

// History is a bounded, append-only log of accepted lines.
// When the capacity is exceeded, the oldest entry is evicted (FIFO).
// Lines are stored verbatim: empty lines and duplicates are kept.
type History struct {
	entries  []string
	capacity int
}

// NewHistory creates a history that retains at most capacity lines.
// Values <= 0 are replaced with DefaultHistorySize.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistorySize
	}
	return &History{
		entries:  make([]string, 0, capacity),
		capacity: capacity,
	}
}

// Add appends line unconditionally, evicting the oldest entry when full.
func (h *History) Add(line string) {
	h.entries = append(h.entries, line)
	if len(h.entries) > h.capacity {
		h.entries = h.entries[1:]
	}
}

// Get returns the entry at index i, where 0 is the oldest retained line.
// An out-of-range index is an internal invariant violation and panics.
func (h *History) Get(i int) string {
	if i < 0 || i >= len(h.entries) {
		panic(fmt.Sprintf("lineedit: history index %d out of range [0, %d)", i, len(h.entries)))
	}
	return h.entries[i]
}

// Len returns the number of retained entries.
func (h *History) Len() int {
	return len(h.entries)
}

// IsEmpty returns true if no entries are retained.
func (h *History) IsEmpty() bool {
	return len(h.entries) == 0
}

// Capacity returns the maximum number of retained entries.
func (h *History) Capacity() int {
	return h.capacity
}

// Entries returns a copy of all retained entries, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// HistoryCursor browses a History without modifying it. Its position is an
// index in [0, Len()]; Len() means "not browsing" (one past the newest entry).
//
// The two directions are deliberately asymmetric: Previous clamps at the
// oldest entry and keeps returning it, while Next past the newest entry
// returns "" to signal "back to a blank line".
type HistoryCursor struct {
	history  *History
	position int
}

// NewHistoryCursor creates a cursor over h positioned after the newest entry.
func NewHistoryCursor(h *History) *HistoryCursor {
	return &HistoryCursor{
		history:  h,
		position: h.Len(),
	}
}

// Add appends line to the underlying history and keeps the cursor pointing
// one past the newest entry.
func (c *HistoryCursor) Add(line string) {
	before := c.history.Len()
	c.history.Add(line)
	if c.history.Len() > before {
		c.position++
	}
}

// Previous moves toward the oldest entry and returns the entry at the new
// position. At the oldest entry it stays put and returns that entry again.
// Returns "" if the history is empty.
func (c *HistoryCursor) Previous() string {
	if c.history.IsEmpty() {
		return ""
	}

	if c.position > 0 {
		c.position--
	}
	return c.history.Get(c.position)
}

// Next moves toward the newest entry, returning the entry at the old
// position. Past the newest entry it returns "".
func (c *HistoryCursor) Next() string {
	if c.history.IsEmpty() {
		return ""
	}

	if c.position < c.history.Len() {
		line := c.history.Get(c.position)
		c.position++
		return line
	}
	return ""
}

// ResetPosition moves the cursor one past the newest entry, so the next
// browsing session starts from the most recent line.
func (c *HistoryCursor) ResetPosition() {
	c.position = c.history.Len()
}

// History returns the underlying log.
func (c *HistoryCursor) History() *History {
	return c.history
}
