package lineedit

// Buffer stores a single editable line of bytes and tracks a cursor within it.
// The cursor is an index in [0, Len()]: 0 is before the first byte, Len() is
// one past the last byte. All mutations keep the cursor inside that range.
// Buffer performs no terminal I/O.
type Buffer struct {
	data   []byte
	cursor int
}

// NewBuffer creates an empty buffer with the cursor at position 0.
func NewBuffer() *Buffer {
	return &Buffer{
		data: make([]byte, 0, 64),
	}
}

// Insert places c at the cursor position, shifting the remainder of the line
// right, and advances the cursor past the inserted byte.
func (b *Buffer) Insert(c byte) {
	if b.cursor == len(b.data) {
		b.data = append(b.data, c)
		b.cursor++
		return
	}

	b.data = append(b.data, 0)
	copy(b.data[b.cursor+1:], b.data[b.cursor:])
	b.data[b.cursor] = c
	b.cursor++
}

// Remove deletes the byte immediately before the cursor and moves the cursor
// back by one (backspace semantics). Does nothing if the cursor is at 0.
func (b *Buffer) Remove() {
	if b.cursor == 0 {
		return
	}
	b.data = append(b.data[:b.cursor-1], b.data[b.cursor:]...)
	b.cursor--
}

// MoveLeft moves the cursor one position toward the start of the line.
// Does nothing if the cursor is already at 0.
func (b *Buffer) MoveLeft() {
	if b.cursor > 0 {
		b.cursor--
	}
}

// MoveRight moves the cursor one position toward the end of the line.
// Does nothing if the cursor is already past the last byte.
func (b *Buffer) MoveRight() {
	if b.cursor < len(b.data) {
		b.cursor++
	}
}

// Reset replaces the whole line with s and places the cursor at the end.
// Used when history navigation overwrites the line.
func (b *Buffer) Reset(s string) {
	b.data = append(b.data[:0], s...)
	b.cursor = len(b.data)
}

// Clear empties the line and moves the cursor to 0.
func (b *Buffer) Clear() {
	b.data = b.data[:0]
	b.cursor = 0
}

// Position returns the current cursor index.
func (b *Buffer) Position() int {
	return b.cursor
}

// Len returns the number of bytes in the line.
func (b *Buffer) Len() int {
	return len(b.data)
}

// IsEmpty returns true if the line contains no bytes.
func (b *Buffer) IsEmpty() bool {
	return len(b.data) == 0
}

// String returns the line content. Implements fmt.Stringer.
func (b *Buffer) String() string {
	return string(b.data)
}
