package lineedit

// Control bytes recognized by the editor's default key bindings.
const (
	// KeyCtrlC cancels the current line content.
	KeyCtrlC byte = 3
	// KeyCtrlD ends the session when the buffer is empty.
	KeyCtrlD byte = 4
	// KeyTab triggers completion.
	KeyTab byte = 9
	// KeyNewline accepts the current line.
	KeyNewline byte = 10
	// KeyCtrlU clears the current line content.
	KeyCtrlU byte = 21
	// KeyEsc introduces a multi-byte escape sequence.
	KeyEsc byte = 27
	// KeyBackspace removes the byte before the cursor.
	KeyBackspace byte = 127
)

// Arrow-key escape sequences (CSI final bytes A-D).
var (
	// SeqCursorUp is ESC [ A, bound to history-previous.
	SeqCursorUp = []byte{KeyEsc, '[', 'A'}
	// SeqCursorDown is ESC [ B, bound to history-next.
	SeqCursorDown = []byte{KeyEsc, '[', 'B'}
	// SeqCursorRight is ESC [ C.
	SeqCursorRight = []byte{KeyEsc, '[', 'C'}
	// SeqCursorLeft is ESC [ D.
	SeqCursorLeft = []byte{KeyEsc, '[', 'D'}
)
