package lineedit

import (
	"io"
	"os"
)

// command identifies one editor operation bound to an input sequence.
// Dispatch goes through a single apply function instead of per-binding
// closures over editor state.
type command int

const (
	cmdInsert command = iota
	cmdBackspace
	cmdCancelLine
	cmdEndOfInput
	cmdAccept
	cmdComplete
	cmdMoveLeft
	cmdMoveRight
	cmdHistoryPrev
	cmdHistoryNext
)

// Editor reads and edits a single line of input at a time. It owns the text
// buffer, the command dispatcher, and the history; the terminal device, the
// prompt, and completion are pluggable capabilities.
//
// One Editor is long-lived: history persists across ReadLine calls, while the
// buffer and decoder state are reset at the start of each call.
//
// Editor is not safe for concurrent use.
type Editor struct {
	input  io.Reader
	output io.Writer

	buffer     *Buffer
	history    *HistoryCursor
	terminal   *Terminal
	dispatcher *Dispatcher

	prompt     PromptProvider
	completion CompletionProvider
	rawMode    RawModeProvider
	mode       TermMode
	storage    HistoryStorage
	middleware *Middleware

	historySize int

	// Per-session state.
	promptText string
	accepted   bool
	eof        bool
}

// Option configures an Editor during construction.
type Option func(*Editor)

// WithInput sets the reader the editor consumes bytes from.
// Defaults to os.Stdin.
func WithInput(r io.Reader) Option {
	return func(e *Editor) {
		e.input = r
	}
}

// WithOutput sets the writer the editor renders to.
// Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(e *Editor) {
		e.output = w
	}
}

// WithPrompt sets the prompt hook, consulted once per ReadLine call.
// Defaults to no prompt.
func WithPrompt(p PromptProvider) Option {
	return func(e *Editor) {
		e.prompt = p
	}
}

// WithCompletion sets the completion hook invoked on Tab.
// When unset, Tab does nothing.
func WithCompletion(p CompletionProvider) Option {
	return func(e *Editor) {
		e.completion = p
	}
}

// WithHistorySize sets the number of history lines retained.
// Values <= 0 are replaced with DefaultHistorySize.
func WithHistorySize(n int) Option {
	return func(e *Editor) {
		e.historySize = n
	}
}

// WithHistoryStorage sets the storage used by SaveHistory and LoadHistory.
// Defaults to a no-op store.
func WithHistoryStorage(s HistoryStorage) Option {
	return func(e *Editor) {
		e.storage = s
	}
}

// WithRawMode sets the raw-mode capability. When unset, termios is used if
// the input is a terminal, and a no-op otherwise.
func WithRawMode(p RawModeProvider) Option {
	return func(e *Editor) {
		e.rawMode = p
	}
}

// WithTermMode sets the terminal options applied when a session starts.
// Defaults to RawTermMode().
func WithTermMode(mode TermMode) Option {
	return func(e *Editor) {
		e.mode = mode
	}
}

// WithMiddleware sets hooks to intercept editor actions.
func WithMiddleware(mw *Middleware) Option {
	return func(e *Editor) {
		if e.middleware == nil {
			e.middleware = &Middleware{}
		}
		e.middleware.Merge(mw)
	}
}

// New creates an editor with the given options.
// Defaults to stdin/stdout, no prompt, no completion, and a no-op history store.
func New(opts ...Option) *Editor {
	e := &Editor{
		input:   os.Stdin,
		output:  os.Stdout,
		prompt:  NoopPrompt{},
		mode:    RawTermMode(),
		storage: NoopHistoryStorage{},
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.rawMode == nil {
		if f, ok := e.input.(*os.File); ok {
			e.rawMode = defaultRawMode(f)
		} else {
			e.rawMode = NoopRawMode{}
		}
	}

	e.buffer = NewBuffer()
	e.history = NewHistoryCursor(NewHistory(e.historySize))
	e.terminal = NewTerminal(e.output)

	e.dispatcher = NewDispatcher()
	e.dispatcher.BindByte(KeyCtrlU, e.action(cmdCancelLine))
	e.dispatcher.BindByte(KeyCtrlC, e.action(cmdCancelLine))
	e.dispatcher.BindByte(KeyBackspace, e.action(cmdBackspace))
	e.dispatcher.BindByte(KeyCtrlD, e.action(cmdEndOfInput))
	e.dispatcher.BindByte(KeyNewline, e.action(cmdAccept))
	e.dispatcher.BindByte(KeyTab, e.action(cmdComplete))
	e.dispatcher.Bind(SeqCursorLeft, e.action(cmdMoveLeft))
	e.dispatcher.Bind(SeqCursorRight, e.action(cmdMoveRight))
	e.dispatcher.Bind(SeqCursorUp, e.action(cmdHistoryPrev))
	e.dispatcher.Bind(SeqCursorDown, e.action(cmdHistoryNext))
	e.dispatcher.SetFallback(e.action(cmdInsert))

	return e
}

// ReadLine reads one line from the input, handling editing keys, history
// browsing, and completion, and returns the final line content.
//
// The raw-mode capability is applied when the call starts and restored on
// every exit path, including errors. The returned error is io.EOF when the
// session ended without an accepted line (Ctrl+D on an empty buffer, or the
// input was exhausted); any content typed before the input ended is still
// returned alongside io.EOF.
func (e *Editor) ReadLine() (line string, err error) {
	restore, err := e.rawMode.Apply(e.mode)
	if err != nil {
		return "", err
	}
	defer func() {
		if rerr := restore(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	e.buffer.Clear()
	e.dispatcher.Reset()
	e.accepted = false
	e.eof = false

	if err := e.terminal.MoveCursorToColumn(1); err != nil {
		return "", err
	}
	e.promptText = e.prompt.Prompt()
	if e.promptText != "" {
		if err := e.terminal.WriteString(e.promptText); err != nil {
			return "", err
		}
	}

	if err := e.dispatcher.Run(e.input); err != nil {
		return "", err
	}

	if !e.accepted {
		return e.buffer.String(), io.EOF
	}
	return e.buffer.String(), nil
}

// ClearScreen erases the whole screen on the output device.
func (e *Editor) ClearScreen() error {
	return e.terminal.ClearScreen()
}

// History returns the underlying history log.
func (e *Editor) History() *History {
	return e.history.History()
}

// SaveHistory writes the current history to the configured storage.
func (e *Editor) SaveHistory() error {
	return e.storage.Save(e.History().Entries())
}

// LoadHistory appends the stored entries to the current history (respecting
// its capacity) and resets the browsing position.
func (e *Editor) LoadHistory() error {
	entries, err := e.storage.Load()
	if err != nil {
		return err
	}
	for _, entry := range entries {
		e.history.Add(entry)
	}
	e.history.ResetPosition()
	return nil
}

// SetInput replaces the input stream at runtime. The raw-mode capability is
// not re-resolved; set one via WithRawMode when switching to a different
// terminal device.
func (e *Editor) SetInput(r io.Reader) {
	e.input = r
}

// SetOutput replaces the output stream at runtime.
func (e *Editor) SetOutput(w io.Writer) {
	e.output = w
	e.terminal = NewTerminal(w)
}

// SetPrompt replaces the prompt hook at runtime.
func (e *Editor) SetPrompt(p PromptProvider) {
	e.prompt = p
}

// SetCompletion replaces the completion hook at runtime.
func (e *Editor) SetCompletion(p CompletionProvider) {
	e.completion = p
}

// SetTermMode replaces the terminal options applied to future sessions.
func (e *Editor) SetTermMode(mode TermMode) {
	e.mode = mode
}

// action binds a command kind into a dispatcher action.
func (e *Editor) action(cmd command) Action {
	return func(c byte) error {
		return e.apply(cmd, c)
	}
}

// apply executes one editor command. c carries the triggering byte, which
// only cmdInsert uses.
func (e *Editor) apply(cmd command, c byte) error {
	switch cmd {
	case cmdInsert:
		if e.middleware != nil && e.middleware.Input != nil {
			return e.middleware.Input(c, e.insertChar)
		}
		return e.insertChar(c)

	case cmdBackspace:
		if e.buffer.Position() == 0 {
			return nil
		}
		if err := e.terminal.MoveCursorToColumn(e.promptColumn()); err != nil {
			return err
		}
		if err := e.terminal.ClearLine(); err != nil {
			return err
		}
		e.buffer.Remove()
		return e.renderBuffer()

	case cmdCancelLine:
		e.buffer.Clear()
		return e.clearRenderedLine()

	case cmdEndOfInput:
		// EOF-on-empty convention: Ctrl+D with content is a no-op.
		if e.buffer.IsEmpty() {
			e.eof = true
			e.dispatcher.Stop()
		}
		return nil

	case cmdAccept:
		if err := e.terminal.WriteString("\n"); err != nil {
			return err
		}
		accept := e.acceptLine
		if e.middleware != nil && e.middleware.Accept != nil {
			mw := e.middleware.Accept
			accept = func(line string) error {
				return mw(line, e.acceptLine)
			}
		}
		if err := accept(e.buffer.String()); err != nil {
			return err
		}
		if err := e.terminal.MoveCursorToColumn(1); err != nil {
			return err
		}
		e.accepted = true
		e.dispatcher.Stop()
		return nil

	case cmdComplete:
		if e.completion == nil {
			return nil
		}
		complete := e.completeLine
		if e.middleware != nil && e.middleware.Complete != nil {
			mw := e.middleware.Complete
			complete = func(line string) error {
				return mw(line, e.completeLine)
			}
		}
		return complete(e.buffer.String())

	case cmdMoveLeft:
		if e.buffer.Position() == 0 {
			return nil
		}
		e.buffer.MoveLeft()
		return e.terminal.MoveCursorBackward()

	case cmdMoveRight:
		if e.buffer.Position() >= e.buffer.Len() {
			return nil
		}
		e.buffer.MoveRight()
		return e.terminal.MoveCursorForward(1)

	case cmdHistoryPrev:
		return e.browseHistory((*HistoryCursor).Previous)

	case cmdHistoryNext:
		return e.browseHistory((*HistoryCursor).Next)
	}

	return nil
}

// insertChar inserts a literal byte at the cursor and redraws the line from
// the prompt boundary, then repositions the cursor absolutely.
func (e *Editor) insertChar(c byte) error {
	if err := e.terminal.MoveCursorToColumn(e.promptColumn()); err != nil {
		return err
	}
	e.buffer.Insert(c)
	return e.renderBuffer()
}

// acceptLine records an accepted line in history.
func (e *Editor) acceptLine(line string) error {
	e.history.Add(line)
	e.history.ResetPosition()
	return nil
}

// completeLine replaces the line with the completion hook's result.
func (e *Editor) completeLine(line string) error {
	completed := e.completion.Complete(line)
	if err := e.clearRenderedLine(); err != nil {
		return err
	}
	e.buffer.Reset(completed)
	return e.renderBuffer()
}

// browseHistory pulls the previous/next history entry into the buffer.
func (e *Editor) browseHistory(step func(*HistoryCursor) string) error {
	if e.History().IsEmpty() {
		return nil
	}
	entry := step(e.history)
	if err := e.clearRenderedLine(); err != nil {
		return err
	}
	e.buffer.Reset(entry)
	return e.renderBuffer()
}

// clearRenderedLine erases everything after the prompt on screen.
func (e *Editor) clearRenderedLine() error {
	if err := e.terminal.MoveCursorToColumn(e.promptColumn()); err != nil {
		return err
	}
	return e.terminal.ClearLine()
}

// renderBuffer writes the buffer content at the current terminal position
// and moves the cursor to the absolute column matching the buffer cursor.
// Content changes always reposition absolutely; only pure cursor moves
// (left/right) use relative motion.
func (e *Editor) renderBuffer() error {
	if err := e.terminal.WriteString(e.buffer.String()); err != nil {
		return err
	}
	return e.terminal.MoveCursorToColumn(e.promptColumn() + e.buffer.Position())
}

// promptColumn returns the 1-based terminal column just after the prompt.
func (e *Editor) promptColumn() int {
	return promptWidth(e.promptText) + 1
}
