package lineedit

// --- Prompt Provider ---

// PromptProvider computes the prompt string rendered before the editable line.
// It is consulted once per ReadLine call, so the prompt may change between
// lines (e.g. to show the working directory).
type PromptProvider interface {
	// Prompt returns the prompt string.
	Prompt() string
}

// PromptFunc adapts a plain function to a PromptProvider.
type PromptFunc func() string

func (f PromptFunc) Prompt() string { return f() }

// NoopPrompt renders no prompt.
type NoopPrompt struct{}

func (NoopPrompt) Prompt() string { return "" }

// --- Completion Provider ---

// CompletionProvider turns the current line content into its completed form.
// The returned string replaces the whole line.
type CompletionProvider interface {
	// Complete returns the completion for the given line.
	Complete(line string) string
}

// CompletionFunc adapts a plain function to a CompletionProvider.
type CompletionFunc func(line string) string

func (f CompletionFunc) Complete(line string) string { return f(line) }

// NoopCompletion leaves the line unchanged.
type NoopCompletion struct{}

func (NoopCompletion) Complete(line string) string { return line }

// --- Raw Mode Provider ---

// RestoreFunc undoes a raw-mode switch, returning the device to the
// configuration it had before Apply.
type RestoreFunc func() error

// RawModeProvider switches the input device into a raw byte-at-a-time mode.
// The editor applies it when a read session starts and always calls the
// returned RestoreFunc when the session ends, on every exit path.
type RawModeProvider interface {
	// Apply reconfigures the device according to mode and returns a
	// function that restores the previous configuration.
	Apply(mode TermMode) (RestoreFunc, error)
}

// NoopRawMode leaves the device untouched. Used when the input is not a
// terminal (pipes, tests).
type NoopRawMode struct{}

func (NoopRawMode) Apply(mode TermMode) (RestoreFunc, error) {
	return func() error { return nil }, nil
}

// TermMode describes the terminal options the editor configures.
type TermMode struct {
	// Echo enables automatic echoing of typed characters.
	Echo bool
	// Canonical enables line-buffered input.
	Canonical bool
	// SignalChars makes Ctrl+C/Ctrl+Z generate signals instead of
	// being delivered as raw bytes.
	SignalChars bool
	// OutputProcessing enables output post-processing (e.g. NL -> CRNL).
	OutputProcessing bool
	// MinBytes is the minimum number of bytes per non-canonical read.
	MinBytes int
	// TimeoutDeciseconds is the non-canonical read timeout, in tenths
	// of a second. 0 blocks until MinBytes are available.
	TimeoutDeciseconds int
}

// RawTermMode returns the configuration the editor uses by default:
// fully raw, byte-at-a-time, blocking on one byte, with Ctrl+C/Ctrl+Z
// delivered as bytes.
func RawTermMode() TermMode {
	return TermMode{
		Echo:               false,
		Canonical:          false,
		SignalChars:        false,
		OutputProcessing:   false,
		MinBytes:           1,
		TimeoutDeciseconds: 0,
	}
}

// Ensure implementations satisfy their interfaces
var (
	_ PromptProvider     = NoopPrompt{}
	_ PromptProvider     = PromptFunc(nil)
	_ CompletionProvider = NoopCompletion{}
	_ CompletionProvider = CompletionFunc(nil)
	_ RawModeProvider    = NoopRawMode{}
)
