// Package lineedit provides an interactive line editor for terminal programs.
//
// This package implements the core mechanics behind readline-style libraries:
// switching the terminal into raw byte-at-a-time mode, decoding the incoming
// byte stream (including multi-byte escape sequences) into editing commands,
// maintaining an editable line buffer with a cursor, redrawing the line, and
// browsing a bounded command history.
//
// # Quick Start
//
// Create an editor and read lines in a loop:
//
//	editor := lineedit.New(
//	    lineedit.WithPrompt(lineedit.PromptFunc(func() string { return "$> " })),
//	)
//
//	for {
//	    line, err := editor.ReadLine()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("got: %s\n", line)
//	}
//
// # Architecture
//
// The package is organized around these core types:
//
//   - [Editor]: The orchestrator exposing ReadLine
//   - [Buffer]: A cursor-indexed editable line
//   - [Dispatcher]: Longest-match decoding of byte sequences into actions
//   - [History] and [HistoryCursor]: Bounded log of accepted lines and a
//     browsing position into it
//   - [Terminal]: Outbound control sequences with all-or-nothing writes
//
// Raw bytes flow from the input through the [Dispatcher], whose bound actions
// mutate the [Buffer] and the history; the [Editor] then redraws the line
// through the [Terminal].
//
// # Key Bindings
//
// The default bindings follow shell conventions: printable bytes insert at
// the cursor, Backspace deletes before it, Left/Right arrows move it, Up/Down
// arrows browse history, Tab invokes the completion hook, Ctrl+U and Ctrl+C
// clear the line, Newline accepts it, and Ctrl+D on an empty line ends the
// session (ReadLine returns io.EOF).
//
// # Raw Mode
//
// When the input is a terminal, ReadLine switches it to raw mode (echo off,
// line buffering off, control characters delivered as bytes) for the duration
// of the call and guarantees the previous configuration is restored on every
// exit path. The switch is a pluggable capability:
//
//	editor := lineedit.New(
//	    lineedit.WithRawMode(lineedit.NewTermiosRawMode(int(os.Stdin.Fd()))),
//	)
//
// Pipes and test readers need no configuration; a no-op capability is used
// automatically when the input is not a terminal.
//
// # Providers
//
// Prompt and completion are pluggable hooks with no-op defaults:
//
//	editor := lineedit.New(
//	    lineedit.WithPrompt(lineedit.PromptFunc(myPrompt)),
//	    lineedit.WithCompletion(lineedit.CompletionFunc(myCompleter)),
//	)
//
// # History
//
// Accepted lines are kept in a bounded in-memory log shared across ReadLine
// calls; the oldest entry is evicted when the capacity is exceeded.
// Persistence is explicit, never automatic:
//
//	storage := lineedit.NewFileHistoryStorage("/home/me/.myshell_history")
//	editor := lineedit.New(lineedit.WithHistoryStorage(storage))
//	editor.LoadHistory()
//	defer editor.SaveHistory()
//
// # Middleware
//
// Middleware intercepts editor actions for custom behavior:
//
//	mw := &lineedit.Middleware{
//	    Accept: func(line string, next func(string) error) error {
//	        log.Printf("accepted: %q", line)
//	        return next(line)
//	    },
//	}
//	editor := lineedit.New(lineedit.WithMiddleware(mw))
package lineedit
