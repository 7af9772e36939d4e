package lineedit

// Middleware intercepts editor actions, allowing custom behavior before/after
// execution. Each field wraps one action: receive the original parameters and
// a next function to call the default implementation. Not calling next
// suppresses the action.
type Middleware struct {
	// Input wraps the insertion of a literal byte into the line.
	Input func(c byte, next func(byte) error) error

	// Accept wraps the acceptance of a finished line, before it is
	// appended to history.
	Accept func(line string, next func(string) error) error

	// Complete wraps the completion hook invocation.
	Complete func(line string, next func(string) error) error
}

// Merge copies the non-nil hooks from other into m.
func (m *Middleware) Merge(other *Middleware) {
	if other == nil {
		return
	}
	if other.Input != nil {
		m.Input = other.Input
	}
	if other.Accept != nil {
		m.Accept = other.Accept
	}
	if other.Complete != nil {
		m.Complete = other.Complete
	}
}
