//go:build linux

package lineedit

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/sys/unix"
)

// TermiosRawMode reconfigures a terminal file descriptor through termios
// ioctls. Implements RawModeProvider.
type TermiosRawMode struct {
	fd int
}

// NewTermiosRawMode creates a raw-mode provider for the given descriptor.
func NewTermiosRawMode(fd int) *TermiosRawMode {
	return &TermiosRawMode{fd: fd}
}

// Apply switches the descriptor to the given mode and returns a RestoreFunc
// that reinstates the attributes read before the switch.
func (m *TermiosRawMode) Apply(mode TermMode) (RestoreFunc, error) {
	old, err := unix.IoctlGetTermios(m.fd, unix.TCGETS)
	if err != nil {
		return nil, fmt.Errorf("lineedit: get terminal attributes: %w", err)
	}

	state := *old
	setLflag(&state, unix.ECHO, mode.Echo)
	setLflag(&state, unix.ICANON, mode.Canonical)
	setLflag(&state, unix.ISIG, mode.SignalChars)
	if mode.OutputProcessing {
		state.Oflag |= unix.OPOST
	} else {
		state.Oflag &^= unix.OPOST
	}
	state.Cc[unix.VMIN] = uint8(mode.MinBytes)
	state.Cc[unix.VTIME] = uint8(mode.TimeoutDeciseconds)

	if err := unix.IoctlSetTermios(m.fd, unix.TCSETS, &state); err != nil {
		return nil, fmt.Errorf("lineedit: set terminal attributes: %w", err)
	}

	return func() error {
		if err := unix.IoctlSetTermios(m.fd, unix.TCSETS, old); err != nil {
			return fmt.Errorf("lineedit: restore terminal attributes: %w", err)
		}
		return nil
	}, nil
}

func setLflag(state *unix.Termios, flag uint32, on bool) {
	if on {
		state.Lflag |= flag
	} else {
		state.Lflag &^= flag
	}
}

// defaultRawMode picks the raw-mode provider for the given input file:
// termios when the file is a terminal, a no-op otherwise (pipes, redirects).
func defaultRawMode(f *os.File) RawModeProvider {
	if isatty.IsTerminal(f.Fd()) {
		return NewTermiosRawMode(int(f.Fd()))
	}
	return NoopRawMode{}
}

var _ RawModeProvider = (*TermiosRawMode)(nil)
