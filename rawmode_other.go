//go:build !linux

package lineedit

import "os"

// defaultRawMode returns a no-op provider on platforms without termios
// support wired in. Supply a RawModeProvider via WithRawMode instead.
func defaultRawMode(f *os.File) RawModeProvider {
	return NoopRawMode{}
}
