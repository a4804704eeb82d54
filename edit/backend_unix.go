//go:build !windows
// +build !windows

package edit

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// unixBackend implements Backend for Unix-like systems using termios
// for raw mode and a TIOCGWINSZ ioctl (falling back to golang.org/x/term
// and an escape-sequence cursor probe) for size queries.
type unixBackend struct {
	fd            int
	originalState *unix.Termios
	file          *os.File
	initialized   bool
	useEscapeSize bool
}

// newBackend creates the platform-specific backend. On Unix systems
// this is a termios-based backend reading from stdin.
func newBackend() Backend {
	return &unixBackend{
		fd:   int(os.Stdin.Fd()),
		file: os.Stdin,
	}
}

// Init saves the current terminal state and enters raw mode: canonical
// mode and echo disabled, input delivered byte-by-byte, output
// post-processing left in its default state for write paths that still
// need \n translation (the renderer emits \r\n explicitly, so none is
// required, but turning it off is not necessary either — unlike the
// original, we leave OPOST untouched since the renderer never relies on
// it).
func (b *unixBackend) Init() error {
	if b.initialized {
		return nil
	}

	state, err := unix.IoctlGetTermios(b.fd, ioctlGetTermios)
	if err != nil {
		return fmt.Errorf("edit: failed to get terminal state: %w", err)
	}
	b.originalState = state

	raw := *state
	// ISIG is cleared along with ICANON/ECHO so Ctrl-C arrives as byte 3
	// in the normal read stream instead of raising SIGINT (spec §4.D:
	// in-call Ctrl-C is a keystroke event, not process termination).
	raw.Lflag &^= unix.ICANON | unix.ECHO | unix.ISIG
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(b.fd, ioctlSetTermios, &raw); err != nil {
		return fmt.Errorf("edit: failed to set raw mode: %w", err)
	}

	b.initialized = true
	return nil
}

// Restore returns the terminal to the state captured by Init.
func (b *unixBackend) Restore() error {
	if b.originalState == nil {
		return nil
	}
	if err := unix.IoctlSetTermios(b.fd, ioctlSetTermios, b.originalState); err != nil {
		return fmt.Errorf("edit: failed to restore terminal state: %w", err)
	}
	return nil
}

// ReadByte blocks for exactly one byte. With VMIN=1/VTIME=0, the
// underlying read blocks until data is available.
func (b *unixBackend) ReadByte() (byte, error) {
	var buf [1]byte
	n, err := b.file.Read(buf[:])
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, fmt.Errorf("edit: short read")
	}
	return buf[0], nil
}

// Size reports the terminal's rows and columns via TIOCGWINSZ, falling
// back to golang.org/x/term and finally the escape-based cursor-probe
// technique from spec §4.A when neither primitive is usable.
func (b *unixBackend) Size() (rows, cols int, err error) {
	if !b.useEscapeSize {
		ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
		if err == nil && ws.Col > 0 {
			return int(ws.Row), int(ws.Col), nil
		}

		c, r, err := term.GetSize(int(os.Stdout.Fd()))
		if err == nil && c > 0 {
			return r, c, nil
		}
	}

	return b.escapeQuerySize()
}

// escapeQuerySize implements the fall-back terminal-size query: move
// the cursor far right, ask for the cursor position, and parse the
// reply (spec §4.A, §6).
func (b *unixBackend) escapeQuerySize() (rows, cols int, err error) {
	if _, err := os.Stdout.WriteString("\x1b[999C\x1b[6n"); err != nil {
		return 0, 0, err
	}

	var buf [32]byte
	i := 0
	for i < len(buf)-1 {
		c, err := b.ReadByte()
		if err != nil {
			return 0, 0, err
		}
		buf[i] = c
		i++
		if c == 'R' {
			break
		}
	}

	var r, c int
	if _, err := fmt.Sscanf(string(buf[:i]), "\x1b[%d;%dR", &r, &c); err != nil {
		return 0, 0, fmt.Errorf("edit: could not parse size reply: %w", err)
	}
	return r, c, nil
}

// NewTestBackend creates a backend instance for use by integration
// tests that need to exercise real raw-mode enter/exit against a pty.
func NewTestBackend() Backend {
	return newBackend()
}
