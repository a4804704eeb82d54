package edit

// Backend is the internal contract for platform-specific terminal I/O:
// raw-mode enter/exit, one-byte blocking reads, and terminal size
// queries. It abstracts the differences between POSIX termios and the
// Windows console API.
//
// Implementations must make Init and Restore idempotent and safe to
// call even on a failed or never-started backend.
type Backend interface {
	// Init enters raw mode, saving the current terminal state so
	// Restore can undo it. Calling Init again after a successful call
	// is a no-op.
	Init() error

	// Restore returns the terminal to the state it was in before Init.
	// Safe to call even if Init was never called or failed.
	Restore() error

	// ReadByte blocks until one byte is available from the terminal.
	ReadByte() (byte, error)

	// Size reports the terminal's current rows and columns. If the size
	// cannot be determined, callers should treat cols as unbounded
	// (spec §7: unknown size means no wrapping is performed).
	Size() (rows, cols int, err error)
}
