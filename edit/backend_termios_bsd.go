//go:build darwin || freebsd || netbsd || openbsd || dragonfly
// +build darwin freebsd netbsd openbsd dragonfly

package edit

import "golang.org/x/sys/unix"

// The BSD family (including Darwin) names its termios ioctl requests
// TIOCGETA/TIOCSETA instead of Linux's TCGETS/TCSETS; see
// backend_termios_linux.go for the other half of this split.
const (
	ioctlGetTermios = unix.TIOCGETA
	ioctlSetTermios = unix.TIOCSETA
)
