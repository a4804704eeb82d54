//go:build linux
// +build linux

package edit

import "golang.org/x/sys/unix"

// Linux's termios ioctl requests differ from the BSD family's; see
// backend_termios_bsd.go for the other half of this split.
const (
	ioctlGetTermios = unix.TCGETS
	ioctlSetTermios = unix.TCSETS
)
