//go:build linux

package integration_test

import "golang.org/x/sys/unix"

const (
	ioctlGetTermios = unix.TCGETS
)
