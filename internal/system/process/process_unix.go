// Released under an MIT license. See LICENSE.

//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package process

import (
	"os"

	"golang.org/x/sys/unix"
)

//nolint:gochecknoglobals
var (
	id       = unix.Getpid()
	group, _ = unix.Getpgid(id)
	terminal = int(os.Stdin.Fd())
)

// AwaitForeground stops the process until its group is the terminal's
// foreground group. It returns immediately if stdin is not a terminal.
func AwaitForeground() error {
	for {
		fg, err := ForegroundGroup()
		if err != nil || fg == group {
			return nil
		}

		err = unix.Kill(-group, unix.SIGTTIN)
		if err != nil {
			return err
		}

		group, err = unix.Getpgid(id)
		if err != nil {
			return err
		}
	}
}

// ForegroundGroup returns the terminal's current foreground group ID.
func ForegroundGroup() (int, error) {
	return unix.IoctlGetInt(terminal, unix.TIOCGPGRP)
}
