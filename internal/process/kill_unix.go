//go:build !windows

// Package process stops browser process trees.
package process

import "syscall"

// KillProcessGroup sends SIGKILL to pid's process group (negative PID), so
// Chrome's renderer and GPU helpers die with it.
func KillProcessGroup(pid int) {
	// Best-effort; the launcher's own Kill still runs afterwards
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
