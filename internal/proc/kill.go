//go:build !windows

package proc

import (
	"fmt"
	"os"
	"syscall"
)

// Terminate asks a process to exit. Graceful sends SIGTERM; force sends
// SIGKILL. The returned error text is shown to the user verbatim.
func Terminate(pid int, force bool) error {
	sig := syscall.SIGTERM
	if force {
		sig = syscall.SIGKILL
	}

	p, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("process %d not found: %w", pid, err)
	}
	if err := p.Signal(sig); err != nil {
		return fmt.Errorf("signal %v to PID %d failed: %w", sig, pid, err)
	}
	return nil
}
