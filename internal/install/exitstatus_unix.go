//go:build unix

package install

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// signalStatus maps a child killed by a signal to 128+signal, as shells do.
func signalStatus(state *os.ProcessState) (int, string, bool) {
	if state == nil {
		return 0, "", false
	}
	ws, ok := state.Sys().(syscall.WaitStatus)
	if !ok {
		return 0, "", false
	}
	status := unix.WaitStatus(ws)
	if !status.Signaled() {
		return 0, "", false
	}
	sig := status.Signal()
	return 128 + int(sig), unix.SignalName(sig), true
}
