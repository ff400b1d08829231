//go:build unix

package adapter

import (
	"os"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// childrenUsage returns the CPU time accumulated by every terminated and
// waited-for child of this process.
func childrenUsage() (cpuUsage, bool) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_CHILDREN, &ru); err != nil {
		return cpuUsage{}, false
	}

	return cpuUsage{
		user:   time.Duration(ru.Utime.Nano()),
		system: time.Duration(ru.Stime.Nano()),
	}, true
}

// exitCodeOf reports -signal for children killed by a signal.
func exitCodeOf(state *os.ProcessState) int {
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return -int(ws.Signal())
	}

	return state.ExitCode()
}
