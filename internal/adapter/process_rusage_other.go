//go:build !unix

package adapter

import "os"

func childrenUsage() (cpuUsage, bool) {
	return cpuUsage{}, false
}

func exitCodeOf(state *os.ProcessState) int {
	return state.ExitCode()
}
