package adapter

import (
	"bytes"
	"io"
	"os/exec"
	"time"

	"github.com/cockroachdb/errors"

	m "github.com/mouse-blink/tptester/internal/model"
)

// DefaultWrapper is the diagnostic wrapper used by --valgrind.
const DefaultWrapper = "/usr/bin/valgrind"

// ProcessRunner executes the program under test once and measures it.
type ProcessRunner interface {
	// Run starts program with args, feeding stdin, and blocks until it exits.
	// When wrapper is not empty the command becomes `wrapper program args...`.
	// An error wrapping ErrLaunch means the process was never created; a
	// non-zero exit code is reported through the result instead.
	Run(program string, args []string, stdin io.Reader, wrapper string) (m.ExecutionResult, error)
}

// LocalProcessRunner runs programs on the local machine with os/exec.
type LocalProcessRunner struct{}

// NewLocalProcessRunner constructs a LocalProcessRunner.
func NewLocalProcessRunner() *LocalProcessRunner {
	return &LocalProcessRunner{}
}

// Run implements ProcessRunner.
//
// CPU time is the difference of the accumulated child usage taken just
// before the start and just after the wait, so earlier invocations never leak
// into this one.
func (r *LocalProcessRunner) Run(program string, args []string, stdin io.Reader, wrapper string) (m.ExecutionResult, error) {
	name, argv := CommandLine(program, args, wrapper)

	// #nosec G204 - running the user's program is the whole point
	cmd := exec.Command(name, argv...)
	cmd.Stdin = stdin

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	before, tracked := childrenUsage()

	if err := cmd.Start(); err != nil {
		return launchFailure(), errors.Mark(errors.Wrapf(err, "failed to start %s", name), ErrLaunch)
	}

	waitErr := cmd.Wait()
	after, _ := childrenUsage()

	result := m.ExecutionResult{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	if cmd.ProcessState != nil {
		result.ExitCode = exitCodeOf(cmd.ProcessState)
	}

	if tracked {
		result.UserTime = seconds(after.user - before.user)
		result.SystemTime = seconds(after.system - before.system)
	} else if cmd.ProcessState != nil {
		result.UserTime = seconds(cmd.ProcessState.UserTime())
		result.SystemTime = seconds(cmd.ProcessState.SystemTime())
	}

	var exitErr *exec.ExitError
	if waitErr != nil && !errors.As(waitErr, &exitErr) {
		return result, errors.Wrapf(waitErr, "failed while running %s", name)
	}

	return result, nil
}

// CommandLine returns the executable and argument vector for a run.
func CommandLine(program string, args []string, wrapper string) (string, []string) {
	if wrapper == "" {
		return program, append([]string(nil), args...)
	}

	argv := make([]string, 0, len(args)+1)
	argv = append(argv, program)
	argv = append(argv, args...)

	return wrapper, argv
}

type cpuUsage struct {
	user   time.Duration
	system time.Duration
}

func launchFailure() m.ExecutionResult {
	return m.ExecutionResult{
		ExitCode:   -1,
		UserTime:   m.SentinelTime,
		SystemTime: m.SentinelTime,
	}
}

func seconds(d time.Duration) float64 {
	if d < 0 {
		return 0
	}

	return d.Seconds()
}
