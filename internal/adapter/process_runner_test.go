//go:build unix

package adapter

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	m "github.com/mouse-blink/tptester/internal/model"
)

// helperEnv makes the test binary act as a program under test when it is
// re-executed by LocalProcessRunner.
const helperEnv = "TPTESTER_HELPER_MODE"

func TestMain(main *testing.M) {
	if mode := os.Getenv(helperEnv); mode != "" {
		os.Exit(runHelper(mode, os.Args[1:]))
	}

	os.Exit(main.Run())
}

func runHelper(mode string, args []string) int {
	switch mode {
	case "cat":
		_, _ = io.Copy(os.Stdout, os.Stdin)
	case "args":
		_, _ = fmt.Fprint(os.Stdout, strings.Join(args, " "))
	case "exit":
		code, _ := strconv.Atoi(args[0])
		_, _ = fmt.Fprint(os.Stderr, "exiting")

		return code
	case "burn":
		burnCPU(200 * time.Millisecond)
	case "kill":
		_ = syscall.Kill(os.Getpid(), syscall.SIGKILL)
		time.Sleep(time.Second)
	}

	return 0
}

func burnCPU(d time.Duration) {
	x := 0

	for {
		for i := 0; i < 1_000_000; i++ {
			x += i
		}

		var ru unix.Rusage
		if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil || time.Duration(ru.Utime.Nano()) >= d {
			break
		}
	}

	_, _ = fmt.Fprint(io.Discard, x)
}

func helper(t *testing.T, mode string) string {
	t.Helper()
	t.Setenv(helperEnv, mode)

	return os.Args[0]
}

func TestLocalProcessRunner_Run(t *testing.T) {
	runner := NewLocalProcessRunner()

	t.Run("feeds stdin and captures stdout", func(t *testing.T) {
		result, err := runner.Run(helper(t, "cat"), nil, strings.NewReader("1 2 3\n"), "")
		require.NoError(t, err)

		assert.Equal(t, 0, result.ExitCode)
		assert.Equal(t, "1 2 3\n", string(result.Stdout))
		assert.Empty(t, result.Stderr)
		assert.GreaterOrEqual(t, result.UserTime, 0.0)
		assert.GreaterOrEqual(t, result.SystemTime, 0.0)
	})

	t.Run("nil stdin reads as empty", func(t *testing.T) {
		result, err := runner.Run(helper(t, "cat"), nil, nil, "")
		require.NoError(t, err)
		assert.Empty(t, result.Stdout)
	})

	t.Run("passes arguments verbatim", func(t *testing.T) {
		result, err := runner.Run(helper(t, "args"), []string{"a b", "$HOME", "*"}, nil, "")
		require.NoError(t, err)
		assert.Equal(t, "a b $HOME *", string(result.Stdout))
	})

	t.Run("non-zero exit is a result, not an error", func(t *testing.T) {
		result, err := runner.Run(helper(t, "exit"), []string{"3"}, nil, "")
		require.NoError(t, err)
		assert.Equal(t, 3, result.ExitCode)
		assert.Equal(t, "exiting", string(result.Stderr))
	})

	t.Run("signal reports negative exit code", func(t *testing.T) {
		result, err := runner.Run(helper(t, "kill"), nil, nil, "")
		require.NoError(t, err)
		assert.Equal(t, -int(syscall.SIGKILL), result.ExitCode)
	})

	t.Run("wrapper receives program and arguments", func(t *testing.T) {
		wrapper := helper(t, "args")

		result, err := runner.Run("./solution", []string{"--fast"}, nil, wrapper)
		require.NoError(t, err)
		assert.Equal(t, "./solution --fast", string(result.Stdout))
	})

	t.Run("missing program is a launch error", func(t *testing.T) {
		result, err := runner.Run("/nonexistent/tptester-program", nil, nil, "")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrLaunch))
		assert.Equal(t, -1, result.ExitCode)
		assert.Equal(t, m.SentinelTime, result.UserTime)
		assert.Equal(t, m.SentinelTime, result.SystemTime)
	})
}

func TestLocalProcessRunner_CPUTimeIsPerRun(t *testing.T) {
	runner := NewLocalProcessRunner()

	busy, err := runner.Run(helper(t, "burn"), nil, nil, "")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, busy.UserTime, 0.15)

	idle, err := runner.Run(helper(t, "cat"), nil, strings.NewReader(""), "")
	require.NoError(t, err)
	assert.Less(t, idle.UserTime, 0.1, "time of the previous run leaked into this one")
}

func TestCommandLine(t *testing.T) {
	name, argv := CommandLine("./prog", []string{"x"}, "")
	assert.Equal(t, "./prog", name)
	assert.Equal(t, []string{"x"}, argv)

	name, argv = CommandLine("./prog", []string{"x"}, DefaultWrapper)
	assert.Equal(t, DefaultWrapper, name)
	assert.Equal(t, []string{"./prog", "x"}, argv)
}
