package psexec

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
)

// Runner abstracts process execution for testability.
type Runner interface {
	// Run starts name with args as discrete argv entries, waits for it to
	// exit, and returns its exit code plus captured stderr. err is non-nil
	// only when spawning itself failed.
	Run(name string, args []string) (exitCode int, stderr string, err error)
}

// RealRunner implements Runner using actual OS processes.
type RealRunner struct{}

// Run executes the command once, blocking until it exits. No timeout is
// enforced: the launcher is a thin pass-through and an unbounded script
// runs unbounded time. Standard output and error are captured rather than
// inherited so diagnostics can be surfaced on failure.
func (r *RealRunner) Run(name string, args []string) (int, string, error) {
	cmd := exec.Command(name, args...) // #nosec G204 -- name is the fixed trusted interpreter path, args passed the sanitizer
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code := exitErr.ExitCode()
			if code < 0 {
				// Killed by a signal or terminated abnormally.
				code = 1
			}
			return code, errBuf.String(), nil
		}
		return 0, "", fmt.Errorf("failed to start interpreter: %w", err)
	}

	return 0, errBuf.String(), nil
}

// MockRunner is a test double for Runner.
type MockRunner struct {
	RunFunc func(name string, args []string) (int, string, error)

	// Calls records every invocation for assertions.
	Calls [][]string
}

// Run records the call and delegates to the mock function.
func (m *MockRunner) Run(name string, args []string) (int, string, error) {
	m.Calls = append(m.Calls, append([]string{name}, args...))
	if m.RunFunc != nil {
		return m.RunFunc(name, args)
	}
	return 0, "", nil
}
