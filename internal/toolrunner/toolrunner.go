// Package toolrunner wraps external command execution behind a small
// capability interface. The installer driver and the certificate helper
// receive a Runner instead of calling os/exec directly, which keeps every
// subprocess-facing code path swappable with a fake in tests.
package toolrunner

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Result captures the outcome of one blocking subprocess run.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// LastStdoutLine returns the final non-empty line of captured stdout.
// The certificate helper reads the exported thumbprint this way.
func (r *Result) LastStdoutLine() string {
	lines := strings.Split(strings.TrimRight(r.Stdout, "\r\n"), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}

// Runner executes a command in a working directory and blocks until it
// exits. A non-zero exit code is reported through Result, not the error;
// the error return is reserved for spawn failures (binary missing,
// context cancelled before start).
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) (*Result, error)
}

// ExecRunner is the os/exec-backed Runner used outside of tests. When
// Stdout or Stderr is set, subprocess output is streamed there while still
// being captured into the Result.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes name with args in dir and waits for it to finish.
func (e *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (*Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	if e.Stdout != nil {
		cmd.Stdout = io.MultiWriter(e.Stdout, &stdoutBuf)
	}
	if e.Stderr != nil {
		cmd.Stderr = io.MultiWriter(e.Stderr, &stderrBuf)
	}

	err := cmd.Run()

	result := &Result{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, fmt.Errorf("running %s: %w", name, err)
	}

	return result, nil
}

// Available reports whether a binary can be resolved on PATH.
func Available(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
