// ABOUTME: Process runner executes the external discovery tool with os/exec
// ABOUTME: Captures stdout and stderr, ignores exit codes and kills the child on cancellation

package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"time"

	"profile-search-api/core/domain"
	apperrors "profile-search-api/core/errors"
)

// defaultWaitDelay bounds how long output pipes are drained after the child is killed
const defaultWaitDelay = 2 * time.Second

// ExecRunner implements the ToolRunner interface by spawning a child process
type ExecRunner struct {
	// Env, when non-nil, replaces the environment of the child process
	Env []string

	// WaitDelay is passed to exec.Cmd.WaitDelay
	WaitDelay time.Duration
}

// NewExecRunner creates a new process runner
func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		WaitDelay: defaultWaitDelay,
	}
}

// Run executes inv and waits for it to finish.
// The arguments are passed directly to the program; no shell is involved.
func (r *ExecRunner) Run(ctx context.Context, inv domain.Invocation) (domain.ToolOutput, error) {
	var output domain.ToolOutput
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, inv.Program, inv.Args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = r.WaitDelay
	if r.Env != nil {
		cmd.Env = r.Env
	}

	startTime := time.Now()
	if err := cmd.Start(); err != nil {
		if isUnavailable(err) {
			return output, &apperrors.ToolUnavailableError{Program: inv.Program, Cause: err}
		}
		return output, fmt.Errorf("failed to start %s: %w", inv.Program, err)
	}

	err := cmd.Wait()
	output.Duration = time.Since(startTime)
	output.Stdout = stdout.String()
	output.Stderr = stderr.String()

	if ctxErr := ctx.Err(); ctxErr != nil {
		output.ExitCode = -1
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return output, &apperrors.ToolTimeoutError{Program: inv.Program}
		}
		return output, ctxErr
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The tool exits non-zero when some site checks fail.
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("failed to wait for %s: %w", inv.Program, err)
	}

	return output, nil
}

// Available reports whether program resolves to an executable file
func (r *ExecRunner) Available(program string) bool {
	_, err := exec.LookPath(program)
	return err == nil
}

// isUnavailable reports whether a start error means the program is missing or not executable
func isUnavailable(err error) bool {
	return errors.Is(err, exec.ErrNotFound) ||
		errors.Is(err, exec.ErrDot) ||
		errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, fs.ErrPermission)
}
