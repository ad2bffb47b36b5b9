package toolchain

import (
	"bytes"
	"context"
	"os/exec"
)

// Result holds the outcome of one external command invocation. Output is
// captured for diagnostics only; callers decide success from ExitCode alone,
// never by parsing output text.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Options holds optional parameters for command execution.
type Options struct {
	Dir string            // working directory (optional)
	Env map[string]string // extra environment variables (overlay)
}

// Runner executes external toolchain commands synchronously.
// Implementations must be safe for stubbing in tests.
type Runner interface {
	// Run executes a command and blocks until it exits.
	// Returns a Result with ExitCode set if the process ran (even non-zero).
	// Returns an error only for execution failures (binary not found,
	// context canceled, I/O failure).
	Run(ctx context.Context, name string, args []string, opts Options) (Result, error)
}

// ExecRunner is the production Runner backed by os/exec.
type ExecRunner struct{}

// NewExecRunner creates a new ExecRunner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes the command and captures stdout/stderr.
func (r *ExecRunner) Run(ctx context.Context, name string, args []string, opts Options) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}
	if len(opts.Env) > 0 {
		cmd.Env = cmd.Environ()
		for k, v := range opts.Env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}

	err := cmd.Run()

	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, err
	}

	result.ExitCode = 0
	return result, nil
}
