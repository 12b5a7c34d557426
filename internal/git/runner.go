package git

import (
	"context"
	"os/exec"
)

// Runner executes an external command and returns its combined output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// ExecRunner runs commands as child processes in Dir (the current working
// directory when empty).
type ExecRunner struct {
	Dir string
}

func (e *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = e.Dir

	out, err := cmd.CombinedOutput()
	return string(out), err
}
