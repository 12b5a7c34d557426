package git

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrEmptyMessage is returned when Commit is called with a blank message.
var ErrEmptyMessage = errors.New("commit message is empty")

// Committer hands assembled messages to git.
type Committer struct {
	runner Runner
}

// NewCommitter returns a committer using r, or an ExecRunner when r is nil.
func NewCommitter(r Runner) *Committer {
	if r == nil {
		r = &ExecRunner{}
	}

	return &Committer{runner: r}
}

// Commit runs `git commit -m <message>` followed by extraArgs and returns
// git's output.
func (c *Committer) Commit(ctx context.Context, message string, extraArgs ...string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}

	args := append([]string{"commit", "-m", message}, extraArgs...)

	out, err := c.runner.Run(ctx, "git", args...)
	if err != nil {
		return out, fmt.Errorf("git commit: %w: %s", err, strings.TrimSpace(out))
	}

	return out, nil
}

// RecentLog returns the lines of `git log -n<n>`.
func (c *Committer) RecentLog(ctx context.Context, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}

	out, err := c.runner.Run(ctx, "git", "log", "-n"+strconv.Itoa(n))
	if err != nil {
		return nil, fmt.Errorf("git log: %w", err)
	}

	return splitLines(out), nil
}

func splitLines(out string) []string {
	trimmed := strings.TrimRight(out, "\n")
	if trimmed == "" {
		return nil
	}

	return strings.Split(trimmed, "\n")
}
