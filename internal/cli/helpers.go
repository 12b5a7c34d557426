package cli

import (
	"context"

	"github.com/RookieChen4/git-commit/internal/config"
	"github.com/RookieChen4/git-commit/internal/git"
	"github.com/RookieChen4/git-commit/internal/schema"
	"github.com/RookieChen4/git-commit/internal/tui"
)

// commitSink receives the assembled message. *git.Committer satisfies it.
type commitSink interface {
	Commit(ctx context.Context, message string, extraArgs ...string) (string, error)
	RecentLog(ctx context.Context, n int) ([]string, error)
}

var loadConfig = config.Load
var loadSchema = schema.Load
var runTUI = tui.Run
var isInteractive = canUseInteractiveUI

var newCommitter = func() commitSink {
	return git.NewCommitter(nil)
}
