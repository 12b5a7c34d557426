package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/RookieChen4/git-commit/internal/app"
	"github.com/RookieChen4/git-commit/internal/config"
	"github.com/RookieChen4/git-commit/internal/logging"
	"github.com/RookieChen4/git-commit/internal/message"
	"github.com/RookieChen4/git-commit/internal/tui"
	"github.com/RookieChen4/git-commit/internal/wizard"
)

// ErrAborted is returned when the user cancels the wizard. It is not a
// failure and is not printed.
var ErrAborted = errors.New("commit aborted")

// recentLogEntries is how many commits the TUI log panel shows.
const recentLogEntries = 2

type rootOptions struct {
	schemaPath string
	dryRun     bool
	plain      bool
	logLevel   string
	logFile    string
}

var rootOpts rootOptions

var rootCmd = &cobra.Command{
	Use:   "git-commit [flags] [-- git commit args]",
	Short: "Compose a commit message step by step and commit it",
	Long: `git-commit walks through the steps of a commit message schema, one prompt
at a time, then runs git commit with the assembled message.

Steps are either free text or a choice from a fixed list. The schema is
read from --schema, the config file, a .git-commit.{yaml,json,toml} in the
working directory, or the built-in default.

Arguments after -- are passed to git commit unchanged.`,
	Version:       app.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          gitArgsOnly,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommitWizard(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootOpts.schemaPath, "schema", "", "schema file (yaml, json or toml)")

	flags := rootCmd.Flags()
	flags.BoolVar(&rootOpts.dryRun, "dry-run", false, "print the message instead of committing")
	flags.BoolVar(&rootOpts.plain, "plain", false, "use line-based prompts even on a terminal")
	flags.StringVar(&rootOpts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flags.StringVar(&rootOpts.logFile, "log-file", "", "append logs to this file")
}

func Execute() error {
	return rootCmd.Execute()
}

// gitArgsOnly accepts positional arguments only after "--".
func gitArgsOnly(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}

	if cmd.ArgsLenAtDash() != 0 {
		return fmt.Errorf("unexpected argument %q (pass git commit arguments after --)", args[0])
	}

	return nil
}

func runCommitWizard(cmd *cobra.Command, gitArgs []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	interactive := !rootOpts.plain && isInteractive(cmd.InOrStdin(), cmd.OutOrStdout())
	useTUI := interactive && cfg.IsFeatureEnabled("tui")

	logger, closeLog, err := newLogger(cmd.ErrOrStderr(), useTUI)
	if err != nil {
		return err
	}
	defer closeLog()
	logger = logger.With(zap.String("app", app.New().UserAgent()))

	schemaPath := rootOpts.schemaPath
	if strings.TrimSpace(schemaPath) == "" {
		schemaPath = cfg.SchemaPath()
	}

	s, err := loadSchema(schemaPath)
	if err != nil {
		return fmt.Errorf("load schema: %w", err)
	}

	logger.Debug("schema loaded", zap.String("source", s.Source), zap.Int("steps", s.Len()))

	engine, err := wizard.New(s, wizard.WithTrimSpace(cfg.TrimInput()))
	if err != nil {
		return fmt.Errorf("start wizard: %w", err)
	}

	committer := newCommitter()

	switch {
	case useTUI:
		logger.Debug("running front-end", zap.String("ui", "tui"))
		err = runTUI(engine, tuiCallbacks(cmd, cfg, committer, logger), app.Version)
	case interactive:
		logger.Debug("running front-end", zap.String("ui", "survey"))
		err = runWizardSurvey(cmd, engine)
	default:
		logger.Debug("running front-end", zap.String("ui", "plain"))
		err = runWizardPlain(cmd, engine)
	}

	if err != nil {
		return err
	}

	if engine.Status() != wizard.StatusCompleted {
		logger.Info("wizard cancelled", zap.Int("answered", len(engine.Answers())))
		fmt.Fprintln(cmd.ErrOrStderr(), "Commit cancelled.")
		return ErrAborted
	}

	msg, err := message.FromEngine(engine)
	if err != nil {
		return err
	}

	logger.Info("assembled commit message", zap.String("message", msg))

	if rootOpts.dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	}

	extraArgs := append(cfg.CommitArgs(), gitArgs...)

	output, err := committer.Commit(cmd.Context(), msg, extraArgs...)
	if err != nil {
		logger.Error("git commit failed", zap.Error(err), zap.String("message", msg), zap.Strings("args", extraArgs))
		fmt.Fprintf(cmd.ErrOrStderr(), "Commit message was:\n%s\n", msg)
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), output)
	return nil
}

// newLogger builds the command logger. Without --log-file, logs go to
// errOut, except under the full-screen TUI where they would corrupt the
// display and are dropped instead.
func newLogger(errOut io.Writer, fullScreen bool) (*zap.Logger, func(), error) {
	level, err := logging.ParseLevel(rootOpts.logLevel)
	if err != nil {
		return nil, nil, err
	}

	if rootOpts.logFile != "" {
		f, err := os.OpenFile(rootOpts.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}

		logger := logging.New(f, level)
		return logger, func() {
			_ = logger.Sync()
			_ = f.Close()
		}, nil
	}

	if fullScreen {
		return logging.NewNop(), func() {}, nil
	}

	logger := logging.New(errOut, level)
	return logger, func() { _ = logger.Sync() }, nil
}

func tuiCallbacks(cmd *cobra.Command, cfg *config.Config, committer commitSink, logger *zap.Logger) tui.Callbacks {
	if !cfg.IsFeatureEnabled("git-log") {
		return tui.Callbacks{}
	}

	ctx := cmd.Context()
	return tui.Callbacks{
		RecentLog: func() ([]string, error) {
			lines, err := committer.RecentLog(ctx, recentLogEntries)
			if err != nil {
				logger.Warn("read recent commits", zap.Error(err))
			}

			return lines, err
		},
	}
}

// readLine prints prompt and reads one line without its line ending. A
// final line without a newline is still returned.
func readLine(reader lineReader, output io.Writer, prompt string) (string, error) {
	fmt.Fprint(output, prompt)
	line, err := reader.ReadString('\n')
	if err != nil {
		if len(strings.TrimSpace(line)) == 0 {
			return "", err
		}
	}

	return strings.TrimRight(line, "\r\n"), nil
}

type lineReader interface {
	ReadString(delim byte) (string, error)
}
