package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RookieChen4/git-commit/internal/config"
)

func init() {
	featureCmd := &cobra.Command{
		Use:   "feature",
		Short: "Toggle optional parts of the commit wizard",
		Long: `Toggle optional parts of the commit wizard.

  tui      full-screen interface on interactive terminals
  git-log  show recent commits next to the wizard

Changes apply from the next git-commit run.`,
	}

	featureCmd.AddCommand(newFeatureToggleCmd(true))
	featureCmd.AddCommand(newFeatureToggleCmd(false))
	featureCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Show feature flags and the wizard settings they apply to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listFeatures(cmd.OutOrStdout())
		},
	})
	rootCmd.AddCommand(featureCmd)
}

func newFeatureToggleCmd(enabled bool) *cobra.Command {
	verb, short := "disable", "Turn a wizard feature off"
	if enabled {
		verb, short = "enable", "Turn a wizard feature on"
	}

	return &cobra.Command{
		Use:       verb + " <feature>",
		Short:     short,
		Args:      cobra.ExactArgs(1),
		ValidArgs: featureNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setFeatureFlag(cmd.OutOrStdout(), args[0], enabled)
		},
	}
}

func featureNames() []string {
	names := make([]string, 0, len(config.FeatureRegistry))
	for _, def := range config.FeatureRegistry {
		names = append(names, def.Name)
	}
	slices.Sort(names)

	return names
}

func setFeatureFlag(output io.Writer, name string, enabled bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := cfg.SetFeature(name, enabled); err != nil {
		return err
	}

	fmt.Fprintf(output, "Feature %q is now %s for the commit wizard.\n", name, onOff(enabled))
	fmt.Fprintf(output, "Saved to %s\n", cfg.Path())

	return nil
}

func listFeatures(output io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	features := cfg.Features()
	if len(features) == 0 {
		fmt.Fprintln(output, "No feature flags available.")
		return nil
	}

	defaults := make(map[string]bool, len(config.FeatureRegistry))
	for _, def := range config.FeatureRegistry {
		defaults[def.Name] = def.Default
	}

	fmt.Fprintln(output, "Commit wizard features:")

	width := 0
	for _, f := range features {
		width = max(width, len(f.Name))
	}

	for _, f := range features {
		marker := " "
		if f.Enabled != defaults[f.Name] {
			marker = "*"
		}

		fmt.Fprintf(output, "  %-*s  %-3s%s  %s\n", width, f.Name, onOff(f.Enabled), marker, f.Description)
	}

	fmt.Fprintln(output)
	fmt.Fprintln(output, "Settings:")

	schemaPath := cfg.SchemaPath()
	if schemaPath == "" {
		schemaPath = "(search order)"
	}
	fmt.Fprintf(output, "  schema       %s\n", schemaPath)
	fmt.Fprintf(output, "  trim_input   %s\n", onOff(cfg.TrimInput()))

	commitArgs := strings.Join(cfg.CommitArgs(), " ")
	if commitArgs == "" {
		commitArgs = "(none)"
	}
	fmt.Fprintf(output, "  commit_args  %s\n", commitArgs)

	fmt.Fprintln(output)
	fmt.Fprintf(output, "* differs from default. Config: %s\n", cfg.Path())

	return nil
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}

	return "off"
}
