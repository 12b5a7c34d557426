package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RookieChen4/git-commit/internal/schema"
)

var loadSchemaFile = schema.LoadFile

func init() {
	schemaCmd := &cobra.Command{
		Use:   "schema",
		Short: "Inspect and select commit message schemas",
	}

	schemaCmd.AddCommand(newSchemaShowCmd())
	schemaCmd.AddCommand(newSchemaValidateCmd())
	schemaCmd.AddCommand(newSchemaUseCmd())
	rootCmd.AddCommand(schemaCmd)
}

func newSchemaShowCmd() *cobra.Command {
	format := ""

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the schema the wizard would use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := resolveSchema()
			if err != nil {
				return err
			}

			if format == "" {
				printSchema(cmd.OutOrStdout(), s)
				return nil
			}

			data, err := schema.Encode(s, format)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "print as "+strings.Join(schema.Formats, ", ")+" instead of a summary")
	return cmd
}

func newSchemaValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a schema file for errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSchemaFile(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Schema %q is valid (%d steps).\n", s.Source, s.Len())
			return nil
		},
	}
}

func newSchemaUseCmd() *cobra.Command {
	clearSetting := false

	cmd := &cobra.Command{
		Use:   "use <file>",
		Short: "Validate a schema file and make it the default",
		Args: func(cmd *cobra.Command, args []string) error {
			if clearSetting {
				return cobra.NoArgs(cmd, args)
			}

			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			if clearSetting {
				if err := cfg.SetSchemaPath(""); err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), "Schema setting cleared.")
				return nil
			}

			path, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve schema path: %w", err)
			}

			s, err := loadSchemaFile(path)
			if err != nil {
				return err
			}

			if err := cfg.SetSchemaPath(s.Source); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Using schema %q.\n", s.Source)
			return nil
		},
	}

	cmd.Flags().BoolVar(&clearSetting, "clear", false, "remove the schema setting")
	return cmd
}

// resolveSchema applies the same lookup as the wizard: --schema, then the
// config setting, then discovered files.
func resolveSchema() (*schema.Schema, error) {
	path := rootOpts.schemaPath
	if strings.TrimSpace(path) == "" {
		cfg, err := loadConfig()
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}

		path = cfg.SchemaPath()
	}

	s, err := loadSchema(path)
	if err != nil {
		return nil, fmt.Errorf("load schema: %w", err)
	}

	return s, nil
}

func printSchema(output io.Writer, s *schema.Schema) {
	fmt.Fprintf(output, "Schema: %s\n", s.Source)
	fmt.Fprintln(output)

	for i, step := range s.Steps {
		required := ""
		if step.Required {
			required = ", required"
		}

		fmt.Fprintf(output, "  %d. %s (%s%s): %s\n", i+1, step.Key, step.Kind, required, step.Prompt)

		options, _ := s.Options(step.Key)
		for _, opt := range options {
			fmt.Fprintf(output, "       - %s  %s\n", opt.Value, opt.Label)
		}

		if step.Kind == schema.KindSelect && len(options) == 0 {
			fmt.Fprintln(output, "       (no options, asked as free text)")
		}
	}
}
