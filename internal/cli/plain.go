package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RookieChen4/git-commit/internal/wizard"
)

// runWizardPlain drives engine with line-based prompts. Select steps are
// answered by option number; "q" or end of input cancels.
func runWizardPlain(cmd *cobra.Command, engine *wizard.Engine) error {
	reader := bufio.NewReader(cmd.InOrStdin())
	output := cmd.OutOrStdout()

	for engine.Status() == wizard.StatusActive {
		snap := engine.Snapshot()

		var err error
		if snap.Mode == wizard.ModeSelect {
			err = askSelectPlain(reader, output, engine, snap)
		} else {
			err = askTextPlain(reader, output, engine, snap)
		}

		if errors.Is(err, io.EOF) {
			fmt.Fprintln(output)
			return engine.Cancel()
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func askTextPlain(reader lineReader, output io.Writer, engine *wizard.Engine, snap wizard.Snapshot) error {
	line, err := readLine(reader, output, plainPrompt(snap)+": ")
	if err != nil {
		return err
	}

	err = engine.Submit(line)
	if errors.Is(err, wizard.ErrEmptyAnswer) {
		fmt.Fprintln(output, "This step needs an answer.")
		return nil
	}

	return err
}

func askSelectPlain(reader lineReader, output io.Writer, engine *wizard.Engine, snap wizard.Snapshot) error {
	fmt.Fprintln(output, plainPrompt(snap))
	for i, opt := range snap.Options {
		fmt.Fprintf(output, "  %d) %s\n", i+1, opt.Label)
	}

	choice, err := readLine(reader, output, fmt.Sprintf("Option [1-%d, q to cancel]: ", len(snap.Options)))
	if err != nil {
		return err
	}

	choice = strings.ToLower(strings.TrimSpace(choice))
	if choice == "q" || choice == "quit" {
		return engine.Cancel()
	}

	index, convErr := strconv.Atoi(choice)
	if convErr != nil {
		index = optionIndexByValue(snap, choice)
	} else {
		index--
	}

	if err := engine.Choose(index); err != nil {
		if errors.Is(err, wizard.ErrOutOfRange) {
			fmt.Fprintf(output, "Invalid option %q. Enter 1-%d.\n\n", choice, len(snap.Options))
			return nil
		}

		return err
	}

	return nil
}

// optionIndexByValue lets plain users type an option value such as "fix".
func optionIndexByValue(snap wizard.Snapshot, value string) int {
	for i, opt := range snap.Options {
		if strings.EqualFold(opt.Value, value) {
			return i
		}
	}

	return -1
}

func plainPrompt(snap wizard.Snapshot) string {
	prompt := fmt.Sprintf("[%d/%d] %s", snap.StepIndex+1, snap.TotalSteps, snap.Prompt)
	if snap.Required {
		prompt += " (required)"
	}

	return prompt
}
