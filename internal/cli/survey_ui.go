package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	surveycore "github.com/AlecAivazis/survey/v2/core"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/RookieChen4/git-commit/internal/message"
	"github.com/RookieChen4/git-commit/internal/wizard"
)

// errSurveyEscape is returned when a prompt was left with Esc. It matches
// terminal.InterruptErr so callers treat both keys the same.
var errSurveyEscape = fmt.Errorf("escape pressed: %w", terminal.InterruptErr)

var askSurveyOne = func(prompt survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
	return survey.AskOne(prompt, response, opts...)
}

func canUseInteractiveUI(input io.Reader, output io.Writer) bool {
	inputFile, inputOK := input.(*os.File)
	outputFile, outputOK := output.(*os.File)
	if !inputOK || !outputOK {
		return false
	}

	return term.IsTerminal(int(inputFile.Fd())) && term.IsTerminal(int(outputFile.Fd()))
}

// runWizardSurvey drives engine with survey prompts. Esc or Ctrl+C on any
// prompt cancels the wizard.
func runWizardSurvey(cmd *cobra.Command, engine *wizard.Engine) error {
	output := cmd.OutOrStdout()

	for engine.Status() == wizard.StatusActive {
		snap := engine.Snapshot()

		if len(snap.Answers) > 0 {
			printSurveyHint(output, "Message so far: "+message.Assemble(snap.Answers))
		}

		var err error
		if snap.Mode == wizard.ModeSelect {
			err = askSelectSurvey(cmd, engine, snap)
		} else {
			err = askTextSurvey(cmd, engine, snap)
		}

		if errors.Is(err, terminal.InterruptErr) {
			return engine.Cancel()
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func askTextSurvey(cmd *cobra.Command, engine *wizard.Engine, snap wizard.Snapshot) error {
	answer := ""
	prompt := &survey.Input{Message: surveyMessage(snap)}

	if err := askSurveyPrompt(cmd, prompt, &answer); err != nil {
		return fmt.Errorf("read %s: %w", snap.Key, err)
	}

	err := engine.Submit(answer)
	if errors.Is(err, wizard.ErrEmptyAnswer) {
		printSurveyHint(cmd.OutOrStdout(), "This step needs an answer.")
		return nil
	}

	return err
}

func askSelectSurvey(cmd *cobra.Command, engine *wizard.Engine, snap wizard.Snapshot) error {
	labels := make([]string, len(snap.Options))
	for i, opt := range snap.Options {
		labels[i] = opt.Label
	}

	printSurveyHint(cmd.OutOrStdout(), "Use Up/Down arrows, Enter to select, Esc to cancel.")

	index := -1
	prompt := &survey.Select{
		Message:  surveyMessage(snap),
		Options:  labels,
		PageSize: 10,
	}

	if err := askSurveyPrompt(cmd, prompt, &index); err != nil {
		return fmt.Errorf("read %s: %w", snap.Key, err)
	}

	return engine.Choose(index)
}

func surveyMessage(snap wizard.Snapshot) string {
	return fmt.Sprintf("[%d/%d] %s", snap.StepIndex+1, snap.TotalSteps, snap.Prompt)
}

func askSurveyPrompt(cmd *cobra.Command, prompt survey.Prompt, response interface{}) error {
	colorEnabled := surveyColorsEnabled()
	previousDisableColor := surveycore.DisableColor
	surveycore.DisableColor = !colorEnabled
	defer func() {
		surveycore.DisableColor = previousDisableColor
	}()

	questionFormat := "default"
	selectFocusFormat := "default"
	if colorEnabled {
		questionFormat = "cyan"
		selectFocusFormat = "cyan"
	}

	options := []survey.AskOpt{survey.WithIcons(func(icons *survey.IconSet) {
		icons.Question.Text = ">"
		icons.Question.Format = questionFormat
		icons.SelectFocus.Text = ">"
		icons.SelectFocus.Format = selectFocusFormat
	})}

	var escInput *surveyEscCancelInput

	inputFile, inputOK := cmd.InOrStdin().(*os.File)
	outputFile, outputOK := cmd.OutOrStdout().(*os.File)
	if inputOK && outputOK {
		escInput = newSurveyEscCancelInput(inputFile)
		options = append(options, survey.WithStdio(escInput, outputFile, outputFile))
	}

	err := askSurveyOne(prompt, response, options...)
	if escInput != nil && escInput.ConsumeCancelPressed() && errors.Is(err, terminal.InterruptErr) {
		return errSurveyEscape
	}

	return err
}

func surveyColorsEnabled() bool {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		return false
	}

	termValue := strings.TrimSpace(strings.ToLower(os.Getenv("TERM")))
	return termValue != "dumb"
}

func printSurveyHint(output io.Writer, message string) {
	fmt.Fprintln(output, message)
}
