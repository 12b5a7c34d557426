package tui

import (
	"strings"

	"github.com/RookieChen4/git-commit/internal/schema"
	"github.com/RookieChen4/git-commit/internal/wizard"
)

// BreadcrumbStep represents one schema step in the title bar.
type BreadcrumbStep struct {
	Label     string // step key, shown when active or pending
	Value     string // recorded answer, shown instead of Label once completed
	Active    bool
	Completed bool
}

// breadcrumbSteps derives the breadcrumb from the schema steps and the
// engine's current snapshot.
func breadcrumbSteps(steps []schema.Step, snap wizard.Snapshot) []BreadcrumbStep {
	out := make([]BreadcrumbStep, 0, len(steps))

	for i, step := range steps {
		bs := BreadcrumbStep{Label: step.Key}

		switch {
		case i < len(snap.Answers):
			bs.Completed = true
			bs.Value = snap.Answers[i].Value
		case i == snap.StepIndex && snap.Status == wizard.StatusActive:
			bs.Active = true
		}

		out = append(out, bs)
	}

	return out
}

// RenderBreadcrumb renders the breadcrumb bar from a list of steps.
//
// Completed steps show their Value (or Label if Value is empty) in green
// with a check mark. The active step is bold cyan. Pending steps are dim.
func RenderBreadcrumb(theme Theme, steps []BreadcrumbStep) string {
	var parts []string

	for _, step := range steps {
		if step.Completed {
			display := step.Label
			if strings.TrimSpace(step.Value) != "" {
				display = step.Value
			}

			parts = append(parts, theme.Completed.Render(display+" ✓"))
		} else if step.Active {
			parts = append(parts, theme.Active.Render(step.Label))
		} else {
			parts = append(parts, theme.Dim.Render(step.Label))
		}
	}

	if len(parts) == 0 {
		return ""
	}

	sep := theme.BreadSep.Render(" › ")
	return strings.Join(parts, sep)
}
