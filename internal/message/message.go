package message

import (
	"errors"
	"strings"

	"github.com/RookieChen4/git-commit/internal/wizard"
)

// Separator joins answer values in the assembled message.
const Separator = " "

// ErrIncomplete is returned when a message is requested from an engine that
// has not completed.
var ErrIncomplete = errors.New("wizard has not completed")

// Assemble joins answer values in order. Empty values keep their position,
// which yields consecutive separators.
func Assemble(answers []wizard.Answer) string {
	values := make([]string, len(answers))
	for i, a := range answers {
		values[i] = a.Value
	}

	return strings.Join(values, Separator)
}

// FromEngine assembles the message of a completed engine.
func FromEngine(e *wizard.Engine) (string, error) {
	if e == nil || e.Status() != wizard.StatusCompleted {
		return "", ErrIncomplete
	}

	return Assemble(e.Answers()), nil
}
