package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/RookieChen4/git-commit/internal/schema"
)

var (
	// ErrInvalidTransition is returned when an operation is applied to an
	// engine that is no longer active, or to a step of the wrong mode.
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrNoSelection is returned when a select step is submitted with
	// nothing selected. The step does not advance.
	ErrNoSelection = errors.New("no option selected")

	// ErrEmptyAnswer is returned when a required step is submitted empty.
	// The step does not advance.
	ErrEmptyAnswer = errors.New("an answer is required")

	// ErrOutOfRange is returned when an option index does not exist.
	ErrOutOfRange = errors.New("option index out of range")
)

// Mode is the input modality of the current step.
type Mode int

const (
	ModeText Mode = iota
	ModeSelect
)

func (m Mode) String() string {
	switch m {
	case ModeText:
		return "text"
	case ModeSelect:
		return "select"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Status is the lifecycle state of an engine.
type Status int

const (
	StatusActive Status = iota
	StatusCompleted
	StatusAborted
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusCompleted:
		return "completed"
	case StatusAborted:
		return "aborted"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Answer is the value recorded for one submitted step.
type Answer struct {
	Key   string
	Value string
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithTrimSpace trims surrounding whitespace from every submitted answer.
func WithTrimSpace(enabled bool) EngineOption {
	return func(e *Engine) {
		e.trimSpace = enabled
	}
}

// Engine drives a schema's steps to completion, one answer at a time.
//
// An engine is not safe for concurrent use; it is meant to be owned by the
// single goroutine reading input events.
type Engine struct {
	schema    *schema.Schema
	answers   []Answer
	step      int
	mode      Mode
	status    Status
	buffer    TextBuffer
	selection *SelectionList
	trimSpace bool
}

// New validates s and returns an engine positioned on the first step. The
// engine works on its own copy of s; later changes to s do not affect it.
func New(s *schema.Schema, opts ...EngineOption) (*Engine, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	s = s.Clone()

	e := &Engine{
		schema:  s,
		answers: make([]Answer, 0, s.Len()),
	}

	for _, opt := range opts {
		opt(e)
	}

	e.enter(0)
	return e, nil
}

// enter positions the engine on step i and derives its mode. A branch with
// no options degrades to free text.
func (e *Engine) enter(i int) {
	e.step = i
	e.buffer.Clear()
	e.selection = nil
	e.mode = ModeText

	options, _ := e.schema.Options(e.schema.Steps[i].Key)
	if len(options) > 0 {
		e.mode = ModeSelect
		e.selection = NewSelectionList(options)
	}
}

func (e *Engine) requireActive(op string) error {
	if e.status != StatusActive {
		return fmt.Errorf("%w: %s while %s", ErrInvalidTransition, op, e.status)
	}

	return nil
}

// Submit records value as the answer to the current step and advances.
func (e *Engine) Submit(value string) error {
	if err := e.requireActive("submit"); err != nil {
		return err
	}

	step := e.schema.Steps[e.step]
	if e.trimSpace {
		value = strings.TrimSpace(value)
	}

	if step.Required && strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyAnswer, step.Prompt)
	}

	e.answers = append(e.answers, Answer{Key: step.Key, Value: value})

	if e.step+1 == e.schema.Len() {
		e.step = e.schema.Len()
		e.status = StatusCompleted
		e.buffer.Clear()
		e.selection = nil
		return nil
	}

	e.enter(e.step + 1)
	return nil
}

// SubmitCurrent submits whatever the active input holds: the text buffer in
// text mode or the selected option's value in select mode.
func (e *Engine) SubmitCurrent() error {
	if err := e.requireActive("submit"); err != nil {
		return err
	}

	if e.mode == ModeSelect {
		opt, err := e.selection.Confirm()
		if err != nil {
			return err
		}

		return e.Submit(opt.Value)
	}

	value := e.buffer.Submit()
	if err := e.Submit(value); err != nil {
		e.buffer.AppendString(value)
		return err
	}

	return nil
}

// Choose selects option i of the current select step and submits it.
func (e *Engine) Choose(i int) error {
	if err := e.requireActive("choose"); err != nil {
		return err
	}

	if e.mode != ModeSelect {
		return fmt.Errorf("%w: choose on a %s step", ErrInvalidTransition, e.mode)
	}

	if err := e.selection.Select(i); err != nil {
		return err
	}

	return e.SubmitCurrent()
}

// Cancel aborts the wizard. Partial input for the current step is dropped
// and no answer is recorded for it.
func (e *Engine) Cancel() error {
	if err := e.requireActive("cancel"); err != nil {
		return err
	}

	e.status = StatusAborted
	e.buffer.Clear()
	e.selection = nil
	return nil
}

// Handle applies one input event. Editing events that do not apply to the
// current mode are ignored.
func (e *Engine) Handle(ev Event) error {
	if err := e.requireActive("handle " + ev.Type.String()); err != nil {
		return err
	}

	switch ev.Type {
	case EventChar:
		if e.mode == ModeText {
			e.buffer.Append(ev.Rune)
		}
	case EventBackspace:
		if e.mode == ModeText {
			e.buffer.Backspace()
		}
	case EventUp:
		if e.mode == ModeSelect {
			e.selection.Previous()
		}
	case EventDown:
		if e.mode == ModeSelect {
			e.selection.Next()
		}
	case EventUnselect:
		if e.mode == ModeSelect {
			e.selection.Unselect()
		}
	case EventSubmit:
		return e.SubmitCurrent()
	case EventCancel:
		return e.Cancel()
	}

	return nil
}

// Status returns the lifecycle state.
func (e *Engine) Status() Status {
	return e.status
}

// Mode returns the input mode of the current step.
func (e *Engine) Mode() Mode {
	return e.mode
}

// StepIndex returns the index of the step awaiting input. It equals the
// number of recorded answers.
func (e *Engine) StepIndex() int {
	return e.step
}

// TotalSteps returns the number of steps in the schema.
func (e *Engine) TotalSteps() int {
	return e.schema.Len()
}

// CurrentStep returns the step awaiting input; false once the engine has
// left the active state.
func (e *Engine) CurrentStep() (schema.Step, bool) {
	if e.status != StatusActive {
		return schema.Step{}, false
	}

	return e.schema.Step(e.step)
}

// Steps returns a copy of the schema's steps.
func (e *Engine) Steps() []schema.Step {
	cp := make([]schema.Step, len(e.schema.Steps))
	copy(cp, e.schema.Steps)
	return cp
}

// Answers returns a copy of the answer log in submission order.
func (e *Engine) Answers() []Answer {
	cp := make([]Answer, len(e.answers))
	copy(cp, e.answers)
	return cp
}

// Text returns the live text buffer.
func (e *Engine) Text() string {
	return e.buffer.Value()
}

// Options returns the options of the current select step.
func (e *Engine) Options() []schema.Option {
	if e.selection == nil {
		return nil
	}

	return e.selection.Items()
}

// Cursor returns the selection cursor of the current select step.
func (e *Engine) Cursor() (int, bool) {
	if e.selection == nil {
		return 0, false
	}

	return e.selection.Cursor()
}
