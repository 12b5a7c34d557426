package wizard

import "github.com/RookieChen4/git-commit/internal/schema"

// EventType identifies a discrete input event.
type EventType int

const (
	EventChar EventType = iota
	EventBackspace
	EventUp
	EventDown
	EventUnselect
	EventSubmit
	EventCancel
)

var eventNames = map[EventType]string{
	EventChar:      "char",
	EventBackspace: "backspace",
	EventUp:        "up",
	EventDown:      "down",
	EventUnselect:  "unselect",
	EventSubmit:    "submit",
	EventCancel:    "cancel",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}

	return "unknown"
}

// Event is one input event. Rune is only meaningful for EventChar.
type Event struct {
	Type EventType
	Rune rune
}

// Char returns a character-typed event.
func Char(r rune) Event {
	return Event{Type: EventChar, Rune: r}
}

// Snapshot is a read-only view of the engine for renderers.
type Snapshot struct {
	Status     Status
	Mode       Mode
	StepIndex  int
	TotalSteps int
	Key        string
	Prompt     string
	Required   bool
	Text       string
	Options    []schema.Option
	Cursor     int
	HasCursor  bool
	Answers    []Answer
}

// Snapshot captures the current state.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Status:     e.status,
		Mode:       e.mode,
		StepIndex:  e.step,
		TotalSteps: e.schema.Len(),
		Text:       e.buffer.Value(),
		Options:    e.Options(),
		Answers:    e.Answers(),
	}

	snap.Cursor, snap.HasCursor = e.Cursor()

	if step, ok := e.CurrentStep(); ok {
		snap.Key = step.Key
		snap.Prompt = step.Prompt
		snap.Required = step.Required
	}

	return snap
}
