package wizard

import "github.com/RookieChen4/git-commit/internal/schema"

// SelectionList keeps a cursor over a fixed list of options. The cursor
// wraps around at both ends and can be cleared to "nothing selected".
//
// The list owns a copy of its options; later changes to the slice passed to
// NewSelectionList are not observed.
type SelectionList struct {
	items    []schema.Option
	cursor   int
	selected bool
}

// NewSelectionList creates a list with nothing selected.
func NewSelectionList(items []schema.Option) *SelectionList {
	cp := make([]schema.Option, len(items))
	copy(cp, items)

	return &SelectionList{items: cp}
}

// Next moves the cursor down, wrapping to the first item. From "nothing
// selected" it selects the first item. No-op on an empty list.
func (l *SelectionList) Next() {
	n := len(l.items)
	if n == 0 {
		return
	}

	if !l.selected {
		l.cursor = 0
		l.selected = true
		return
	}

	l.cursor = (l.cursor + 1) % n
}

// Previous moves the cursor up, wrapping to the last item. From "nothing
// selected" it selects the first item. No-op on an empty list.
func (l *SelectionList) Previous() {
	n := len(l.items)
	if n == 0 {
		return
	}

	if !l.selected {
		l.cursor = 0
		l.selected = true
		return
	}

	l.cursor = (l.cursor - 1 + n) % n
}

// Unselect clears the cursor.
func (l *SelectionList) Unselect() {
	l.cursor = 0
	l.selected = false
}

// Select moves the cursor to index i.
func (l *SelectionList) Select(i int) error {
	if i < 0 || i >= len(l.items) {
		return ErrOutOfRange
	}

	l.cursor = i
	l.selected = true
	return nil
}

// Confirm returns the option under the cursor, or ErrNoSelection when
// nothing is selected.
func (l *SelectionList) Confirm() (schema.Option, error) {
	if !l.selected {
		return schema.Option{}, ErrNoSelection
	}

	return l.items[l.cursor], nil
}

// Cursor returns the selected index and whether anything is selected.
func (l *SelectionList) Cursor() (int, bool) {
	if !l.selected {
		return 0, false
	}

	return l.cursor, true
}

// Items returns a copy of the options.
func (l *SelectionList) Items() []schema.Option {
	cp := make([]schema.Option, len(l.items))
	copy(cp, l.items)
	return cp
}
