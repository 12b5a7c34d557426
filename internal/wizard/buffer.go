package wizard

import "github.com/rivo/uniseg"

// TextBuffer holds a single line of free-form text.
//
// Backspace removes a whole grapheme cluster, so combining marks, emoji
// sequences and multi-byte characters are never split.
type TextBuffer struct {
	value string
}

// Append adds one character to the end of the buffer.
func (t *TextBuffer) Append(r rune) {
	t.value += string(r)
}

// AppendString adds every character of s, e.g. a pasted chunk.
func (t *TextBuffer) AppendString(s string) {
	t.value += s
}

// Backspace removes the last displayed character. It is a no-op on an empty
// buffer.
func (t *TextBuffer) Backspace() {
	if t.value == "" {
		return
	}

	cut := 0
	state := -1
	rest := t.value
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)
		if len(rest) > 0 {
			cut += len(cluster)
		}
	}

	t.value = t.value[:cut]
}

// Submit returns the buffer contents untouched and clears the buffer.
func (t *TextBuffer) Submit() string {
	value := t.value
	t.value = ""
	return value
}

// Clear drops the contents without returning them.
func (t *TextBuffer) Clear() {
	t.value = ""
}

// Value returns the current contents.
func (t *TextBuffer) Value() string {
	return t.value
}
