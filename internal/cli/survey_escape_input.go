package cli

import (
	"os"
	"time"
)

const (
	surveyEscapeByte            = byte(0x1b)
	surveyInterruptByte         = byte(0x03)
	surveyEscapeSequenceTimeout = 25 * time.Millisecond
)

// surveyEscCancelInput wraps the terminal input so a standalone Esc reads as
// Ctrl+C, which survey reports as terminal.InterruptErr. Escape sequences
// such as arrow keys pass through unchanged.
type surveyEscCancelInput struct {
	file          *os.File
	cancelPressed bool
}

func newSurveyEscCancelInput(file *os.File) *surveyEscCancelInput {
	return &surveyEscCancelInput{file: file}
}

func (i *surveyEscCancelInput) Read(p []byte) (int, error) {
	n, err := i.file.Read(p)
	if n <= 0 {
		return n, err
	}

	for index := 0; index < n; index++ {
		if p[index] != surveyEscapeByte {
			continue
		}

		// More bytes in this read means the escape starts a sequence.
		if index < n-1 {
			continue
		}

		if surveyInputHasBufferedSequenceData(i.file, surveyEscapeSequenceTimeout) {
			continue
		}

		p[index] = surveyInterruptByte
		i.cancelPressed = true
	}

	return n, err
}

func (i *surveyEscCancelInput) Fd() uintptr {
	return i.file.Fd()
}

// ConsumeCancelPressed reports whether an Esc was translated since the last
// call.
func (i *surveyEscCancelInput) ConsumeCancelPressed() bool {
	wasPressed := i.cancelPressed
	i.cancelPressed = false

	return wasPressed
}
