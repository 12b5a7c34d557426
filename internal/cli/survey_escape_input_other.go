//go:build !(darwin || linux)

package cli

import (
	"os"
	"time"
)

// Without poll every trailing Esc is treated as a standalone key press.
func surveyInputHasBufferedSequenceData(_ *os.File, _ time.Duration) bool {
	return false
}
