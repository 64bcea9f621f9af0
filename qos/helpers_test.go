package qos

import (
	"fmt"
	"testing"
)

// captureWarnings redirects the package warn hook into a slice for the
// duration of the test.
func captureWarnings(t *testing.T) *[]string {
	t.Helper()
	old := warnf
	var msgs []string
	warnf = func(format string, args ...interface{}) {
		msgs = append(msgs, fmt.Sprintf(format, args...))
	}
	t.Cleanup(func() { warnf = old })
	return &msgs
}
