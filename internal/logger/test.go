package logger

import (
	"fmt"
	"strings"
	"testing"

	"github.com/tdmkit/dvec/types"
)

// TestLogger routes engine log output through testing.T, so operator logs
// interleave with test output and follow -v visibility rules.
type TestLogger struct {
	t *testing.T
}

var _ types.Logger = (*TestLogger)(nil)

// NewTest creates a logger that writes through t.Logf.
//
// Parameters:
//   - t: The test to log through
//
// Returns:
//   - *TestLogger: Logger bound to t
func NewTest(t *testing.T) *TestLogger {
	return &TestLogger{t: t}
}

// Debug logs a debug-level message.
func (l *TestLogger) Debug(msg string, keysAndValues ...any) {
	l.t.Logf("%s", render("DEBUG", msg, keysAndValues))
}

// Info logs an info-level message.
func (l *TestLogger) Info(msg string, keysAndValues ...any) {
	l.t.Logf("%s", render("INFO", msg, keysAndValues))
}

// Warn logs a warning-level message.
func (l *TestLogger) Warn(msg string, keysAndValues ...any) {
	l.t.Logf("%s", render("WARN", msg, keysAndValues))
}

// Error logs an error-level message.
func (l *TestLogger) Error(msg string, keysAndValues ...any) {
	l.t.Logf("%s", render("ERROR", msg, keysAndValues))
}

// Fatal logs the message and fails the test immediately.
func (l *TestLogger) Fatal(msg string, keysAndValues ...any) {
	l.t.Fatalf("%s", render("FATAL", msg, keysAndValues))
}

func render(level, msg string, keysAndValues []any) string {
	var b strings.Builder
	b.WriteString(level)
	b.WriteString(": ")
	b.WriteString(msg)

	for i := 0; i < len(keysAndValues); i += 2 {
		value := any("<missing>")
		if i+1 < len(keysAndValues) {
			value = keysAndValues[i+1]
		}
		fmt.Fprintf(&b, " %v=%v", keysAndValues[i], value)
	}

	return b.String()
}
