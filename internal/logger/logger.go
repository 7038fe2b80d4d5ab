// Package logger provides test loggers for internal use.
package logger

import (
	"testing"

	"github.com/taskhub/cleanup-go/logger"
)

// NewFailTestLogger returns a Logger that writes records through t.Logf
// and fails the test on Error records. Useful for surfacing unexpected
// errors in code under test immediately.
func NewFailTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	return &failTestLogger{t: t}
}

type failTestLogger struct {
	t *testing.T
}

func (f *failTestLogger) Debug(msg string, args ...any) {
	f.t.Logf("DEBUG %s %v", msg, args)
}

func (f *failTestLogger) Info(msg string, args ...any) {
	f.t.Logf("INFO %s %v", msg, args)
}

func (f *failTestLogger) Warn(msg string, args ...any) {
	f.t.Logf("WARN %s %v", msg, args)
}

func (f *failTestLogger) Error(msg string, args ...any) {
	f.t.Errorf("ERROR %s %v", msg, args)
}
