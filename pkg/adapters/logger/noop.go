package logger

import "github.com/user/dirsh/pkg/ports"

// NoopLogger discards everything. It backs --quiet and most tests.
type NoopLogger struct{}

// NewNoop creates a new no-op logger.
func NewNoop() *NoopLogger {
	return &NoopLogger{}
}

func (l *NoopLogger) Debug(string, ...interface{}) {}

func (l *NoopLogger) Info(string, ...interface{}) {}

func (l *NoopLogger) Warn(string, ...interface{}) {}

func (l *NoopLogger) Error(string, ...interface{}) {}

// WithComponent returns the receiver; there is nothing to prefix.
func (l *NoopLogger) WithComponent(string) ports.Logger {
	return l
}

var _ ports.Logger = (*NoopLogger)(nil)
