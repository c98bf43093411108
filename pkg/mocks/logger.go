package mocks

import (
	"sync"

	"github.com/ideamans/go-l10n"

	"github.com/user/dirsh/pkg/ports"
)

// LogEntry is one message captured by Logger.
type LogEntry struct {
	Level     ports.LogLevel
	Component string
	Message   string
}

// Logger is a mock implementation of ports.Logger that records every
// message. Loggers derived with WithComponent share the record.
type Logger struct {
	mu        *sync.Mutex
	entries   *[]LogEntry
	component string
}

// NewLogger creates a new recording Logger.
func NewLogger() *Logger {
	return &Logger{
		mu:      &sync.Mutex{},
		entries: &[]LogEntry{},
	}
}

func (m *Logger) Debug(msg string, args ...interface{}) { m.record(ports.LevelDebug, msg, args) }

func (m *Logger) Info(msg string, args ...interface{}) { m.record(ports.LevelInfo, msg, args) }

func (m *Logger) Warn(msg string, args ...interface{}) { m.record(ports.LevelWarn, msg, args) }

func (m *Logger) Error(msg string, args ...interface{}) { m.record(ports.LevelError, msg, args) }

func (m *Logger) WithComponent(component string) ports.Logger {
	return &Logger{
		mu:        m.mu,
		entries:   m.entries,
		component: component,
	}
}

// Entries returns a copy of everything logged so far.
func (m *Logger) Entries() []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]LogEntry(nil), (*m.entries)...)
}

// Messages returns the messages logged at level.
func (m *Logger) Messages(level ports.LogLevel) []string {
	var out []string
	for _, e := range m.Entries() {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}

func (m *Logger) record(level ports.LogLevel, msg string, args []interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	*m.entries = append(*m.entries, LogEntry{
		Level:     level,
		Component: m.component,
		Message:   l10n.F(msg, args...),
	})
}

var _ ports.Logger = (*Logger)(nil)
