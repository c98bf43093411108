// Package zaplogger provides a ports.Logger that writes structured JSON logs through zap.
package zaplogger

import (
	"fmt"

	"github.com/ideamans/go-l10n"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/user/dirsh/pkg/ports"
)

// Logger adapts a zap.SugaredLogger to ports.Logger.
type Logger struct {
	base  *zap.Logger
	sugar *zap.SugaredLogger
}

// New builds a production (JSON) zap logger that appends to path.
func New(path string, level ports.LogLevel) (*Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel(level))
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	base, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}
	return Wrap(base), nil
}

// Wrap adapts an existing zap logger.
func Wrap(base *zap.Logger) *Logger {
	return &Logger{base: base, sugar: base.Sugar()}
}

func (l *Logger) Debug(msg string, args ...interface{}) {
	l.sugar.Debug(l10n.F(msg, args...))
}

func (l *Logger) Info(msg string, args ...interface{}) {
	l.sugar.Info(l10n.F(msg, args...))
}

func (l *Logger) Warn(msg string, args ...interface{}) {
	l.sugar.Warn(l10n.F(msg, args...))
}

func (l *Logger) Error(msg string, args ...interface{}) {
	l.sugar.Error(l10n.F(msg, args...))
}

// WithComponent returns a child logger named after component.
func (l *Logger) WithComponent(component string) ports.Logger {
	return Wrap(l.base.Named(component))
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.base.Sync()
}

func zapLevel(level ports.LogLevel) zapcore.Level {
	switch level {
	case ports.LevelDebug:
		return zapcore.DebugLevel
	case ports.LevelInfo:
		return zapcore.InfoLevel
	case ports.LevelWarn:
		return zapcore.WarnLevel
	case ports.LevelError:
		return zapcore.ErrorLevel
	default:
		// quiet: nothing below fatal is written
		return zapcore.FatalLevel
	}
}

var _ ports.Logger = (*Logger)(nil)
