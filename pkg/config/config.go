// Package config provides the shell's runtime settings and their defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/user/dirsh/pkg/ports"
)

// Config represents the full configuration for dirsh. There is no config
// file; values come from flags and their environment fallbacks.
type Config struct {
	// Logging
	LogLevel string
	LogFile  string
	Quiet    bool

	// Interactive input
	HistoryLimit int
	NoHistory    bool

	// Script is the optional script file path. Empty means interactive.
	Script string
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		LogLevel:     "warn",
		HistoryLimit: 500,
	}
}

var levels = []string{"debug", "info", "warn", "error", "quiet"}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	valid := false
	for _, l := range levels {
		if strings.EqualFold(c.LogLevel, l) {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid log level %q (want one of %s)", c.LogLevel, strings.Join(levels, ", "))
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("history limit must not be negative, got %d", c.HistoryLimit)
	}
	return nil
}

// Level returns the effective console log level. Quiet wins over LogLevel.
func (c Config) Level() ports.LogLevel {
	if c.Quiet {
		return ports.LevelQuiet
	}
	return ports.ParseLogLevel(strings.ToLower(c.LogLevel))
}

// Interactive reports whether the shell reads commands from the console.
func (c Config) Interactive() bool {
	return c.Script == ""
}
