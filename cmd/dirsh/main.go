// Package main provides the CLI entry point for dirsh.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"
	"github.com/mattn/go-isatty"

	"github.com/user/dirsh/pkg/adapters/logger"
	"github.com/user/dirsh/pkg/adapters/osfilesystem"
	"github.com/user/dirsh/pkg/adapters/readersource"
	"github.com/user/dirsh/pkg/adapters/terminal"
	"github.com/user/dirsh/pkg/adapters/zaplogger"
	"github.com/user/dirsh/pkg/config"
	"github.com/user/dirsh/pkg/dispatcher"
	"github.com/user/dirsh/pkg/history"
	"github.com/user/dirsh/pkg/ports"
	"github.com/user/dirsh/pkg/session"
)

// CLI defines the command-line interface of the shell binary.
type CLI struct {
	Script []string `arg:"" optional:"" name:"file_name" help:"Script file to run instead of reading commands interactively."`

	// Logging options
	LogLevel string `short:"l" default:"warn" enum:"debug,info,warn,error,quiet" env:"DIRSH_LOG_LEVEL" group:"Logging" help:"Log level (debug, info, warn, error, quiet)."`
	Quiet    bool   `short:"Q" group:"Logging" help:"Suppress all console log output."`
	LogFile  string `type:"path" env:"DIRSH_LOG_FILE" group:"Logging" help:"Write JSON logs to this file instead of the console."`

	// Interactive options
	HistoryLimit int  `default:"500" env:"DIRSH_HISTORY_LIMIT" group:"Interactive" help:"Number of command lines kept for recall (0 = unlimited)."`
	NoHistory    bool `env:"DIRSH_NO_HISTORY" group:"Interactive" help:"Disable line editing and history recall."`

	Version kong.VersionFlag `help:"Show version information."`
}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("dirsh"),
		kong.Description(l10n.T("A small shell for navigating and editing the filesystem.")),
		kong.UsageOnError(),
		kong.Vars{"version": l10n.F("dirsh version %s", version)},
	)

	err := cli.Run(os.Stdin, os.Stdout)
	ctx.FatalIfErrorf(err)
}

// Run starts a session according to the parsed flags.
func (c *CLI) Run(stdin *os.File, stdout io.Writer) error {
	if len(c.Script) > 1 {
		fmt.Fprintln(stdout, l10n.T("Usage: dirsh [file_name]"))
		return nil
	}

	cfg := c.config()
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("determine working directory: %w", err)
	}

	source, opts, err := openSource(cfg, stdin, stdout, log)
	if err != nil {
		return err
	}
	defer source.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	d := dispatcher.New(dispatcher.NewState(cwd), osfilesystem.New(), stdout, log)
	s := session.New(source, d, stdout, log, opts)
	if err := s.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func (c *CLI) config() config.Config {
	cfg := config.Defaults()
	cfg.LogLevel = c.LogLevel
	cfg.Quiet = c.Quiet
	cfg.LogFile = c.LogFile
	cfg.HistoryLimit = c.HistoryLimit
	cfg.NoHistory = c.NoHistory
	if len(c.Script) == 1 {
		cfg.Script = c.Script[0]
	}
	return cfg
}

// newLogger returns the file logger when a log file is configured and the
// console logger otherwise.
func newLogger(cfg config.Config) (ports.Logger, func(), error) {
	if cfg.LogFile != "" {
		zl, err := zaplogger.New(cfg.LogFile, ports.ParseLogLevel(cfg.LogLevel))
		if err != nil {
			return nil, nil, err
		}
		return zl, func() { _ = zl.Sync() }, nil
	}
	if cfg.Level() == ports.LevelQuiet {
		return logger.NewNoop(), func() {}, nil
	}
	return logger.NewConsole(cfg.Level()), func() {}, nil
}

// openSource picks the line source. A script file runs in echo mode with
// the prompt on stdout. Interactive input uses the terminal when stdin is
// one, falling back to plain reading.
func openSource(cfg config.Config, stdin *os.File, stdout io.Writer, log ports.Logger) (ports.LineSource, session.Options, error) {
	if !cfg.Interactive() {
		f, err := os.Open(cfg.Script)
		if err != nil {
			return nil, session.Options{}, fmt.Errorf("%s: %w", l10n.F("Cannot open script %s", cfg.Script), err)
		}
		log.Info("Reading script %s", cfg.Script)
		return readersource.New(f, stdout), session.Options{Echo: true}, nil
	}

	log.Info("Interactive mode")
	fd := stdin.Fd()
	if !cfg.NoHistory && (isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)) {
		src, err := terminal.New(history.New(cfg.HistoryLimit), log)
		if err == nil {
			return src, session.Options{}, nil
		}
		log.Warn("Terminal unavailable, falling back to plain input: %v", err)
	}
	return readersource.New(stdin, stdout), session.Options{}, nil
}
