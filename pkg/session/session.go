// Package session runs the read-tokenize-dispatch loop of the shell.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/user/dirsh/pkg/ports"
	"github.com/user/dirsh/pkg/tokenizer"
)

// PromptSuffix follows the current directory in the prompt.
const PromptSuffix = "$: "

// Executor runs tokenized commands. *dispatcher.Dispatcher implements it.
type Executor interface {
	Dispatch(tokens []string) error
	Cwd() string
}

// Options configures a Session.
type Options struct {
	// Echo writes every consumed line to the output before it runs, as in
	// script mode. Blank lines echo as an empty line.
	Echo bool
}

// Session owns one run of the loop. Commands run strictly one at a time.
type Session struct {
	id     string
	source ports.LineSource
	exec   Executor
	out    io.Writer
	opts   Options
	logger ports.Logger
}

// New creates a Session reading from source and reporting to out.
func New(source ports.LineSource, exec Executor, out io.Writer, logger ports.Logger, opts Options) *Session {
	id := uuid.NewString()
	return &Session{
		id:     id,
		source: source,
		exec:   exec,
		out:    out,
		opts:   opts,
		logger: logger.WithComponent("session"),
	}
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string {
	return s.id
}

// Run loops until the input ends, returning nil at end of input. Command
// failures are printed and never stop the loop. Cancelling ctx closes the
// source to unblock a pending read and makes Run return ctx.Err().
func (s *Session) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		s.source.Close()
	})
	defer stop()

	s.logger.Info("Session %s started in %s", s.id, s.exec.Cwd())
	defer s.logger.Info("Session %s ended", s.id)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := s.source.ReadLine(s.Prompt())
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}

		s.execute(line)
	}
}

// Prompt returns the prompt for the current directory.
func (s *Session) Prompt() string {
	return s.exec.Cwd() + PromptSuffix
}

func (s *Session) execute(line string) {
	blank := strings.TrimSpace(line) == ""
	if s.opts.Echo {
		if blank {
			fmt.Fprintln(s.out)
		} else {
			fmt.Fprintln(s.out, line)
		}
	}
	if blank {
		return
	}

	if err := s.exec.Dispatch(tokenizer.Tokenize(line)); err != nil {
		fmt.Fprintln(s.out, err)
	}
}
