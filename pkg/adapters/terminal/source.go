// Package terminal provides the interactive line source. It drives a
// readline instance, feeds up/down keys to a history.Navigator and
// completes command names on tab.
package terminal

import (
	"errors"
	"strings"
	"sync"

	"github.com/chzyer/readline"

	"github.com/user/dirsh/pkg/commands"
	"github.com/user/dirsh/pkg/history"
	"github.com/user/dirsh/pkg/ports"
)

// Source is an interactive ports.LineSource.
type Source struct {
	rl        *readline.Instance
	nav       *history.Navigator
	logger    ports.Logger
	closeOnce sync.Once
	closeErr  error
}

// New opens the terminal. Line history is owned by nav; readline's own
// history is disabled.
func New(nav *history.Navigator, logger ports.Logger) (*Source, error) {
	s := &Source{
		nav:    nav,
		logger: logger.WithComponent("terminal"),
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:                 "$: ",
		HistoryLimit:           -1,
		DisableAutoSaveHistory: true,
		AutoComplete:           completer(),
		InterruptPrompt:        "^C",
		Listener:               &recallListener{nav: nav, logger: s.logger},
	})
	if err != nil {
		return nil, err
	}
	s.rl = rl
	return s, nil
}

// ReadLine shows prompt and reads one line. Ctrl+C discards the pending
// line and yields an empty one; Ctrl+D on an empty line yields io.EOF.
func (s *Source) ReadLine(prompt string) (string, error) {
	s.rl.SetPrompt(prompt)
	s.nav.End()

	line, err := s.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		s.nav.Handle(history.Submit)
		return "", nil
	}
	if err != nil {
		return "", err
	}

	s.nav.Add(strings.TrimSpace(line))
	s.nav.Begin()
	return line, nil
}

// Close restores the terminal.
func (s *Source) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.rl.Close()
	})
	return s.closeErr
}

func completer() *readline.PrefixCompleter {
	var items []readline.PrefixCompleterInterface
	for _, name := range commands.Names() {
		items = append(items, readline.PcItem(name))
	}
	return readline.NewPrefixCompleter(items...)
}

// recallListener replaces the edit buffer with the navigator's staged
// line whenever an up or down key arrives.
type recallListener struct {
	nav    *history.Navigator
	logger ports.Logger
}

func (l *recallListener) OnChange(line []rune, pos int, key rune) ([]rune, int, bool) {
	ev, ok := eventFor(key)
	if !ok {
		return nil, 0, false
	}
	if l.nav.Busy() {
		l.logger.Debug("History recall ignored while a command is running")
		return nil, 0, false
	}

	staged, ok := l.nav.Handle(ev)
	if !ok {
		return []rune{}, 0, true
	}
	r := []rune(staged)
	return r, len(r), true
}

func eventFor(key rune) (history.Event, bool) {
	switch key {
	case readline.CharPrev:
		return history.RecallPrevious, true
	case readline.CharNext:
		return history.RecallNext, true
	default:
		return 0, false
	}
}

var _ ports.LineSource = (*Source)(nil)
