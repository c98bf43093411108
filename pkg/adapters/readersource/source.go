// Package readersource provides a line source over a plain io.Reader,
// used for script files and non-terminal standard input.
package readersource

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/user/dirsh/pkg/ports"
)

// Source reads newline-terminated lines. When a prompt writer is set the
// prompt is written there before every read.
type Source struct {
	reader    *bufio.Reader
	closer    io.Closer
	promptOut io.Writer
	prompted  bool
	closeOnce sync.Once
	closeErr  error
}

// New creates a Source reading from r. promptOut may be nil to suppress
// prompts. If r is an io.Closer, Close closes it.
func New(r io.Reader, promptOut io.Writer) *Source {
	s := &Source{
		reader:    bufio.NewReader(r),
		promptOut: promptOut,
	}
	if c, ok := r.(io.Closer); ok {
		s.closer = c
	}
	return s
}

// ReadLine shows prompt and returns the next line without its line
// terminator. It returns io.EOF once the input is exhausted; a final line
// lacking a terminator is still returned first.
func (s *Source) ReadLine(prompt string) (string, error) {
	if s.promptOut != nil {
		fmt.Fprint(s.promptOut, prompt)
		s.prompted = true
	}

	line, err := s.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		if err == io.EOF && s.prompted {
			fmt.Fprintln(s.promptOut)
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Close releases the underlying reader. It is safe to call more than once.
func (s *Source) Close() error {
	s.closeOnce.Do(func() {
		if s.closer != nil {
			s.closeErr = s.closer.Close()
		}
	})
	return s.closeErr
}

var _ ports.LineSource = (*Source)(nil)
