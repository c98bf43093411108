package session

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/user/dirsh/pkg/adapters/readersource"
	"github.com/user/dirsh/pkg/dispatcher"
	"github.com/user/dirsh/pkg/mocks"
	"github.com/user/dirsh/pkg/ports"
)

type scenario struct {
	Name        string            `yaml:"name"`
	Echo        bool              `yaml:"echo"`
	Files       map[string]string `yaml:"files"`
	Input       []string          `yaml:"input"`
	Output      []string          `yaml:"output"`
	Cwd         string            `yaml:"cwd"`
	ExpectFiles map[string]string `yaml:"expect_files"`
	Absent      []string          `yaml:"absent"`
}

func loadScenarios(t *testing.T) []scenario {
	t.Helper()
	data, err := os.ReadFile("testdata/scenarios.yaml")
	require.NoError(t, err)

	var scenarios []scenario
	require.NoError(t, yaml.Unmarshal(data, &scenarios))
	require.NotEmpty(t, scenarios)
	return scenarios
}

func TestSession_Scenarios(t *testing.T) {
	for _, sc := range loadScenarios(t) {
		t.Run(sc.Name, func(t *testing.T) {
			fs := mocks.NewFileSystem()
			fs.AddDir("/work")
			for path, content := range sc.Files {
				fs.AddFile(path, content)
			}

			var out bytes.Buffer
			var promptOut io.Writer
			if sc.Echo {
				promptOut = &out
			}
			src := readersource.New(strings.NewReader(strings.Join(sc.Input, "\n")+"\n"), promptOut)
			d := dispatcher.New(dispatcher.NewState("/work"), fs, &out, mocks.NewLogger())
			s := New(src, d, &out, mocks.NewLogger(), Options{Echo: sc.Echo})

			require.NoError(t, s.Run(context.Background()))

			assert.Equal(t, strings.Join(sc.Output, "\n")+"\n", out.String())
			if sc.Cwd != "" {
				assert.Equal(t, sc.Cwd, d.Cwd())
			}
			for path, want := range sc.ExpectFiles {
				assert.Equal(t, want, fs.Content(path), path)
			}
			for _, path := range sc.Absent {
				exists, err := fs.Exists(path)
				require.NoError(t, err)
				assert.False(t, exists, path)
			}
		})
	}
}

type fakeExecutor struct {
	cwd   string
	calls [][]string
	err   error
}

func (f *fakeExecutor) Dispatch(tokens []string) error {
	f.calls = append(f.calls, tokens)
	return f.err
}

func (f *fakeExecutor) Cwd() string {
	return f.cwd
}

func TestSession_TokenizesLines(t *testing.T) {
	exec := &fakeExecutor{cwd: "/"}
	src := readersource.New(strings.NewReader("echo \"a b\" f\n\n  \nls\n"), nil)
	var out bytes.Buffer

	require.NoError(t, New(src, exec, &out, mocks.NewLogger(), Options{}).Run(context.Background()))

	assert.Equal(t, [][]string{
		{"echo", "f", `"a b"`},
		{"ls"},
	}, exec.calls)
	assert.Empty(t, out.String())
}

func TestSession_EchoWhitespaceLineAsNewline(t *testing.T) {
	var out bytes.Buffer
	src := readersource.New(strings.NewReader("   \t\n"), &out)

	require.NoError(t, New(src, &fakeExecutor{cwd: "/w"}, &out, mocks.NewLogger(), Options{Echo: true}).Run(context.Background()))

	assert.Equal(t, "/w$: \n/w$: \n", out.String())
}

func TestSession_Prompt(t *testing.T) {
	s := New(readersource.New(strings.NewReader(""), nil), &fakeExecutor{cwd: "/home/user"}, io.Discard, mocks.NewLogger(), Options{})

	assert.Equal(t, "/home/user$: ", s.Prompt())
}

func TestSession_UniqueIDs(t *testing.T) {
	a := New(readersource.New(strings.NewReader(""), nil), &fakeExecutor{}, io.Discard, mocks.NewLogger(), Options{})
	b := New(readersource.New(strings.NewReader(""), nil), &fakeExecutor{}, io.Discard, mocks.NewLogger(), Options{})

	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestSession_Logs(t *testing.T) {
	log := mocks.NewLogger()
	s := New(readersource.New(strings.NewReader(""), nil), &fakeExecutor{cwd: "/w"}, io.Discard, log, Options{})

	require.NoError(t, s.Run(context.Background()))

	assert.Equal(t, []string{
		"Session " + s.ID() + " started in /w",
		"Session " + s.ID() + " ended",
	}, log.Messages(ports.LevelInfo))
}

type failingSource struct{}

func (failingSource) ReadLine(string) (string, error) { return "", errors.New("boom") }
func (failingSource) Close() error                    { return nil }

func TestSession_ReadError(t *testing.T) {
	s := New(failingSource{}, &fakeExecutor{}, io.Discard, mocks.NewLogger(), Options{})

	err := s.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

type blockingSource struct {
	closed chan struct{}
	once   sync.Once
}

func (b *blockingSource) ReadLine(string) (string, error) {
	<-b.closed
	return "", io.EOF
}

func (b *blockingSource) Close() error {
	b.once.Do(func() { close(b.closed) })
	return nil
}

func TestSession_CancelUnblocksRead(t *testing.T) {
	src := &blockingSource{closed: make(chan struct{})}
	s := New(src, &fakeExecutor{}, io.Discard, mocks.NewLogger(), Options{})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
