// Package dispatcher validates tokenized command lines and runs the
// corresponding filesystem operations against the session state.
package dispatcher

import (
	"io"
	"strconv"

	"github.com/user/dirsh/pkg/commands"
	"github.com/user/dirsh/pkg/ports"
	"github.com/user/dirsh/pkg/resolver"
	"github.com/user/dirsh/pkg/shellerr"
	"github.com/user/dirsh/pkg/tokenizer"
)

// AllLines is the line limit meaning "the whole file".
const AllLines = -1

const recursiveFlag = "-r"
const linesFlag = "-n"

// handler runs one command. name is the command as typed, args follow it.
type handler func(d *Dispatcher, name string, args []string) error

var handlers = map[commands.Variant]handler{
	commands.MoveDirectory: (*Dispatcher).moveDirectory,
	commands.MakeDirectory: (*Dispatcher).makeDirectory,
	commands.ListDirectory: (*Dispatcher).listDirectory,
	commands.Remove:        (*Dispatcher).remove,
	commands.ShowFile:      (*Dispatcher).showFile,
	commands.MakeFile:      (*Dispatcher).makeFile,
	commands.WriteFile:     (*Dispatcher).writeFile,
}

// Dispatcher executes commands. It is not safe for concurrent use; the
// session loop is its only caller.
type Dispatcher struct {
	state  *State
	fs     ports.FileSystem
	out    io.Writer
	logger ports.Logger
}

// New creates a Dispatcher that writes command output to out.
func New(state *State, fs ports.FileSystem, out io.Writer, logger ports.Logger) *Dispatcher {
	return &Dispatcher{
		state:  state,
		fs:     fs,
		out:    out,
		logger: logger.WithComponent("dispatcher"),
	}
}

// Cwd returns the session's current directory.
func (d *Dispatcher) Cwd() string {
	return d.state.Cwd()
}

// Dispatch runs the command described by tokens. Every returned error is a
// *shellerr.Error or a join of them, and leaves the session usable.
func (d *Dispatcher) Dispatch(tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}
	name, args := tokens[0], tokens[1:]

	variant := commands.Lookup(name)
	h, ok := handlers[variant]
	if !ok {
		return shellerr.CommandNotFound(name)
	}

	d.logger.Debug("Executing %s with %d argument(s)", variant, len(args))
	err := h(d, name, args)
	if err != nil {
		d.logger.Debug("Command %s failed: %s", name, err)
	}
	return err
}

// resolve maps a path argument onto an absolute path.
func (d *Dispatcher) resolve(raw string) (string, error) {
	return resolver.Resolve(raw, d.state.cwd)
}

// pathArg strips the delimiters of a quoted path argument so names with
// spaces can be addressed. Escapes are not interpreted in paths.
func pathArg(token string) string {
	if tokenizer.IsQuoted(token) {
		return token[1 : len(token)-1]
	}
	return token
}

// parseRemoveArgs accepts "<path>", "-r <path>" and "<path> -r".
func parseRemoveArgs(name string, args []string) (path string, recursive bool, err error) {
	if len(args) == 0 || len(args) > 2 {
		return "", false, shellerr.IllegalUsage(name)
	}
	havePath := false
	for _, a := range args {
		switch {
		case a == recursiveFlag:
			if recursive {
				return "", false, shellerr.IllegalUsage(name)
			}
			recursive = true
		case !havePath:
			path, havePath = pathArg(a), true
		default:
			return "", false, shellerr.IllegalUsage(name)
		}
	}
	if !havePath {
		return "", false, shellerr.IllegalUsage(name)
	}
	return path, recursive, nil
}

// parseHeadArgs accepts "<path>" with an optional "-n N" before or after it.
func parseHeadArgs(name string, args []string) (path string, limit int, err error) {
	limit = AllLines
	havePath, haveLimit := false, false
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == linesFlag:
			if haveLimit || i+1 >= len(args) {
				return "", 0, shellerr.IllegalUsage(name)
			}
			n, convErr := strconv.Atoi(args[i+1])
			if convErr != nil || n < 0 {
				return "", 0, shellerr.IllegalUsage(name)
			}
			limit, haveLimit = n, true
			i++
		case !havePath:
			path, havePath = pathArg(a), true
		default:
			return "", 0, shellerr.IllegalUsage(name)
		}
	}
	if !havePath {
		return "", 0, shellerr.IllegalUsage(name)
	}
	return path, limit, nil
}

// parseWriteArgs splits echo arguments into the target path (the single
// unquoted token) and the quoted payloads in order.
func parseWriteArgs(name string, args []string) (path string, payloads []string, err error) {
	havePath := false
	for _, a := range args {
		switch {
		case tokenizer.IsQuoted(a):
			payloads = append(payloads, a)
		case !havePath:
			path, havePath = a, true
		default:
			return "", nil, shellerr.IllegalUsage(name)
		}
	}
	if !havePath || len(payloads) == 0 {
		return "", nil, shellerr.IllegalUsage(name)
	}
	return path, payloads, nil
}
