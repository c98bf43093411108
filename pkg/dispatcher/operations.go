package dispatcher

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/user/dirsh/pkg/shellerr"
	"github.com/user/dirsh/pkg/tokenizer"
)

// maxLineSize bounds a single line read by head.
const maxLineSize = 16 * 1024 * 1024

func (d *Dispatcher) moveDirectory(name string, args []string) error {
	if len(args) != 1 {
		return shellerr.IllegalUsage(name)
	}
	raw := pathArg(args[0])
	target, err := d.resolve(raw)
	if err != nil {
		return err
	}

	info, err := d.fs.Stat(target)
	if err != nil {
		return shellerr.PathNotFound(raw)
	}
	if !info.IsDir() {
		return shellerr.NotADirectory(raw)
	}

	d.state.cwd = target
	d.logger.Info("Directory changed to %s", target)
	return nil
}

func (d *Dispatcher) makeDirectory(name string, args []string) error {
	if len(args) != 1 {
		return shellerr.IllegalUsage(name)
	}
	raw := pathArg(args[0])
	target, err := d.prepareCreation(raw)
	if err != nil {
		return err
	}
	if err := d.fs.Mkdir(target); err != nil {
		return creationError(raw, err)
	}
	return nil
}

func (d *Dispatcher) makeFile(name string, args []string) error {
	if len(args) != 1 {
		return shellerr.IllegalUsage(name)
	}
	raw := pathArg(args[0])
	target, err := d.prepareCreation(raw)
	if err != nil {
		return err
	}
	if err := d.fs.CreateFile(target); err != nil {
		return creationError(raw, err)
	}
	return nil
}

// prepareCreation runs the checks shared by mkdir and mkfile, in order:
// path syntax, missing ancestors, current-directory confinement and
// collisions. It returns the absolute target.
func (d *Dispatcher) prepareCreation(raw string) (string, error) {
	target, err := d.resolve(raw)
	if err != nil {
		return "", err
	}

	missing, err := d.highestMissingAncestor(target)
	if err != nil {
		return "", shellerr.UnableToCreate(raw, err)
	}
	if missing != "" {
		return "", shellerr.PathNotFound(missing)
	}

	if filepath.Dir(target) != d.state.cwd {
		return "", shellerr.NotInCurrentDirectory(raw)
	}

	exists, err := d.fs.Exists(target)
	if err != nil {
		return "", shellerr.UnableToCreate(raw, err)
	}
	if exists {
		return "", shellerr.AlreadyExists(raw)
	}
	return target, nil
}

// highestMissingAncestor walks up from the parent of target and returns
// the outermost ancestor that does not exist, or "" when the parent exists.
func (d *Dispatcher) highestMissingAncestor(target string) (string, error) {
	missing := ""
	for p := filepath.Dir(target); ; p = filepath.Dir(p) {
		ok, err := d.fs.Exists(p)
		if err != nil {
			return "", err
		}
		if ok {
			return missing, nil
		}
		missing = p
		if filepath.Dir(p) == p {
			return missing, nil
		}
	}
}

func creationError(raw string, err error) error {
	if errors.Is(err, fs.ErrExist) {
		return shellerr.AlreadyExists(raw)
	}
	return shellerr.UnableToCreate(raw, err)
}

func (d *Dispatcher) listDirectory(name string, args []string) error {
	if len(args) > 1 {
		return shellerr.IllegalUsage(name)
	}

	raw := d.state.cwd
	target := d.state.cwd
	if len(args) == 1 {
		raw = pathArg(args[0])
		var err error
		if target, err = d.resolve(raw); err != nil {
			return err
		}
	}

	info, err := d.fs.Stat(target)
	if err != nil {
		return shellerr.PathNotFound(raw)
	}
	if !info.IsDir() {
		return shellerr.NotADirectory(raw)
	}

	children, err := d.fs.ReadDir(target)
	if err != nil {
		return shellerr.UnableToRead(raw, err)
	}
	for _, child := range children {
		fmt.Fprintln(d.out, d.describe(target, child.Name()))
	}
	return nil
}

func (d *Dispatcher) remove(name string, args []string) error {
	raw, recursive, err := parseRemoveArgs(name, args)
	if err != nil {
		return err
	}
	target, err := d.resolve(raw)
	if err != nil {
		return err
	}

	info, err := d.fs.Lstat(target)
	if err != nil {
		return shellerr.PathNotFound(raw)
	}
	if !info.IsDir() {
		if err := d.fs.Remove(target); err != nil {
			return shellerr.UnableToDelete(raw, err)
		}
		return nil
	}
	if !recursive {
		return shellerr.MissingArgument(name, recursiveFlag)
	}
	return d.removeTree(target)
}

// removeTree deletes dir and everything below it, children before their
// parent. Symbolic links are removed, never followed. Failures are
// collected per entry and the walk continues past them.
func (d *Dispatcher) removeTree(dir string) error {
	var failures []error
	fail := func(path string, err error) {
		d.logger.Debug("Cannot delete %s: %v", path, err)
		failures = append(failures, shellerr.UnableToDelete(path, err))
	}

	var walk func(string)
	walk = func(dir string) {
		children, err := d.fs.ReadDir(dir)
		if err != nil {
			fail(dir, err)
			return
		}
		for _, child := range children {
			path := filepath.Join(dir, child.Name())
			if child.IsDir() {
				walk(path)
				continue
			}
			if err := d.fs.Remove(path); err != nil {
				fail(path, err)
			}
		}
		if err := d.fs.Remove(dir); err != nil {
			fail(dir, err)
		}
	}
	walk(dir)

	return errors.Join(failures...)
}

func (d *Dispatcher) showFile(name string, args []string) error {
	raw, limit, err := parseHeadArgs(name, args)
	if err != nil {
		return err
	}
	target, err := d.resolve(raw)
	if err != nil {
		return err
	}

	info, err := d.fs.Stat(target)
	if err != nil {
		return shellerr.PathNotFound(raw)
	}
	if !info.Mode().IsRegular() {
		return shellerr.NotAFile(raw)
	}
	if limit == 0 {
		return nil
	}

	r, err := d.fs.Open(target)
	if err != nil {
		return shellerr.UnableToRead(raw, err)
	}
	defer r.Close()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	scanner.Split(scanLines)
	for count := 0; (limit == AllLines || count < limit) && scanner.Scan(); count++ {
		fmt.Fprintln(d.out, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return shellerr.UnableToRead(raw, err)
	}
	return nil
}

// scanLines splits on "\n", "\r\n" and a lone "\r".
func scanLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if !atEOF {
			return 0, nil, nil
		}
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

func (d *Dispatcher) writeFile(name string, args []string) error {
	raw, payloads, err := parseWriteArgs(name, args)
	if err != nil {
		return err
	}
	target, err := d.resolve(raw)
	if err != nil {
		return err
	}

	info, err := d.fs.Stat(target)
	if err != nil {
		return shellerr.PathNotFound(raw)
	}
	if !info.Mode().IsRegular() {
		return shellerr.NotAFile(raw)
	}

	for _, p := range payloads {
		if err := d.fs.AppendFile(target, []byte(tokenizer.Unquote(p))); err != nil {
			return shellerr.UnableToWrite(raw, err)
		}
	}
	return nil
}
