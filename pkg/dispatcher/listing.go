package dispatcher

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/user/dirsh/pkg/ports"
)

// Entry is one row of an ls listing.
type Entry struct {
	Name    string
	Dir     bool
	Read    bool
	Write   bool
	Exec    bool
	Size    int64
	ModTime time.Time
}

// String renders the entry as "drwx <size> <timestamp> <name>", with the
// size right-aligned in 15 columns and the timestamp in UTC.
func (e Entry) String() string {
	return fmt.Sprintf("%c%c%c%c %15d %s %s",
		flag(e.Dir, 'd'),
		flag(e.Read, 'r'),
		flag(e.Write, 'w'),
		flag(e.Exec, 'x'),
		e.Size,
		e.ModTime.UTC().Format(time.RFC3339Nano),
		e.Name,
	)
}

func flag(set bool, c rune) rune {
	if set {
		return c
	}
	return '-'
}

// describe builds the listing entry for the child name of dir. Metadata
// that cannot be read is reported as size 0 and the epoch.
func (d *Dispatcher) describe(dir, name string) Entry {
	path := filepath.Join(dir, name)
	e := Entry{
		Name:    name,
		ModTime: time.Unix(0, 0),
		Read:    d.fs.Access(path, ports.AccessRead),
		Write:   d.fs.Access(path, ports.AccessWrite),
		Exec:    d.fs.Access(path, ports.AccessExecute),
	}
	info, err := d.fs.Stat(path)
	if err != nil {
		d.logger.Debug("Cannot stat %s: %v", path, err)
		return e
	}
	e.Dir = info.IsDir()
	e.Size = info.Size()
	e.ModTime = info.ModTime()
	return e
}
