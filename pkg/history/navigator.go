// Package history keeps previously submitted command lines and lets an
// interactive user step through them before submitting the next one.
package history

import "sync"

// Event is a line-edit event delivered by an interactive line source.
type Event int

const (
	// RecallPrevious steps back to an older line.
	RecallPrevious Event = iota
	// RecallNext steps forward to a newer line, past the newest one to nothing.
	RecallNext
	// Submit ends recall; the cursor returns past the newest line.
	Submit
)

func (e Event) String() string {
	switch e {
	case RecallPrevious:
		return "RecallPrevious"
	case RecallNext:
		return "RecallNext"
	case Submit:
		return "Submit"
	default:
		return "Unknown"
	}
}

// Navigator is the history cursor. It only ever touches its own staged
// text, never session state. Events arriving while a command is running
// (between Begin and End) are ignored.
type Navigator struct {
	mu      sync.Mutex
	entries []string
	limit   int
	index   int
	staged  string
	has     bool
	busy    bool
}

// New creates a Navigator keeping at most limit lines; limit <= 0 keeps all.
func New(limit int) *Navigator {
	return &Navigator{limit: limit}
}

// Handle applies ev and returns the staged line. ok is false when nothing
// is staged, which is also the case past the newest line.
func (n *Navigator) Handle(ev Event) (line string, ok bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.busy {
		return n.staged, n.has
	}

	switch ev {
	case RecallPrevious:
		if n.index > 0 {
			n.index--
		}
	case RecallNext:
		if n.index < len(n.entries) {
			n.index++
		}
	case Submit:
		n.index = len(n.entries)
	}

	if n.index < len(n.entries) {
		n.staged, n.has = n.entries[n.index], true
	} else {
		n.staged, n.has = "", false
	}
	return n.staged, n.has
}

// Add records a submitted line and moves the cursor past it. Blank lines
// are not recorded.
func (n *Navigator) Add(line string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if line != "" {
		n.entries = append(n.entries, line)
		if n.limit > 0 && len(n.entries) > n.limit {
			n.entries = append([]string(nil), n.entries[len(n.entries)-n.limit:]...)
		}
	}
	n.index = len(n.entries)
	n.staged, n.has = "", false
}

// Staged returns the currently staged line.
func (n *Navigator) Staged() (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.staged, n.has
}

// Entries returns the recorded lines, oldest first.
func (n *Navigator) Entries() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.entries...)
}

// Begin marks a command as running.
func (n *Navigator) Begin() {
	n.mu.Lock()
	n.busy = true
	n.mu.Unlock()
}

// End marks the running command as finished.
func (n *Navigator) End() {
	n.mu.Lock()
	n.busy = false
	n.mu.Unlock()
}

// Busy reports whether a command is running.
func (n *Navigator) Busy() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.busy
}
