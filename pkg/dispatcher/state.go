package dispatcher

// State is the mutable session state: the shell's current directory.
// It is independent of the process working directory and only changes
// through a successful cd.
type State struct {
	cwd string
}

// NewState creates a State positioned at cwd, which must be an absolute,
// existing directory.
func NewState(cwd string) *State {
	return &State{cwd: cwd}
}

// Cwd returns the current directory.
func (s *State) Cwd() string {
	return s.cwd
}
