package ports

// LineSource supplies raw command lines to the session loop.
type LineSource interface {
	// ReadLine shows prompt (if the source displays prompts) and returns the
	// next line without its terminator. It returns io.EOF when input ends.
	ReadLine(prompt string) (string, error)

	// Close releases the underlying input.
	Close() error
}
