package cli

import (
	"time"

	"github.com/briandowns/spinner"
)

// WithSpinner runs fn while showing a progress spinner, unless quiet is set.
// The spinner writes to stderr so piped stdout stays clean.
func WithSpinner(message string, quiet bool, fn func() error) error {
	if quiet {
		return fn()
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message
	s.Start()
	defer s.Stop()

	return fn()
}
