// Package ui wraps terminal feedback helpers shared by cmd/nonogram's
// subcommands, following the teacher pack's level-builder/pkg/ui split
// between command wiring and presentation.
package ui

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
)

// Spinner wraps github.com/briandowns/spinner, driven by solver.Observer
// PROGRESS events rather than a fixed animation tick.
type Spinner struct {
	s       *spinner.Spinner
	verbose bool
}

// NewSpinner creates a spinner with the given starting message. When
// verbose is true the spinner never starts, since its animation would
// interleave with --verbose's line-by-line log output.
func NewSpinner(msg string, verbose bool) *Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + msg
	_ = s.Color("cyan", "bold")
	return &Spinner{s: s, verbose: verbose}
}

// Start starts the animation unless verbose mode suppressed it.
func (sp *Spinner) Start() {
	if !sp.verbose {
		sp.s.Start()
	}
}

// Stop stops the animation.
func (sp *Spinner) Stop() {
	sp.s.Stop()
}

// SetProgress updates the suffix to show a percentage, called from a
// solver.Observer on EventProgress.
func (sp *Spinner) SetProgress(fraction float32) {
	sp.s.Suffix = fmt.Sprintf(" solving... %.0f%%", fraction*100)
}
