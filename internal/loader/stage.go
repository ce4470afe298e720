// Package loader drives the staged loading screen: an ordered list of timed
// stages, a percent counter animated on display frames, and a completion
// callback once the last stage has settled.
//
// Everything in this package runs on a single Scheduler goroutine. Sequencer
// and Interpolator hold no locks and must only be touched from scheduler
// callbacks (or before the scheduler starts).
package loader

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNoStages        = errors.New("loader: at least one stage is required")
	ErrLabelMismatch   = errors.New("loader: stage and label counts differ")
	ErrInvalidDuration = errors.New("loader: stage duration must be positive")
	ErrAlreadyStarted  = errors.New("loader: sequence already started")
)

// DefaultSettleDelay is the pause after the final stage before completion.
const DefaultSettleDelay = 2000 * time.Millisecond

// Stage is one named phase of the loading sequence.
type Stage struct {
	ID       string
	Duration time.Duration
}

// DefaultStages is the four stage schedule the portfolio ships with.
func DefaultStages() ([]Stage, []string) {
	stages := []Stage{
		{ID: "stage-1", Duration: 3000 * time.Millisecond},
		{ID: "stage-2", Duration: 4000 * time.Millisecond},
		{ID: "stage-3", Duration: 3500 * time.Millisecond},
		{ID: "stage-4", Duration: 3000 * time.Millisecond},
	}
	labels := []string{
		"INITIALIZING...",
		"SCANNING SYSTEMS...",
		"RENDERING 3D MATRIX...",
		"FINALIZING INTERFACE...",
	}
	return stages, labels
}

// Validate checks the stage/label pairing.
func Validate(stages []Stage, labels []string) error {
	if len(stages) == 0 {
		return ErrNoStages
	}
	if len(stages) != len(labels) {
		return fmt.Errorf("%w: %d stages, %d labels", ErrLabelMismatch, len(stages), len(labels))
	}
	for i, st := range stages {
		if st.Duration <= 0 {
			return fmt.Errorf("%w: stage %d (%s) has %s", ErrInvalidDuration, i, st.ID, st.Duration)
		}
	}
	return nil
}

// TargetPercent is the percent committed when stage index becomes active:
// floor((index+1)/n*100).
func TargetPercent(index, n int) int {
	if n <= 0 {
		return 0
	}
	return (index + 1) * 100 / n
}

// TotalDuration is the sum of all stage durations plus the settle delay,
// i.e. the time from Run to completion.
func TotalDuration(stages []Stage, settle time.Duration) time.Duration {
	total := settle
	for _, st := range stages {
		total += st.Duration
	}
	return total
}
