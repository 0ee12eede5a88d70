package cli

import (
	"context"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// SleepPacer waits out the pacing delay, returning early if the context ends.
// It is the pacer for quiet and non-interactive runs.
type SleepPacer struct{}

// Pause blocks for d or until ctx is done, whichever comes first.
func (SleepPacer) Pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// SpinnerPacer shows an animated spinner on out while the pacing delay runs.
type SpinnerPacer struct {
	Out io.Writer
}

// Pause blocks like SleepPacer.Pause, animating a spinner for the duration.
func (p SpinnerPacer) Pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(p.Out))
	sp.Suffix = " processing..."
	sp.Start()
	defer sp.Stop()

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
