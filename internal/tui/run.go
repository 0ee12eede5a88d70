package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/mathmon/internal/batch"
	apperrors "github.com/agbru/mathmon/internal/errors"
)

// programRef is a shared reference to the tea.Program.
// Because bubbletea copies the model on every Update, we need a pointer
// that survives copies so the batch goroutine can send messages.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the tea.Program reference (thread-safe).
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send sends a message to the bubbletea program (thread-safe).
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// Run drives the batch under the live view and blocks until both finish.
// Quitting the view early cancels the batch; the returned exit code reflects
// whether the batch ran to completion.
func Run(ctx context.Context, runner *batch.Runner, pairs []batch.Pair) int {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ref := &programRef{}
	runner.OnOutcome = func(o batch.Outcome) { ref.Send(OutcomeMsg(o)) }

	p := tea.NewProgram(NewModel(len(pairs)), tea.WithContext(ctx))
	ref.SetProgram(p)

	g := new(errgroup.Group)
	g.Go(func() error {
		// Once the view exits (quit key or final frame), stop the batch.
		defer cancel()
		_, err := p.Run()
		return err
	})
	g.Go(func() error {
		err := runner.Run(ctx, pairs)
		ref.Send(BatchDoneMsg{Err: err})
		return err
	})

	if err := g.Wait(); err != nil {
		if apperrors.IsContextError(err) {
			return apperrors.ExitErrorCanceled
		}
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}
