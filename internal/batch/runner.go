// Package batch sequentially processes an ordered sequence of operand pairs.
// Each pair is one independent division trial: the attempt is announced in
// the audit log, the outcome is routed to the console, the log, and the
// tally, and a fixed pacing delay separates consecutive trials. A failed
// trial never aborts the batch.
package batch

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/mathmon/internal/auditlog"
	"github.com/agbru/mathmon/internal/cli"
	apperrors "github.com/agbru/mathmon/internal/errors"
	"github.com/agbru/mathmon/internal/format"
	"github.com/agbru/mathmon/internal/mathops"
	"github.com/agbru/mathmon/internal/monitor"
)

// DefaultDelay is the pacing delay between consecutive trials. It simulates
// real-time processing; it is not backoff or rate limiting.
const DefaultDelay = 500 * time.Millisecond

// tracerName identifies this package to the global tracer provider.
const tracerName = "github.com/agbru/mathmon/internal/batch"

// Pair is one immutable division input.
type Pair struct {
	A float64
	B float64
}

// DemoPairs is the fixed demonstration sequence: four valid divisions, two
// zero divisors, and two negative-operand pairs.
var DemoPairs = []Pair{
	{100, 5},
	{50, 0},
	{81, 9},
	{-10, 2},
	{200, 10},
	{7, 0},
	{144, 12},
	{-50, -5},
}

// Pacer blocks between trials. Implementations must respect context
// cancellation.
type Pacer interface {
	Pause(ctx context.Context, d time.Duration)
}

// Outcome reports one finished trial to an optional observer.
type Outcome struct {
	Index  int
	Pair   Pair
	Result float64
	Err    error
}

// Runner drives one batch. All fields except OnOutcome are required.
type Runner struct {
	Log     *auditlog.Logger
	Monitor *monitor.Monitor
	Out     io.Writer
	ErrOut  io.Writer
	Delay   time.Duration
	Pacer   Pacer

	// OnOutcome, when set, is called after each trial's outcome has been
	// recorded. The TUI bridge uses it to stream trials into the view.
	OnOutcome func(Outcome)
}

// Run processes pairs strictly in order. Every trial's outcome is classified
// and recorded; only context cancellation stops the batch early, in which
// case the context error is returned.
func (r *Runner) Run(ctx context.Context, pairs []Pair) error {
	r.Log.Log(auditlog.Info, fmt.Sprintf("starting batch of %d operations", len(pairs)))
	tracer := otel.Tracer(tracerName)

	for i, pair := range pairs {
		if err := ctx.Err(); err != nil {
			r.Log.Log(auditlog.Warning, "batch interrupted: "+err.Error())
			return err
		}
		r.runTrial(ctx, tracer, i, pair)
		r.Pacer.Pause(ctx, r.Delay)
	}

	r.Log.Log(auditlog.Info, "batch processing completed")
	return ctx.Err()
}

// runTrial executes one division and routes its outcome. Classified
// arithmetic errors and unexpected errors are both recorded as failures, but
// unexpected ones are logged distinctly at CRITICAL.
func (r *Runner) runTrial(ctx context.Context, tracer trace.Tracer, index int, pair Pair) {
	cli.DisplayTrialHeader(r.Out, index, pair.A, pair.B)
	r.Log.Log(auditlog.Debug, "processing operation: "+cli.FormatTrial(pair.A, pair.B))

	_, span := tracer.Start(ctx, "divide", trace.WithAttributes(
		attribute.Int("trial.index", index),
		attribute.Float64("operand.a", pair.A),
		attribute.Float64("operand.b", pair.B),
	))
	result, err := mathops.Divide(pair.A, pair.B)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()

	switch {
	case err == nil:
		cli.DisplayResult(r.Out, result)
		r.Log.Log(auditlog.Info, fmt.Sprintf("operation succeeded: %s = %s",
			cli.FormatTrial(pair.A, pair.B), format.FormatOperand(result)))
		r.Monitor.RecordSuccess()
	case apperrors.IsMathError(err):
		cli.DisplayFailure(r.ErrOut, err)
		r.Log.LogError(err)
		r.Monitor.RecordFailure()
	default:
		cli.DisplayUnexpectedFailure(r.ErrOut, err)
		r.Log.Log(auditlog.Critical, "unexpected error: "+err.Error())
		r.Monitor.RecordFailure()
	}

	if r.OnOutcome != nil {
		r.OnOutcome(Outcome{Index: index, Pair: pair, Result: result, Err: err})
	}
}
