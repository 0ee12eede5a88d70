// Package app wires the application together: configuration, the audit log,
// the outcome monitor, the scripted trials, and the batch runner.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/agbru/mathmon/internal/auditlog"
	"github.com/agbru/mathmon/internal/batch"
	"github.com/agbru/mathmon/internal/cli"
	"github.com/agbru/mathmon/internal/config"
	apperrors "github.com/agbru/mathmon/internal/errors"
	"github.com/agbru/mathmon/internal/format"
	"github.com/agbru/mathmon/internal/logging"
	"github.com/agbru/mathmon/internal/metrics"
	"github.com/agbru/mathmon/internal/monitor"
	"github.com/agbru/mathmon/internal/sysmon"
	"github.com/agbru/mathmon/internal/tui"
)

// Application represents the mathmon application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Diag      logging.Logger
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "mathmon"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(errWriter, "Error: %v\n", err)
		}
		return nil, err
	}

	return &Application{
		Config:    cfg,
		ErrWriter: errWriter,
		Diag:      logging.NewLogger(errWriter, "mathmon"),
	}, nil
}

// Run executes the demonstration based on the configured mode and returns the
// process exit code. The audit log is opened once here and released on every
// exit path.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	// The audit log writes DEBUG entries unconditionally; never let the
	// global zerolog threshold swallow them.
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	log, err := auditlog.New(a.Config.LogFile)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "critical system error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	defer func() {
		if cerr := log.Close(); cerr != nil {
			a.Diag.Error("closing audit log", cerr, logging.String("path", a.Config.LogFile))
		}
	}()

	mon := monitor.New(log)
	start := time.Now()

	if a.Config.TUI {
		return a.runTUI(ctx, out, log, mon)
	}

	if !a.Config.Quiet {
		cli.DisplayBanner(out, "MONITORING AND LOGGING SYSTEM")
	}

	a.runScriptedTrials(out, log, mon)

	if !a.Config.Quiet {
		cli.DisplaySectionHeader(out, "REAL-TIME BATCH PROCESSING")
	}
	runner := &batch.Runner{
		Log:     log,
		Monitor: mon,
		Out:     out,
		ErrOut:  a.ErrWriter,
		Delay:   a.Config.Delay,
		Pacer:   a.pacer(out),
	}
	batchErr := runner.Run(ctx, batch.DemoPairs)

	mon.ShowMetrics(out)
	a.logResourceUsage(log)

	if batchErr != nil {
		if apperrors.IsContextError(batchErr) {
			fmt.Fprintf(a.ErrWriter, "run interrupted: %v\n", batchErr)
			return apperrors.ExitErrorCanceled
		}
		a.Diag.Error("batch failed", batchErr)
		return apperrors.ExitErrorGeneric
	}

	if !a.Config.Quiet {
		cli.DisplayLogHint(out, a.Config.LogFile)
		fmt.Fprintf(out, "\nCompleted in %s\n", format.FormatExecutionDuration(time.Since(start)))
		cli.DisplayBanner(out, "EXECUTION COMPLETE")
	}
	return apperrors.ExitSuccess
}

// runTUI drives the batch under the live view. Scripted trials are a console
// feature; the TUI shows the batch only.
func (a *Application) runTUI(ctx context.Context, out io.Writer, log *auditlog.Logger, mon *monitor.Monitor) int {
	runner := &batch.Runner{
		Log:     log,
		Monitor: mon,
		Out:     io.Discard,
		ErrOut:  io.Discard,
		Delay:   a.Config.Delay,
		Pacer:   cli.SleepPacer{},
	}
	code := tui.Run(ctx, runner, batch.DemoPairs)

	mon.ShowMetrics(out)
	a.logResourceUsage(log)
	return code
}

// logResourceUsage appends one system and one process resource snapshot to
// the audit log next to the final metrics entry.
func (a *Application) logResourceUsage(log *auditlog.Logger) {
	log.Log(auditlog.Info, sysmon.Sample().String())
	log.Log(auditlog.Info, metrics.NewMemoryCollector().Snapshot().String())
}

// pacer selects the inter-trial pacer: animated in interactive runs, a plain
// wait otherwise.
func (a *Application) pacer(out io.Writer) batch.Pacer {
	if a.Config.Quiet {
		return cli.SleepPacer{}
	}
	return cli.SpinnerPacer{Out: out}
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
