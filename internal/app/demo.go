package app

import (
	"fmt"
	"io"

	"github.com/agbru/mathmon/internal/auditlog"
	"github.com/agbru/mathmon/internal/cli"
	apperrors "github.com/agbru/mathmon/internal/errors"
	"github.com/agbru/mathmon/internal/format"
	"github.com/agbru/mathmon/internal/mathops"
	"github.com/agbru/mathmon/internal/monitor"
)

// scriptedTrial is one fixed demonstration division run before the batch.
type scriptedTrial struct {
	title string
	a, b  float64
}

// scriptedTrials exercises each failure class once, then a valid division.
var scriptedTrials = []scriptedTrial{
	{"TRIAL 1: division by zero", 10, 0},
	{"TRIAL 2: negative operands", -5, 2},
	{"TRIAL 3: valid division", 100, 5},
}

// runScriptedTrials executes the fixed demonstration trials, routing each
// outcome to the console, the audit log, and the tally exactly like a batch
// item (but without pacing).
func (a *Application) runScriptedTrials(out io.Writer, log *auditlog.Logger, mon *monitor.Monitor) {
	for _, trial := range scriptedTrials {
		if !a.Config.Quiet {
			cli.DisplaySectionHeader(out, trial.title)
		}
		log.Log(auditlog.Info, "attempting division: "+cli.FormatTrial(trial.a, trial.b))

		result, err := mathops.Divide(trial.a, trial.b)
		switch {
		case err == nil:
			cli.DisplayResult(out, result)
			log.Log(auditlog.Info, fmt.Sprintf("operation succeeded: %s = %s",
				cli.FormatTrial(trial.a, trial.b), format.FormatOperand(result)))
			mon.RecordSuccess()
		case apperrors.IsMathError(err):
			cli.DisplayFailure(a.ErrWriter, err)
			log.LogError(err)
			mon.RecordFailure()
		default:
			cli.DisplayUnexpectedFailure(a.ErrWriter, err)
			log.Log(auditlog.Critical, "unexpected error: "+err.Error())
			mon.RecordFailure()
		}
	}
}
