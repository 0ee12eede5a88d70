// Package monitor tracks operation outcomes. It keeps an in-memory tally
// (total, successes, failures) with the invariant total == successes +
// failures, mirrors each outcome into a Prometheus counter, and renders a
// human-readable summary.
package monitor

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/agbru/mathmon/internal/auditlog"
	"github.com/agbru/mathmon/internal/format"
	"github.com/agbru/mathmon/internal/ui"
)

// Outcome labels for the operations counter.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Stats is a snapshot of the tally.
type Stats struct {
	Total     int
	Successes int
	Failures  int
}

// SuccessRate returns the success percentage, 0 when no operations ran.
func (s Stats) SuccessRate() float64 {
	return format.SuccessRate(s.Successes, s.Total)
}

// Monitor owns the tally for one run. It is mutated only through
// RecordSuccess and RecordFailure and is never reset. A Monitor is used from
// a single goroutine; it performs no internal locking.
type Monitor struct {
	log      *auditlog.Logger
	stats    Stats
	registry *prometheus.Registry
	outcomes *prometheus.CounterVec
}

// New creates a Monitor reporting summaries through the given audit logger.
func New(log *auditlog.Logger) *Monitor {
	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mathmon",
		Name:      "operations_total",
		Help:      "Arithmetic operations processed, partitioned by outcome.",
	}, []string{"outcome"})

	registry := prometheus.NewRegistry()
	registry.MustRegister(outcomes)

	return &Monitor{
		log:      log,
		registry: registry,
		outcomes: outcomes,
	}
}

// RecordSuccess counts one successful operation.
func (m *Monitor) RecordSuccess() {
	m.stats.Total++
	m.stats.Successes++
	m.outcomes.WithLabelValues(OutcomeSuccess).Inc()
}

// RecordFailure counts one failed operation.
func (m *Monitor) RecordFailure() {
	m.stats.Total++
	m.stats.Failures++
	m.outcomes.WithLabelValues(OutcomeFailure).Inc()
}

// Stats returns the current tally snapshot.
func (m *Monitor) Stats() Stats { return m.stats }

// Registry exposes the in-process Prometheus registry holding the outcome
// counters, for inspection and tests.
func (m *Monitor) Registry() *prometheus.Registry { return m.registry }

// ShowMetrics prints the summary block to out and appends the same counts as
// one audit log entry. The success rate line appears only when at least one
// operation ran.
func (m *Monitor) ShowMetrics(out io.Writer) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.Banner.Render("========== SYSTEM METRICS =========="))
	fmt.Fprintf(out, "Total operations: %s\n", ui.Metric.Render(fmt.Sprintf("%d", m.stats.Total)))
	fmt.Fprintf(out, "Successful operations: %s\n", ui.Metric.Render(fmt.Sprintf("%d", m.stats.Successes)))
	fmt.Fprintf(out, "Failed operations: %s\n", ui.Metric.Render(fmt.Sprintf("%d", m.stats.Failures)))
	if m.stats.Total > 0 {
		fmt.Fprintf(out, "Success rate: %s\n", ui.Metric.Render(format.FormatPercent(m.stats.SuccessRate())))
	}
	fmt.Fprintln(out, ui.Banner.Render("===================================="))

	m.log.LogMetrics(m.stats.Total, m.stats.Successes, m.stats.Failures)
}
