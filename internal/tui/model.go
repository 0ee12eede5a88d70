// Package tui implements the interactive live view of the batch: one line
// per finished trial, a progress bar, and a final summary, driven by outcome
// messages streamed from the batch runner.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/mathmon/internal/batch"
	"github.com/agbru/mathmon/internal/cli"
	"github.com/agbru/mathmon/internal/format"
	"github.com/agbru/mathmon/internal/ui"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Padding(0, 1)
	summaryStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// OutcomeMsg carries one finished trial from the batch goroutine.
type OutcomeMsg batch.Outcome

// BatchDoneMsg signals that the batch finished (or was interrupted).
type BatchDoneMsg struct {
	Err error
}

// KeyMap defines the key bindings of the live view.
type KeyMap struct {
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model is the root bubbletea model of the live view.
type Model struct {
	total     int
	outcomes  []batch.Outcome
	successes int
	failures  int
	bar       progress.Model
	keymap    KeyMap
	done      bool
	width     int
}

// NewModel creates a live view for a batch of the given size.
func NewModel(total int) Model {
	return Model{
		total:  total,
		bar:    progress.New(progress.WithDefaultGradient()),
		keymap: DefaultKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = msg.Width - 4
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.Quit) {
			return m, tea.Quit
		}
		return m, nil

	case OutcomeMsg:
		m.outcomes = append(m.outcomes, batch.Outcome(msg))
		if msg.Err == nil {
			m.successes++
		} else {
			m.failures++
		}
		return m, nil

	case BatchDoneMsg:
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("mathmon - live batch monitor"))
	b.WriteString("\n\n")

	for _, o := range m.outcomes {
		b.WriteString(m.renderOutcome(o))
		b.WriteByte('\n')
	}

	pct := 0.0
	if m.total > 0 {
		pct = float64(len(m.outcomes)) / float64(m.total)
	}
	b.WriteString("\n")
	b.WriteString(m.bar.ViewAs(pct))
	b.WriteString("\n\n")

	if m.done {
		b.WriteString(m.renderSummary())
		b.WriteByte('\n')
	} else {
		b.WriteString(helpStyle.Render(fmt.Sprintf("%d/%d processed · q to quit", len(m.outcomes), m.total)))
		b.WriteByte('\n')
	}

	return b.String()
}

func (m Model) renderOutcome(o batch.Outcome) string {
	trial := cli.FormatTrial(o.Pair.A, o.Pair.B)
	if o.Err != nil {
		return ui.Failure.Render(fmt.Sprintf(" %s #%d %s: %v", ui.CrossMark, o.Index+1, trial, o.Err))
	}
	return ui.Success.Render(fmt.Sprintf(" %s #%d %s = %s", ui.CheckMark, o.Index+1, trial, format.FormatOperand(o.Result)))
}

func (m Model) renderSummary() string {
	total := m.successes + m.failures
	lines := []string{
		fmt.Sprintf("Total operations: %d", total),
		fmt.Sprintf("Successful: %d", m.successes),
		fmt.Sprintf("Failed: %d", m.failures),
	}
	if total > 0 {
		lines = append(lines, fmt.Sprintf("Success rate: %s",
			format.FormatPercent(format.SuccessRate(m.successes, total))))
	}
	return summaryStyle.Render(strings.Join(lines, "\n"))
}
