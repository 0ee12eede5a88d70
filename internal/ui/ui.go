package ui

import "github.com/charmbracelet/lipgloss"

// Styles for console output. Colors follow the dark-terminal palette used by
// the TUI so both surfaces look related.
var (
	// Banner frames section headers.
	Banner = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	// Success marks successful operation output.
	Success = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	// Failure marks failed operation output.
	Failure = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	// Muted is used for secondary hints.
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	// Metric highlights metric values.
	Metric = lipgloss.NewStyle().Bold(true)
)

// CheckMark prefixes successful results.
const CheckMark = "✓"

// CrossMark prefixes failures.
const CrossMark = "✗"
