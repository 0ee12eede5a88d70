package format

import (
	"fmt"
	"strconv"
)

// SuccessRate returns the success percentage for the given counts.
// It is 0 when total is 0, so callers never divide by zero.
func SuccessRate(successes, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(successes) * 100.0 / float64(total)
}

// FormatPercent renders a percentage with two-decimal precision, e.g. "75.00%".
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.2f%%", pct)
}

// FormatOperand renders a float operand in its shortest exact form
// ("100", "-0.5"), matching how the demo inputs are written.
func FormatOperand(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
