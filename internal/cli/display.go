// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayBanner], [DisplayResult], [DisplayFailure].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatTrial], [FormatResult].

package cli

import (
	"fmt"
	"io"

	"github.com/agbru/mathmon/internal/format"
	"github.com/agbru/mathmon/internal/ui"
)

// DisplayBanner writes a framed section title.
func DisplayBanner(out io.Writer, title string) {
	frame := "========================================"
	fmt.Fprintln(out, ui.Banner.Render(frame))
	fmt.Fprintln(out, ui.Banner.Render("  "+title))
	fmt.Fprintln(out, ui.Banner.Render(frame))
}

// DisplaySectionHeader writes a lightweight section header, used before each
// scripted trial and before the batch.
func DisplaySectionHeader(out io.Writer, title string) {
	fmt.Fprintf(out, "\n--- %s ---\n", ui.Banner.Render(title))
}

// FormatTrial renders a division attempt, e.g. "100 / 5".
func FormatTrial(a, b float64) string {
	return fmt.Sprintf("%s / %s", format.FormatOperand(a), format.FormatOperand(b))
}

// DisplayTrialHeader announces one batch operation.
func DisplayTrialHeader(out io.Writer, index int, a, b float64) {
	fmt.Fprintf(out, "\nOperation #%d: %s\n", index+1, FormatTrial(a, b))
}

// FormatResult renders a successful quotient.
func FormatResult(value float64) string {
	return fmt.Sprintf("%s Result: %s", ui.CheckMark, format.FormatOperand(value))
}

// DisplayResult writes a successful result line.
func DisplayResult(out io.Writer, value float64) {
	fmt.Fprintln(out, ui.Success.Render(FormatResult(value)))
}

// DisplayFailure writes a failed operation line. Failures are prefixed
// distinctly from successes.
func DisplayFailure(out io.Writer, err error) {
	fmt.Fprintln(out, ui.Failure.Render(fmt.Sprintf("%s %v", ui.CrossMark, err)))
}

// DisplayUnexpectedFailure writes a failure line for errors outside the
// arithmetic taxonomy.
func DisplayUnexpectedFailure(out io.Writer, err error) {
	fmt.Fprintln(out, ui.Failure.Render(fmt.Sprintf("%s unexpected error: %v", ui.CrossMark, err)))
}

// DisplayLogHint points the user at the audit log after the run.
func DisplayLogHint(out io.Writer, path string) {
	fmt.Fprintf(out, "\n%s\n", ui.Muted.Render(fmt.Sprintf("%s See %q for the full record.", ui.CheckMark, path)))
}
