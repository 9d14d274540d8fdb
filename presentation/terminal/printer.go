package terminal

import (
	"fmt"
	"io"

	"github.com/ford442/supertonic-TTS/domain/entities"
)

// Printer renders the outcome of a verification run for a human
type Printer struct {
	out io.Writer
}

// NewPrinter - creates a printer writing to out
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// PrintReport writes the one-line outcome, and on failure the step that
// aborted the run and how far the sequence progressed.
func (p *Printer) PrintReport(report *entities.RunReport) {
	if report.Succeeded() {
		fmt.Fprintf(p.out, "✅ %s verified successfully! (%d steps, screenshot: %s)\n",
			report.Scenario, len(report.Steps), report.Screenshot)
		return
	}

	fmt.Fprintf(p.out, "❌ Error: %s\n", report.Error)
	fmt.Fprintf(p.out, "   run stopped at phase %q after %d step(s)\n", report.Phase, len(report.Steps))
	if failed := lastFailedStep(report); failed != nil {
		fmt.Fprintf(p.out, "   failing step: %s\n", failed.Description)
	}
}

func lastFailedStep(report *entities.RunReport) *entities.StepResult {
	for i := len(report.Steps) - 1; i >= 0; i-- {
		if report.Steps[i].Status == entities.StepFailed {
			return &report.Steps[i]
		}
	}
	return nil
}
