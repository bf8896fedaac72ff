// Package observability provides console output for link-doctor: the result
// sink and the formatted summaries printed in verbose mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/link-doctor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to the console; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if runes := []rune(line); len(runes) > boxWidth-4 {
			line = string(runes[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDeadLinks outputs the first few extracted dead links.
func (p *Printer) PrintDeadLinks(links []types.DeadLink) {
	var sb strings.Builder
	if len(links) == 0 {
		sb.WriteString("No dead links in report")
		p.printBox("DEAD LINKS", sb.String())
		return
	}

	sb.WriteString(fmt.Sprintf("Extracted %d dead links:\n", len(links)))
	count := min(len(links), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("\n• %s\n", links[i].URL))
		sb.WriteString(fmt.Sprintf("  found on %s", links[i].FoundOn))
	}
	if len(links) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n\n... and %d more", len(links)-maxItemsToShow))
	}

	p.printBox("DEAD LINKS", sb.String())
}

// PrintOutcome outputs a human-readable summary of the diagnosis step.
func (p *Printer) PrintOutcome(outcome types.Outcome) {
	switch {
	case outcome.Failed():
		p.printBox("DIAGNOSIS FAILED", outcome.Error)
	case outcome.Diagnosis == nil:
		p.printBox("DIAGNOSIS", outcome.Message)
	default:
		p.printBox("DIAGNOSIS", formatDiagnosis(outcome.Diagnosis))
	}
}

func formatDiagnosis(d *types.Diagnosis) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Original:   %s\n", d.OriginalURL))
	if d.DetectedLanguage != "" {
		sb.WriteString(fmt.Sprintf("Language:   %s\n", d.DetectedLanguage))
	}
	sb.WriteString(fmt.Sprintf("Correction: %s\n", valueOrNone(d.SuggestedCorrection)))
	sb.WriteString(fmt.Sprintf("Verified:   %s\n", valueOrNone(d.VerifiedWorkingURL)))
	if d.ManualCheckRequired {
		sb.WriteString("Manual check required\n")
	}

	if len(d.AlternativeFormsChecked) > 0 {
		sb.WriteString("\nAlternatives checked:\n")
		count := min(len(d.AlternativeFormsChecked), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", d.AlternativeFormsChecked[i]))
		}
		if len(d.AlternativeFormsChecked) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(d.AlternativeFormsChecked)-maxItemsToShow))
		}
	}

	if d.Analysis != "" {
		sb.WriteString("\n")
		sb.WriteString(d.Analysis)
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

func valueOrNone(s *string) string {
	if s == nil || *s == "" {
		return "(none)"
	}
	return *s
}
