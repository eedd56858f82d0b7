// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/vdp-scanner/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
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
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSelection outputs the scored candidate pool and the winner.
func (p *Printer) PrintSelection(sel *types.SelectionResult) {
	if sel == nil || len(sel.Considered) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidates scored: %d (threshold %.2f)\n\n", len(sel.Considered), sel.Threshold))

	count := min(len(sel.Considered), maxItemsToShow)
	for i := 0; i < count; i++ {
		c := sel.Considered[i]
		if c.FetchError != nil {
			sb.WriteString(fmt.Sprintf("✗ [%s] %s\n", *c.FetchError, shorten(c.URL, 40)))
			continue
		}
		sb.WriteString(fmt.Sprintf("%.2f [%s] %s\n", c.Confidence, c.Source, shorten(c.URL, 38)))
	}
	if len(sel.Considered) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(sel.Considered)-maxItemsToShow))
	}

	sb.WriteString("\n")
	if sel.Winner != nil {
		sb.WriteString(fmt.Sprintf("Winner: %s (%.2f)", shorten(sel.Winner.URL, 40), sel.Winner.Confidence))
	} else {
		sb.WriteString("Winner: none (no policy found)")
	}

	p.printBox("CANDIDATE SELECTION", sb.String())
}

// PrintResult outputs the final analysis result for one company.
func (p *Printer) PrintResult(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:  %s\n", result.CompanyName))
	sb.WriteString(fmt.Sprintf("Status:   %s\n", result.Status))

	if result.SecurityTxtURL != "" {
		sb.WriteString(fmt.Sprintf("sec.txt:  %s\n", shorten(result.SecurityTxtURL, 45)))
	}
	if result.PolicyURL != "" {
		sb.WriteString(fmt.Sprintf("Policy:   %s\n", shorten(result.PolicyURL, 45)))
	}
	if result.HighestConfidence != nil {
		sb.WriteString(fmt.Sprintf("Score:    %.2f\n", *result.HighestConfidence))
	}
	if result.Error != "" {
		sb.WriteString(fmt.Sprintf("Error:    %s\n", shorten(result.Error, 45)))
	}

	if len(result.Analysis) > 0 {
		sb.WriteString("\nExtracted fields:\n")
		shown := 0
		for _, key := range types.KnownAnalysisFields {
			v, ok := result.Analysis[key]
			if !ok || shown >= maxItemsToShow {
				continue
			}
			sb.WriteString(fmt.Sprintf("  • %s: %s\n", key, shorten(fmt.Sprintf("%v", v), 32)))
			shown++
		}
		if len(result.Analysis) > shown {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Analysis)-shown))
		}
	}

	p.printBox("ANALYSIS RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

func shorten(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
