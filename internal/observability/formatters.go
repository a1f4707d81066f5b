// Package observability provides logger construction and formatted run output for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/pyq-scraper/internal/pipeline"
	"github.com/jonathan/pyq-scraper/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output of run results
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

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// PrintCompanyReport outputs the counts and the dropped units of one company pass.
func (p *Printer) PrintCompanyReport(report *pipeline.CompanyReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Documents:   %d\n", report.Documents))
	sb.WriteString(fmt.Sprintf("Candidates:  %d\n", report.Candidates))
	sb.WriteString(fmt.Sprintf("Inserted:    %d\n", report.Load.Inserted))
	if report.Load.Duplicates > 0 {
		sb.WriteString(fmt.Sprintf("Duplicates:  %d\n", report.Load.Duplicates))
	}
	if report.Load.Failed > 0 {
		sb.WriteString(fmt.Sprintf("Failed rows: %d\n", report.Load.Failed))
	}

	var problems []types.Outcome
	for _, o := range report.Outcomes {
		if o.Status != types.StatusOK {
			problems = append(problems, o)
		}
	}
	if len(problems) > 0 {
		sb.WriteString("\nIssues:\n")
		count := min(len(problems), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", problems[i]))
		}
		if len(problems) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(problems)-maxItemsToShow))
		}
	}

	title := fmt.Sprintf("%s: %s", strings.ToUpper(report.Source), strings.ToUpper(report.Company))
	if report.Fatal() {
		title += " (SKIPPED)"
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSummary outputs a box per company followed by run totals.
func (p *Printer) PrintSummary(summary *pipeline.Summary) {
	if summary == nil || len(summary.Reports) == 0 {
		return
	}

	for i := range summary.Reports {
		p.PrintCompanyReport(&summary.Reports[i])
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Companies:   %d\n", len(summary.Reports)))
	sb.WriteString(fmt.Sprintf("Candidates:  %d\n", summary.Candidates()))
	sb.WriteString(fmt.Sprintf("Inserted:    %d", summary.Inserted()))
	if fatal := summary.FatalCompanies(); len(fatal) > 0 {
		sb.WriteString(fmt.Sprintf("\nSkipped:     %s", strings.Join(fatal, ", ")))
	}
	p.printBox("RUN SUMMARY", sb.String())
}

// PrintCompanies outputs the company keys a source knows about.
func (p *Printer) PrintCompanies(source string, keys []string) {
	if len(keys) == 0 {
		return
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d companies:\n", len(keys)))
	for _, line := range wrap(keys, boxWidth-6) {
		sb.WriteString("  " + line + "\n")
	}
	p.printBox(strings.ToUpper(source)+" COMPANIES", strings.TrimSuffix(sb.String(), "\n"))
}

// wrap joins words with ", " into lines no longer than width
func wrap(words []string, width int) []string {
	var (
		lines []string
		line  string
	)
	for _, w := range words {
		switch {
		case line == "":
			line = w
		case len(line)+2+len(w) > width:
			lines = append(lines, line+",")
			line = w
		default:
			line += ", " + w
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
