// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonathan/resume-site/internal/resume"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
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

// PrintDocument outputs a human-readable summary of a loaded resume document.
func (p *Printer) PrintDocument(doc *resume.Document) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", doc.Frontmatter.Name))
	sb.WriteString(fmt.Sprintf("Title:    %s\n", doc.Frontmatter.Title))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", doc.Frontmatter.Email))
	sb.WriteString(fmt.Sprintf("Updated:  %s\n", doc.Frontmatter.LastUpdated))
	sb.WriteString(fmt.Sprintf("Body:     %d chars markdown, %d chars HTML", len(doc.Body), len(doc.HTML)))

	p.printBox(fmt.Sprintf("Resume Document (%s)", doc.Language), sb.String())
}

// PrintBuildSummary outputs the pages written by a build and its duration.
func (p *Printer) PrintBuildSummary(runID string, pages []string, elapsed time.Duration) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:      %s\n", runID))
	sb.WriteString(fmt.Sprintf("Pages:    %d\n", len(pages)))
	for _, page := range pages {
		sb.WriteString(fmt.Sprintf("  - %s\n", page))
	}
	sb.WriteString(fmt.Sprintf("Elapsed:  %s", elapsed.Round(time.Millisecond)))

	p.printBox("Build Summary", sb.String())
}
