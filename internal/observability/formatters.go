// Package observability provides formatted terminal output for the tracker CLI.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/techtracker/internal/collection"
	"github.com/jonathan/techtracker/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow caps nested lists such as resources inside a box
	maxItemsToShow = 5
)

// boxStyle holds the glyphs used to draw a box
type boxStyle struct {
	horizontal, vertical                       string
	topLeft, topRight, bottomLeft, bottomRight string
	teeLeft, teeRight                          string
}

var (
	lightStyle = boxStyle{"─", "│", "┌", "┐", "└", "┘", "├", "┤"}
	darkStyle  = boxStyle{"━", "┃", "┏", "┓", "┗", "┛", "┣", "┫"}
)

// Printer handles formatted output for the tracker commands
type Printer struct {
	out   io.Writer
	style boxStyle
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, style: lightStyle}
}

// WithDarkMode switches the box glyphs to the dark theme when dark is set
func (p *Printer) WithDarkMode(dark bool) *Printer {
	if dark {
		p.style = darkStyle
	} else {
		p.style = lightStyle
	}
	return p
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	s := p.style
	border := strings.Repeat(s.horizontal, boxWidth-2)
	fmt.Fprintf(p.out, "%s%s%s\n", s.topLeft, border, s.topRight)
	fmt.Fprintf(p.out, "%s %-*s %s\n", s.vertical, boxWidth-4, truncate(title, boxWidth-4), s.vertical)
	fmt.Fprintf(p.out, "%s%s%s\n", s.teeLeft, border, s.teeRight)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "%s %-*s %s\n", s.vertical, boxWidth-4, truncate(line, boxWidth-4), s.vertical)
	}

	fmt.Fprintf(p.out, "%s%s%s\n", s.bottomLeft, border, s.bottomRight)
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// statusMark is the one-glyph status shown in lists
func statusMark(s types.Status) string {
	switch s {
	case types.StatusCompleted:
		return "✓"
	case types.StatusInProgress:
		return "~"
	default:
		return " "
	}
}

// PrintTechnologies outputs one line per record. total is the collection size
// before filtering and is shown when it differs from len(records).
func (p *Printer) PrintTechnologies(records []types.TechnologyRecord, total int) {
	var sb strings.Builder

	if len(records) == 0 {
		sb.WriteString("No technologies match.")
	}
	for i, rec := range records {
		sb.WriteString(fmt.Sprintf("[%s] %s", statusMark(rec.Status), rec.Title))
		if rec.Category != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", rec.Category))
		}
		sb.WriteString(fmt.Sprintf("\n    id: %s", rec.ID))
		if rec.IsImported {
			sb.WriteString("  imported")
		}
		if i < len(records)-1 {
			sb.WriteString("\n")
		}
	}

	title := fmt.Sprintf("TECHNOLOGIES (%d)", len(records))
	if total != len(records) {
		title = fmt.Sprintf("TECHNOLOGIES (%d of %d)", len(records), total)
	}
	p.printBox(title, sb.String())
}

// PrintTechnology outputs every field of one record
func (p *Printer) PrintTechnology(rec types.TechnologyRecord) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("ID:       %s\n", rec.ID))
	sb.WriteString(fmt.Sprintf("Category: %s\n", rec.Category))
	sb.WriteString(fmt.Sprintf("Status:   %s\n", rec.Status))
	sb.WriteString(fmt.Sprintf("Created:  %s\n", rec.CreatedAt))
	if rec.IsImported {
		sb.WriteString(fmt.Sprintf("Imported: yes (source id %s)\n", rec.OriginalID))
	}
	sb.WriteString("\n")
	sb.WriteString(rec.Description)
	sb.WriteString("\n")

	if rec.Notes != "" {
		sb.WriteString("\nNotes:\n")
		for _, line := range strings.Split(rec.Notes, "\n") {
			sb.WriteString(fmt.Sprintf("  %s\n", line))
		}
	}

	writeLinks(&sb, "Resources", rec.Resources)
	writeLinks(&sb, "Your resources", rec.UserResources)

	p.printBox(strings.ToUpper(rec.Title), strings.TrimSuffix(sb.String(), "\n"))
}

func writeLinks(sb *strings.Builder, heading string, links []string) {
	if len(links) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("\n%s:\n", heading))
	count := min(len(links), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", links[i]))
	}
	if len(links) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(links)-maxItemsToShow))
	}
}

// PrintStats outputs progress counts and a completion bar
func (p *Printer) PrintStats(stats collection.Stats) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Total:        %d\n", stats.Total))
	for _, s := range types.Statuses {
		sb.WriteString(fmt.Sprintf("%-13s %d\n", string(s)+":", stats.ByStatus[s]))
	}
	sb.WriteString(fmt.Sprintf("Imported:     %d\n", stats.Imported))

	const barWidth = 30
	filled := stats.Percent * barWidth / 100
	sb.WriteString(fmt.Sprintf("\n[%s%s] %d%%\n", strings.Repeat("█", filled), strings.Repeat("░", barWidth-filled), stats.Percent))

	if len(stats.ByCategory) > 0 {
		categories := make([]string, 0, len(stats.ByCategory))
		for c := range stats.ByCategory {
			categories = append(categories, c)
		}
		sort.Strings(categories)

		sb.WriteString("\nBy category:\n")
		for _, c := range categories {
			sb.WriteString(fmt.Sprintf("  %-20s %d\n", c, stats.ByCategory[c]))
		}
	}

	p.printBox("PROGRESS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSamples outputs the built-in roadmaps available for import
func (p *Printer) PrintSamples(samples []types.RoadmapDocument) {
	var sb strings.Builder

	for i, doc := range samples {
		sb.WriteString(fmt.Sprintf("%s\n", doc.Name))
		sb.WriteString(fmt.Sprintf("  %s\n", doc.Description))
		titles := make([]string, 0, len(doc.Technologies))
		for _, entry := range doc.Technologies {
			titles = append(titles, entry.Title)
		}
		sb.WriteString(fmt.Sprintf("  %d technologies: %s", len(titles), strings.Join(titles, ", ")))
		if i < len(samples)-1 {
			sb.WriteString("\n\n")
		}
	}

	p.printBox("SAMPLE ROADMAPS", sb.String())
}
