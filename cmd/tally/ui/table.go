package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders static rows for the non-interactive `tally list` output.
type Table struct {
	Headers []string
	Rows    [][]string
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{Headers: headers}
}

// AddRow appends one row.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Render lays the table out with per-column widths.
func (t *Table) Render(styles Styles) string {
	if len(t.Rows) == 0 {
		return styles.Status.Render("no habits yet — run tally and :add one") + "\n"
	}

	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	header := lipgloss.NewStyle().Bold(true)
	var b strings.Builder
	for i, h := range t.Headers {
		b.WriteString(header.Render(padCell(h, widths[i])))
		b.WriteString("  ")
	}
	b.WriteString("\n")

	total := 0
	for _, w := range widths {
		total += w + 2
	}
	b.WriteString(styles.Status.Render(strings.Repeat("─", total)))
	b.WriteString("\n")

	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) {
				b.WriteString(padCell(cell, widths[i]))
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func padCell(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
