package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// BulletList renders items as an indented bullet list.
func BulletList(items []string) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("  ")
		b.WriteString(StyleDim.Render("•"))
		b.WriteString(" ")
		b.WriteString(item)
	}
	return b.String()
}

// HumanDate renders an ISO date as "Sep 15, 2026". Unparseable input is
// returned as-is.
func HumanDate(isoDate string) string {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return t.Format("Jan 2, 2006")
}

// DateRangeLabel renders a start/end pair, collapsing one-day trips to a
// single date.
func DateRangeLabel(start, end string) string {
	if end == "" || end == start {
		return HumanDate(start)
	}
	return fmt.Sprintf("%s – %s", HumanDate(start), HumanDate(end))
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// RenderTable renders an aligned table with a header separator. Column
// widths are measured with lipgloss.Width so styled cells line up.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := make([]int, len(headers))
	measure := func(row []string) {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(headers)
	for _, row := range rows {
		measure(row)
	}

	const gap = "  "

	writeRow := func(b *strings.Builder, cells []string, style func(string) string) {
		for i, width := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			if style != nil {
				cell = style(cell)
			}
			b.WriteString(cell)
			if i < len(widths)-1 {
				b.WriteString(strings.Repeat(" ", width-lipgloss.Width(cell)))
				b.WriteString(gap)
			}
		}
		b.WriteString("\n")
	}

	var b strings.Builder
	writeRow(&b, headers, func(s string) string { return StyleHeader.Render(s) })
	separator := make([]string, len(widths))
	for i, w := range widths {
		separator[i] = StyleDim.Render(strings.Repeat("─", w))
	}
	writeRow(&b, separator, nil)
	for _, row := range rows {
		writeRow(&b, row, nil)
	}
	return b.String()
}
