package ui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/tasklight/tasklight/models"
)

// Table renders data in a compact markdown-style table format.
// This is optimized for terminal display with fixed-width columns.
type Table struct {
	Headers  []string
	Rows     [][]string
	RowStyle []lipgloss.Style // optional per-row cell style
	MaxWidth int              // Max width per column (0 = auto)
}

// ColumnWidths calculates optimal column widths based on content.
func (t *Table) ColumnWidths() []int {
	widths := make([]int, len(t.Headers))

	for i, h := range t.Headers {
		widths[i] = len(h)
	}

	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	if t.MaxWidth > 0 {
		for i := range widths {
			if widths[i] > t.MaxWidth {
				widths[i] = t.MaxWidth
			}
		}
	}

	return widths
}

// Render outputs the table to a string.
func (t *Table) Render() string {
	if len(t.Headers) == 0 {
		return ""
	}

	widths := t.ColumnWidths()
	var sb strings.Builder

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	defaultCellStyle := lipgloss.NewStyle().Foreground(ColorText)

	// Header row
	for i, h := range t.Headers {
		sb.WriteString(headerStyle.Render(pad(h, widths[i])))
		if i < len(t.Headers)-1 {
			sb.WriteString("  ")
		}
	}
	sb.WriteString("\n")

	// Separator
	for i := range t.Headers {
		sb.WriteString(StyleSubtle.Render(strings.Repeat("-", widths[i])))
		if i < len(t.Headers)-1 {
			sb.WriteString("  ")
		}
	}
	sb.WriteString("\n")

	// Data rows
	for r, row := range t.Rows {
		cellStyle := defaultCellStyle
		if r < len(t.RowStyle) {
			cellStyle = t.RowStyle[r]
		}
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			sb.WriteString(cellStyle.Render(pad(truncate(cell, widths[i]), widths[i])))
			if i < len(row)-1 {
				sb.WriteString("  ")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 1 {
		return s[:width]
	}
	return s[:width-1] + "…"
}

// RenderTaskTable formats a task sequence as a table. Overdue tasks are
// shown in the warning style with an OVERDUE marker; done tasks are dimmed.
func RenderTaskTable(tasks []models.Task, now time.Time) string {
	if len(tasks) == 0 {
		return StyleSubtle.Render("No tasks.") + "\n"
	}

	table := Table{
		Headers:  []string{"ID", "TITLE", "ASSIGNEE", "PRIORITY", "STATUS", "DUE"},
		MaxWidth: 40,
	}
	for _, t := range tasks {
		due := t.DueDate.Format("2006-01-02")
		style := lipgloss.NewStyle().Foreground(ColorText)
		switch {
		case t.IsOverdue(now):
			due += " OVERDUE"
			style = StyleWarning
		case t.Status == models.StatusDone:
			style = StyleSubtle
		}
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(t.ID), t.Title, t.Assignee, string(t.Priority), string(t.Status), due,
		})
		table.RowStyle = append(table.RowStyle, style)
	}
	return table.Render()
}
