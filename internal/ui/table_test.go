package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/tasklight/tasklight/models"
)

func TestTable_ColumnWidths(t *testing.T) {
	table := Table{
		Headers: []string{"ID", "TITLE"},
		Rows: [][]string{
			{"1", "A very long task title"},
			{"12", "Short"},
		},
	}

	widths := table.ColumnWidths()
	if widths[0] != 2 {
		t.Errorf("ID column width = %d, want 2", widths[0])
	}
	if widths[1] != len("A very long task title") {
		t.Errorf("TITLE column width = %d, want %d", widths[1], len("A very long task title"))
	}

	table.MaxWidth = 10
	widths = table.ColumnWidths()
	if widths[1] != 10 {
		t.Errorf("capped TITLE column width = %d, want 10", widths[1])
	}
}

func TestRenderTaskTable(t *testing.T) {
	now := time.Now()
	tasks := []models.Task{
		{ID: 1, Title: "Fix bug", Assignee: "Alice", Priority: models.PriorityHigh,
			Status: models.StatusInProgress, DueDate: now.Add(-24 * time.Hour)},
		{ID: 2, Title: "Write docs", Assignee: "Bob", Priority: models.PriorityLow,
			Status: models.StatusTodo, DueDate: now.Add(24 * time.Hour)},
	}

	out := RenderTaskTable(tasks, now)
	if !strings.Contains(out, "Fix bug") || !strings.Contains(out, "Write docs") {
		t.Errorf("table missing task rows:\n%s", out)
	}
	if !strings.Contains(out, "OVERDUE") {
		t.Errorf("past-due task should be flagged OVERDUE:\n%s", out)
	}
	if strings.Count(out, "OVERDUE") != 1 {
		t.Errorf("only the past-due task should be flagged:\n%s", out)
	}
}

func TestRenderTaskTable_Empty(t *testing.T) {
	out := RenderTaskTable(nil, time.Now())
	if !strings.Contains(out, "No tasks") {
		t.Errorf("empty sequence should render a placeholder, got %q", out)
	}
}
