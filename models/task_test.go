package models

import (
	"testing"
	"time"
)

func TestTask_ValidateStruct(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name    string
		task    Task
		wantErr bool
	}{
		{
			name: "valid task",
			task: Task{
				ID:        1,
				Title:     "Valid Task Title",
				Assignee:  "Alice",
				Status:    StatusTodo,
				Priority:  PriorityMedium,
				DueDate:   now.AddDate(0, 0, 1),
				CreatedAt: now,
			},
			wantErr: false,
		},
		{
			name: "zero id",
			task: Task{
				ID:        0,
				Title:     "Valid Task Title",
				Assignee:  "Alice",
				Status:    StatusTodo,
				Priority:  PriorityMedium,
				DueDate:   now.AddDate(0, 0, 1),
				CreatedAt: now,
			},
			wantErr: true,
		},
		{
			name: "empty title",
			task: Task{
				ID:        1,
				Title:     "",
				Assignee:  "Alice",
				Status:    StatusTodo,
				Priority:  PriorityMedium,
				DueDate:   now.AddDate(0, 0, 1),
				CreatedAt: now,
			},
			wantErr: true,
		},
		{
			name: "invalid status",
			task: Task{
				ID:        1,
				Title:     "Valid Task Title",
				Assignee:  "Alice",
				Status:    "invalid-status",
				Priority:  PriorityMedium,
				DueDate:   now.AddDate(0, 0, 1),
				CreatedAt: now,
			},
			wantErr: true,
		},
		{
			name: "invalid priority",
			task: Task{
				ID:        1,
				Title:     "Valid Task Title",
				Assignee:  "Alice",
				Status:    StatusTodo,
				Priority:  "invalid-priority",
				DueDate:   now.AddDate(0, 0, 1),
				CreatedAt: now,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.task)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStruct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParsePriorityInput(t *testing.T) {
	tests := []struct {
		input string
		want  TaskPriority
	}{
		{"1", PriorityLow},
		{"2", PriorityMedium},
		{"3", PriorityHigh},
		{"high", PriorityHigh},
		{"HIGH", PriorityHigh},
		{"Medium", PriorityMedium},
		{"low", PriorityLow},
		{"", PriorityLow},
		{"banana", PriorityLow},
		{"99", PriorityLow},
		{"-1", PriorityLow},
	}
	for _, tt := range tests {
		if got := ParsePriorityInput(tt.input); got != tt.want {
			t.Errorf("ParsePriorityInput(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseStatusInput(t *testing.T) {
	tests := []struct {
		input   string
		want    TaskStatus
		wantErr bool
	}{
		{"1", StatusTodo, false},
		{"2", StatusInProgress, false},
		{"3", StatusDone, false},
		{"todo", StatusTodo, false},
		{"Done", StatusDone, false},
		{"in-progress", StatusInProgress, false},
		{"doing", StatusInProgress, false},
		{"", "", true},
		{"4", "", true},
		{"cancelled", "", true},
	}
	for _, tt := range tests {
		got, err := ParseStatusInput(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseStatusInput(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseStatusInput(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseDueDays(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"3", 3},
		{" 7 ", 7},
		{"0", DefaultDueDays},
		{"-2", DefaultDueDays},
		{"", DefaultDueDays},
		{"soon", DefaultDueDays},
	}
	for _, tt := range tests {
		if got := ParseDueDays(tt.input); got != tt.want {
			t.Errorf("ParseDueDays(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestNewTask_Defaults(t *testing.T) {
	now := time.Now()
	task := NewTask(1, "", "  ", PriorityLow, 1, now)

	if task.Title != DefaultTitle {
		t.Errorf("Title = %q, want placeholder %q", task.Title, DefaultTitle)
	}
	if task.Assignee != DefaultAssignee {
		t.Errorf("Assignee = %q, want placeholder %q", task.Assignee, DefaultAssignee)
	}
	if task.Status != StatusTodo {
		t.Errorf("Status = %q, want %q", task.Status, StatusTodo)
	}
	wantDue := now.AddDate(0, 0, 1)
	if !task.DueDate.Equal(wantDue) {
		t.Errorf("DueDate = %v, want %v", task.DueDate, wantDue)
	}
	if err := ValidateStruct(task); err != nil {
		t.Errorf("defaulted task should validate: %v", err)
	}
}

func TestTask_IsOverdue(t *testing.T) {
	now := time.Now()
	overdue := Task{Status: StatusInProgress, DueDate: now.Add(-time.Hour)}
	if !overdue.IsOverdue(now) {
		t.Error("past-due in-progress task should be overdue")
	}

	doneLate := Task{Status: StatusDone, DueDate: now.Add(-time.Hour)}
	if doneLate.IsOverdue(now) {
		t.Error("done task is never overdue")
	}

	future := Task{Status: StatusTodo, DueDate: now.Add(time.Hour)}
	if future.IsOverdue(now) {
		t.Error("task due in the future should not be overdue")
	}
}

func TestPriorityRank(t *testing.T) {
	if !(PriorityHigh.Rank() > PriorityMedium.Rank() && PriorityMedium.Rank() > PriorityLow.Rank()) {
		t.Errorf("priority ranks out of order: high=%d medium=%d low=%d",
			PriorityHigh.Rank(), PriorityMedium.Rank(), PriorityLow.Rank())
	}
}
