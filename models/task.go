package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// TaskStatus represents the possible statuses of a task.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in-progress"
	StatusDone       TaskStatus = "done"
)

// TaskPriority represents the priority levels of a task.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// Defaults applied when the user gives no usable input.
const (
	DefaultTitle    = "Untitled task"
	DefaultAssignee = "Unassigned"
	DefaultDueDays  = 1
)

// ErrInvalidStatus is returned when a status choice does not map to a
// defined TaskStatus value.
var ErrInvalidStatus = fmt.Errorf("invalid status choice, expected one of: todo, in-progress, done (or 1-3)")

// Task represents a unit of trackable work.
type Task struct {
	ID        int          `json:"id" yaml:"id" toml:"id" validate:"required,min=1"`
	Title     string       `json:"title" yaml:"title" toml:"title" validate:"required"`
	Assignee  string       `json:"assignee" yaml:"assignee" toml:"assignee" validate:"required"`
	Priority  TaskPriority `json:"priority" yaml:"priority" toml:"priority" validate:"required,oneof=low medium high"`
	Status    TaskStatus   `json:"status" yaml:"status" toml:"status" validate:"required,oneof=todo in-progress done"`
	DueDate   time.Time    `json:"dueDate" yaml:"dueDate" toml:"dueDate" validate:"required"`
	CreatedAt time.Time    `json:"createdAt" yaml:"createdAt" toml:"createdAt" validate:"required"`
}

// TaskList is the on-disk document: an ordered sequence of task records.
type TaskList struct {
	Tasks []Task `json:"tasks" yaml:"tasks" toml:"tasks" validate:"dive"`
}

// Rank returns the sort rank of a priority. Higher means more urgent.
func (p TaskPriority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// IsOverdue reports whether the task's due date has passed and the task
// is not done.
func (t Task) IsOverdue(now time.Time) bool {
	return t.Status != StatusDone && t.DueDate.Before(now)
}

// Describe renders a one-line human-readable summary of the task.
func (t Task) Describe() string {
	return fmt.Sprintf("#%d %s (assignee: %s, priority: %s, status: %s, due: %s)",
		t.ID, t.Title, t.Assignee, t.Priority, t.Status, t.DueDate.Format("2006-01-02"))
}

// ParsePriorityInput maps free-form user input to a priority. It accepts
// the priority name (any case) or a 1-based index (1=low, 2=medium,
// 3=high). Anything else, including empty input, falls back to low.
func ParsePriorityInput(input string) TaskPriority {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "2", "medium", "med", "m":
		return PriorityMedium
	case "3", "high", "h":
		return PriorityHigh
	default:
		return PriorityLow
	}
}

// ParseStatusInput maps user input to a status. It accepts the status name
// (any case) or a 1-based index (1=todo, 2=in-progress, 3=done). Unknown
// input is rejected with ErrInvalidStatus rather than stored as-is.
func ParseStatusInput(input string) (TaskStatus, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "1", "todo", "to-do":
		return StatusTodo, nil
	case "2", "in-progress", "inprogress", "doing":
		return StatusInProgress, nil
	case "3", "done", "completed":
		return StatusDone, nil
	default:
		return "", ErrInvalidStatus
	}
}

// ParseDueDays parses the "due in N days" input. Non-numeric or
// non-positive input falls back to DefaultDueDays.
func ParseDueDays(input string) int {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 1 {
		return DefaultDueDays
	}
	return n
}

// global validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMessages []string
		for _, e := range validationErrors {
			errorMessages = append(errorMessages, fmt.Sprintf("Validation failed on field '%s': rule '%s' (value: '%v')", e.StructNamespace(), e.Tag(), e.Value()))
		}
		return fmt.Errorf("%s", strings.Join(errorMessages, "; "))
	}
	return nil
}

// NewTask builds a task with defaulted fields. Empty title or assignee get
// placeholders; the caller supplies pre-parsed priority and due offset.
func NewTask(id int, title, assignee string, priority TaskPriority, dueDays int, now time.Time) Task {
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}
	if strings.TrimSpace(assignee) == "" {
		assignee = DefaultAssignee
	}
	return Task{
		ID:        id,
		Title:     title,
		Assignee:  assignee,
		Priority:  priority,
		Status:    StatusTodo,
		DueDate:   now.AddDate(0, 0, dueDays),
		CreatedAt: now,
	}
}
