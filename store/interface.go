package store

import (
	"errors"

	"github.com/tasklight/tasklight/models"
)

// ErrTaskNotFound is returned when no task in the store matches the
// requested identifier.
var ErrTaskNotFound = errors.New("task not found")

// TaskStore defines the interface for task management and persistence.
// It outlines the contract for the in-memory ordered task sequence and
// its file-backed document.
type TaskStore interface {
	// Initialize configures the store with necessary parameters, such as
	// file path and data format, and loads the persisted task sequence.
	// It should be called before any other store operations.
	Initialize(config map[string]string) error

	// CreateTask appends a new task to the sequence. The store assigns the
	// next unused integer ID, sets status to todo and the due date to
	// now + dueDays. Input never causes a failure; a non-nil error means
	// the task is in memory but was not durably saved.
	CreateTask(title, assignee string, priority models.TaskPriority, dueDays int) (models.Task, error)

	// GetTask retrieves a task by its identifier.
	// It returns ErrTaskNotFound if no task matches.
	GetTask(id int) (models.Task, error)

	// UpdateStatus overwrites the status of the task with the given ID.
	// It returns ErrTaskNotFound if no task matches; on a save failure the
	// in-memory change stands and the error is returned.
	UpdateStatus(id int, status models.TaskStatus) (models.Task, error)

	// Search returns all tasks whose title or assignee contains the
	// keyword, case-insensitively, in their current order. An empty
	// keyword matches every task.
	Search(keyword string) ([]models.Task, error)

	// SortByPriority reorders the sequence in place by descending priority
	// rank. The sort is stable and the new order is persisted.
	SortByPriority() error

	// SortByDueDate reorders the sequence in place by ascending due date.
	// The sort is stable and the new order is persisted.
	SortByDueDate() error

	// ListTasks returns the current sequence, optionally filtered.
	// If filterFn is nil, all tasks are returned in order.
	ListTasks(filterFn func(models.Task) bool) ([]models.Task, error)

	// Backup copies the current task document to the destination path.
	Backup(destinationPath string) error

	// Restore replaces the current task document with the file at the
	// source path and reloads the in-memory sequence from it.
	Restore(sourcePath string) error

	// Close releases any resources held by the store, such as file locks.
	// It should be called when the store is no longer needed.
	Close() error
}
