package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/gofrs/flock"
	"github.com/spf13/afero"
	"github.com/tasklight/tasklight/models"
	yaml "gopkg.in/yaml.v3"
)

const (
	defaultDataFile   = "tasks.json"
	dataFileKey       = "dataFile"
	dataFileFormatKey = "dataFileFormat"
	defaultDataFormat = "json"
	formatJSON        = "json"
	formatYAML        = "yaml"
	formatTOML        = "toml"
)

// FileTaskStore implements the TaskStore interface using a file backend.
// It keeps the task sequence ordered in memory and rewrites the whole
// document on every mutation. Supports JSON, YAML, and TOML formats and
// holds a file lock for the lifetime of the store so a second invocation
// cannot interleave writes.
type FileTaskStore struct {
	fs       afero.Fs
	filePath string
	tasks    []models.Task
	flk      *flock.Flock
	format   string
	warnFn   func(msg string)
	nowFn    func() time.Time
}

// NewFileTaskStore creates a new instance of FileTaskStore backed by the
// OS filesystem. It does not initialize the store; Initialize must be
// called separately.
func NewFileTaskStore() *FileTaskStore {
	return &FileTaskStore{
		fs:    afero.NewOsFs(),
		nowFn: time.Now,
	}
}

// SetWarnFunc installs a sink for non-fatal warnings, such as a malformed
// document being discarded on load. A nil sink silences them.
func (s *FileTaskStore) SetWarnFunc(fn func(msg string)) {
	s.warnFn = fn
}

// SetClock overrides the time source. Intended for tests.
func (s *FileTaskStore) SetClock(nowFn func() time.Time) {
	s.nowFn = nowFn
}

func (s *FileTaskStore) warn(format string, args ...interface{}) {
	if s.warnFn != nil {
		s.warnFn(fmt.Sprintf(format, args...))
	}
}

// Initialize configures the FileTaskStore.
// It expects a 'dataFile' key in the config map specifying the path to the
// data file; if not provided it defaults to 'tasks.json' in the current
// working directory. It acquires the file lock and loads existing tasks.
func (s *FileTaskStore) Initialize(config map[string]string) error {
	if val, ok := config[dataFileKey]; ok && val != "" {
		s.filePath = val
	} else {
		s.filePath = defaultDataFile
	}

	if val, ok := config[dataFileFormatKey]; ok && val != "" {
		formatLower := strings.ToLower(val)
		switch formatLower {
		case formatJSON, formatYAML, formatTOML:
			s.format = formatLower
		default:
			return fmt.Errorf("unsupported dataFileFormat: %s. Supported formats are json, yaml, toml", val)
		}
	} else {
		s.format = defaultDataFormat
	}

	// If filePath was the default and format is not JSON, adjust the
	// default extension to match.
	if s.filePath == defaultDataFile && s.format != formatJSON {
		ext := filepath.Ext(s.filePath)
		s.filePath = strings.TrimSuffix(s.filePath, ext) + "." + s.format
	}

	dir := filepath.Dir(s.filePath)
	if dir != "." && dir != "" {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	// The process owns the document for the duration of a run. Take the
	// lock once here and hold it until Close.
	s.flk = flock.New(s.filePath + ".lock")
	locked, err := s.flk.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock for %s: %w", s.filePath, err)
	}
	if !locked {
		if err := s.flk.Lock(); err != nil {
			return fmt.Errorf("failed to acquire blocking lock for %s: %w", s.filePath, err)
		}
	}

	s.loadTasksFromFile()
	return nil
}

// loadTasksFromFile reads the document and replaces the in-memory
// sequence. A missing or malformed document yields an empty sequence, not
// an error; malformed content additionally raises a warning so the data
// loss is at least visible.
func (s *FileTaskStore) loadTasksFromFile() {
	s.tasks = nil

	exists, err := afero.Exists(s.fs, s.filePath)
	if err != nil || !exists {
		return
	}

	data, err := afero.ReadFile(s.fs, s.filePath)
	if err != nil {
		s.warn("could not read task file %s, starting empty: %v", s.filePath, err)
		return
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return
	}

	var taskList models.TaskList
	switch s.format {
	case formatJSON:
		err = json.Unmarshal(data, &taskList)
	case formatYAML:
		err = yaml.Unmarshal(data, &taskList)
	case formatTOML:
		err = toml.Unmarshal(data, &taskList)
	}
	if err != nil {
		s.warn("task file %s is malformed, starting empty: %v", s.filePath, err)
		return
	}

	s.tasks = taskList.Tasks
}

// saveTasksToFile serializes the full sequence and atomically replaces the
// document. On failure the previous on-disk content is untouched and the
// error is returned to the caller; in-memory state is never rolled back.
func (s *FileTaskStore) saveTasksToFile() error {
	taskList := models.TaskList{Tasks: s.tasks}
	if taskList.Tasks == nil {
		taskList.Tasks = []models.Task{}
	}

	var marshaledData []byte
	var err error

	switch s.format {
	case formatJSON:
		marshaledData, err = json.MarshalIndent(taskList, "", "  ")
	case formatYAML:
		marshaledData, err = yaml.Marshal(taskList)
	case formatTOML:
		buf := new(bytes.Buffer)
		if encodeErr := toml.NewEncoder(buf).Encode(taskList); encodeErr == nil {
			marshaledData = buf.Bytes()
		} else {
			err = fmt.Errorf("failed to marshal TOML: %w", encodeErr)
		}
	default:
		return fmt.Errorf("unsupported data format for saving: %s", s.format)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal tasks to %s: %w", s.format, err)
	}

	tempFilePath := s.filePath + ".tmp"
	defer func() { _ = s.fs.Remove(tempFilePath) }()

	if err := afero.WriteFile(s.fs, tempFilePath, marshaledData, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary data file %s: %w", tempFilePath, err)
	}
	if err := s.fs.Rename(tempFilePath, s.filePath); err != nil {
		return fmt.Errorf("failed to replace data file %s: %w", s.filePath, err)
	}
	return nil
}

// nextID computes the next unused task identifier: max of existing IDs
// plus one, or 1 for an empty store. IDs are never reused.
func (s *FileTaskStore) nextID() int {
	maxID := 0
	for _, t := range s.tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID + 1
}

// CreateTask appends a new task to the sequence and persists it.
// Malformed input has already been coerced to defaults upstream, so this
// never rejects a task; a non-nil error means the save failed and the
// task exists in memory only.
func (s *FileTaskStore) CreateTask(title, assignee string, priority models.TaskPriority, dueDays int) (models.Task, error) {
	task := models.NewTask(s.nextID(), title, assignee, priority, dueDays, s.nowFn())

	if err := models.ValidateStruct(task); err != nil {
		// Unreachable for coerced input; guards future field changes.
		return models.Task{}, fmt.Errorf("validation failed for new task: %w", err)
	}

	s.tasks = append(s.tasks, task)

	if err := s.saveTasksToFile(); err != nil {
		return task, fmt.Errorf("task #%d added in memory but not saved: %w", task.ID, err)
	}
	return task, nil
}

// GetTask retrieves a task by its identifier.
func (s *FileTaskStore) GetTask(id int) (models.Task, error) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Task{}, fmt.Errorf("task with ID %d: %w", id, ErrTaskNotFound)
}

// UpdateStatus overwrites the status of the task with the given ID and
// persists the sequence. The status value is validated upstream; any
// defined status may transition to any other.
func (s *FileTaskStore) UpdateStatus(id int, status models.TaskStatus) (models.Task, error) {
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		s.tasks[i].Status = status
		if err := s.saveTasksToFile(); err != nil {
			return s.tasks[i], fmt.Errorf("task #%d updated in memory but not saved: %w", id, err)
		}
		return s.tasks[i], nil
	}
	return models.Task{}, fmt.Errorf("task with ID %d: %w", id, ErrTaskNotFound)
}

// Search returns all tasks whose title or assignee contains the keyword,
// case-insensitively, preserving their current order. An empty keyword
// matches everything.
func (s *FileTaskStore) Search(keyword string) ([]models.Task, error) {
	needle := strings.ToLower(keyword)
	matches := make([]models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if strings.Contains(strings.ToLower(t.Title), needle) ||
			strings.Contains(strings.ToLower(t.Assignee), needle) {
			matches = append(matches, t)
		}
	}
	return matches, nil
}

// SortByPriority reorders the sequence in place by descending priority
// rank. Ties keep their prior relative order. The new order is persisted.
func (s *FileTaskStore) SortByPriority() error {
	sort.SliceStable(s.tasks, func(i, j int) bool {
		return s.tasks[i].Priority.Rank() > s.tasks[j].Priority.Rank()
	})
	return s.saveTasksToFile()
}

// SortByDueDate reorders the sequence in place by ascending due date.
// Ties keep their prior relative order. The new order is persisted.
func (s *FileTaskStore) SortByDueDate() error {
	sort.SliceStable(s.tasks, func(i, j int) bool {
		return s.tasks[i].DueDate.Before(s.tasks[j].DueDate)
	})
	return s.saveTasksToFile()
}

// ListTasks returns the current sequence, optionally filtered. The
// returned slice is a copy; mutating it does not affect the store.
func (s *FileTaskStore) ListTasks(filterFn func(models.Task) bool) ([]models.Task, error) {
	result := make([]models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if filterFn == nil || filterFn(t) {
			result = append(result, t)
		}
	}
	return result, nil
}

// Backup copies the current task document to the destination path.
func (s *FileTaskStore) Backup(destinationPath string) error {
	input, err := afero.ReadFile(s.fs, s.filePath)
	if err != nil {
		return fmt.Errorf("failed to read source file %s for backup: %w", s.filePath, err)
	}
	if err = afero.WriteFile(s.fs, destinationPath, input, 0o644); err != nil {
		return fmt.Errorf("failed to write backup file to %s: %w", destinationPath, err)
	}
	return nil
}

// Restore replaces the current task document with data from the source
// path and reloads the in-memory sequence from it.
func (s *FileTaskStore) Restore(sourcePath string) error {
	sourceData, err := afero.ReadFile(s.fs, sourcePath)
	if err != nil {
		return fmt.Errorf("failed to read source backup file %s: %w", sourcePath, err)
	}

	tempFilePath := s.filePath + ".tmp_restore"
	defer func() { _ = s.fs.Remove(tempFilePath) }()

	if err = afero.WriteFile(s.fs, tempFilePath, sourceData, 0o644); err != nil {
		return fmt.Errorf("failed to write restored data to temporary file %s: %w", tempFilePath, err)
	}
	if err = s.fs.Rename(tempFilePath, s.filePath); err != nil {
		return fmt.Errorf("failed to replace file %s with restored data from %s: %w", s.filePath, sourcePath, err)
	}

	s.loadTasksFromFile()
	return nil
}

// Close releases the file lock held by the store.
// flock.Unlock is idempotent and safe to call if the lock is not held.
func (s *FileTaskStore) Close() error {
	if s.flk != nil {
		return s.flk.Unlock()
	}
	return nil
}
