package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tasklight/tasklight/internal/audit"
	"github.com/tasklight/tasklight/models"
	"github.com/tasklight/tasklight/store"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// verbose enables verbose output.
	verbose bool
	// ErrNoTasksFound is returned when an interactive selection is attempted but no tasks are available.
	ErrNoTasksFound = errors.New("no tasks found matching your criteria")
	// version is the application version.
	version = "0.1.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tasklight",
	Short: "Tasklight helps you track your tasks from the console.",
	Long: `Tasklight is a single-user console task tracker.
Add tasks, list them, search by keyword, update statuses, and sort by
priority or due date. The list is persisted to a local file between runs.

Run 'tasklight menu' for the interactive menu, or use the subcommands
directly.`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./.tasklight/.tasklight.yaml or $HOME/.tasklight.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Bind persistent flags to Viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// GetTaskFilePath returns the full path to the tasks file
func GetTaskFilePath() string {
	config := GetConfig()
	return filepath.Join(config.Project.RootDir, config.Project.TasksDir, config.Data.File)
}

// GetAuditLog constructs the activity log collaborator from the current
// configuration.
func GetAuditLog() *audit.Log {
	config := GetConfig()
	path := config.Log.File
	if path != "" && !filepath.IsAbs(path) {
		path = filepath.Join(config.Project.RootDir, path)
	}
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0o755)
	}
	return audit.New(path)
}

// GetStore initializes and returns the task store. Warnings raised while
// loading (for example a malformed document being discarded) go to the
// activity log, and to stderr in verbose mode.
func GetStore(auditLog *audit.Log) (store.TaskStore, error) {
	s := store.NewFileTaskStore()
	s.SetWarnFunc(func(msg string) {
		auditLog.Record("warning: " + msg)
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Warning:", msg)
		}
	})

	config := GetConfig()
	taskFilePath := GetTaskFilePath()

	err := s.Initialize(map[string]string{
		"dataFile":       taskFilePath,
		"dataFileFormat": config.Data.Format,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store at %s: %w", taskFilePath, err)
	}
	return s, nil
}

// selectTaskInteractive presents a prompt to the user to select a task from a list.
// It can be filtered using the provided filter function.
func selectTaskInteractive(taskStore store.TaskStore, filterFn func(models.Task) bool, label string) (models.Task, error) {
	tasks, err := taskStore.ListTasks(filterFn)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to list tasks for selection: %w", err)
	}

	if len(tasks) == 0 {
		return models.Task{}, ErrNoTasksFound
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   `> {{ .Title | cyan }} (#{{ .ID }}, Status: {{ .Status }})`,
		Inactive: `  {{ .Title | faint }} (#{{ .ID }}, Status: {{ .Status }})`,
		Selected: `{{ "✔" | green }} {{ .Title | faint }} (#{{ .ID }})`,
		Details: `
--------- Task Details ----------
{{ "ID:\t" | faint }} {{ .ID }}
{{ "Title:\t" | faint }} {{ .Title }}
{{ "Assignee:\t" | faint }} {{ .Assignee }}
{{ "Status:\t" | faint }} {{ .Status }}
{{ "Priority:\t" | faint }} {{ .Priority }}`,
	}

	searcher := func(input string, index int) bool {
		task := tasks[index]
		name := strings.ToLower(task.Title)
		assignee := strings.ToLower(task.Assignee)
		input = strings.ToLower(input)
		return strings.Contains(name, input) || strings.Contains(assignee, input)
	}

	prompt := promptui.Select{
		Label:     label,
		Items:     tasks,
		Templates: templates,
		Searcher:  searcher,
	}

	i, _, err := prompt.Run()
	if err != nil {
		return models.Task{}, err // Return error as is (includes promptui.ErrInterrupt)
	}

	return tasks[i], nil
}
