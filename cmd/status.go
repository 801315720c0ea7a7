package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/tasklight/tasklight/models"
	"github.com/tasklight/tasklight/store"
)

var statusValue string

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status [task_id]",
	Short: "Update a task's status",
	Long: `Update the status of a task. If task_id is provided, that task is
updated directly; otherwise an interactive list is presented. Any status
may transition to any other, including done back to todo.`,
	Example: `  # Interactive selection
  tasklight status

  # Direct update
  tasklight status 3 --set done`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		auditLog := GetAuditLog()
		taskStore, err := GetStore(auditLog)
		if err != nil {
			HandleFatalError("Error: Could not initialize the task store.", err)
		}
		defer func() { _ = taskStore.Close() }()

		var task models.Task
		if len(args) > 0 {
			id, convErr := strconv.Atoi(args[0])
			if convErr != nil {
				PrintError(fmt.Sprintf("Error: %q is not a task ID.", args[0]), convErr)
				return
			}
			task, err = taskStore.GetTask(id)
			if err != nil {
				PrintError(fmt.Sprintf("Error: Could not find task with ID %d.", id), err)
				return
			}
		} else {
			task, err = selectTaskInteractive(taskStore, nil, "Select task to update")
			if err != nil {
				if errors.Is(err, promptui.ErrInterrupt) {
					fmt.Println("Update cancelled.")
					return
				}
				if errors.Is(err, ErrNoTasksFound) {
					fmt.Println("No tasks available to update.")
					return
				}
				PrintError("Error: Could not select a task.", err)
				return
			}
		}

		input := statusValue
		if input == "" {
			input = promptLine(fmt.Sprintf("New status (current: %s; 1=todo, 2=in-progress, 3=done)", task.Status))
		}

		newStatus, err := models.ParseStatusInput(input)
		if err != nil {
			PrintError(fmt.Sprintf("Error: %v", err), err)
			return
		}

		updated, err := taskStore.UpdateStatus(task.ID, newStatus)
		if err != nil {
			if errors.Is(err, store.ErrTaskNotFound) {
				PrintError(fmt.Sprintf("Error: Task with ID %d not found.", task.ID), err)
				return
			}
			// Saved failed; the in-memory change was applied.
			PrintError(fmt.Sprintf("Warning: status changed but not saved: %v", err), err)
		}
		auditLog.Eventf("task #%d status set to %s", updated.ID, updated.Status)

		fmt.Printf("Task #%d status set to %s.\n", updated.ID, updated.Status)
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().StringVar(&statusValue, "set", "", "new status: todo, in-progress, done (or 1-3)")
}
