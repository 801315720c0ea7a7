package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/tasklight/tasklight/internal/ui"
)

// sortCmd represents the sort command
var sortCmd = &cobra.Command{
	Use:   "sort {priority|due}",
	Short: "Sort tasks by priority or due date",
	Long: `Reorder the task list in place and persist the new order.

  priority  descending priority (high first), ties keep their order
  due       ascending due date, ties keep their order`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"priority", "due"},
	Run: func(cmd *cobra.Command, args []string) {
		auditLog := GetAuditLog()
		taskStore, err := GetStore(auditLog)
		if err != nil {
			HandleFatalError("Error: Could not initialize the task store.", err)
		}
		defer func() { _ = taskStore.Close() }()

		switch args[0] {
		case "priority":
			err = taskStore.SortByPriority()
		case "due":
			err = taskStore.SortByDueDate()
		default:
			PrintError(fmt.Sprintf("Error: unknown sort key %q, expected 'priority' or 'due'.", args[0]), nil)
			return
		}
		if err != nil {
			PrintError(fmt.Sprintf("Warning: tasks reordered but not saved: %v", err), err)
		}
		auditLog.Eventf("tasks sorted by %s", args[0])

		tasks, listErr := taskStore.ListTasks(nil)
		if listErr != nil {
			PrintError("Error: Could not list tasks.", listErr)
			return
		}
		fmt.Print(ui.RenderTaskTable(tasks, time.Now()))
	},
}

func init() {
	rootCmd.AddCommand(sortCmd)
}
