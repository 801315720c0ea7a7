package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/tasklight/tasklight/internal/ui"
	"github.com/tasklight/tasklight/models"
)

var listOverdueOnly bool

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tasks",
	Long: `List all tasks in their current order. Tasks whose due date has
passed and that are not done are flagged as overdue.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		auditLog := GetAuditLog()
		taskStore, err := GetStore(auditLog)
		if err != nil {
			HandleFatalError("Error: Could not initialize the task store.", err)
		}
		defer func() { _ = taskStore.Close() }()

		now := time.Now()
		var filterFn func(models.Task) bool
		if listOverdueOnly {
			filterFn = func(t models.Task) bool { return t.IsOverdue(now) }
		}

		tasks, err := taskStore.ListTasks(filterFn)
		if err != nil {
			PrintError("Error: Could not list tasks.", err)
			return
		}

		fmt.Print(ui.RenderTaskTable(tasks, now))
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVar(&listOverdueOnly, "overdue", false, "show only overdue tasks")
}
