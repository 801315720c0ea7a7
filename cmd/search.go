package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/tasklight/tasklight/internal/ui"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search [keyword]",
	Short: "Search tasks by keyword",
	Long: `Search tasks whose title or assignee contains the keyword,
case-insensitively. An empty keyword matches every task.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		auditLog := GetAuditLog()
		taskStore, err := GetStore(auditLog)
		if err != nil {
			HandleFatalError("Error: Could not initialize the task store.", err)
		}
		defer func() { _ = taskStore.Close() }()

		var keyword string
		if len(args) > 0 {
			keyword = args[0]
		}

		matches, err := taskStore.Search(keyword)
		if err != nil {
			PrintError("Error: Search failed.", err)
			return
		}

		if len(matches) == 0 {
			fmt.Printf("No tasks match %q.\n", keyword)
			return
		}
		fmt.Print(ui.RenderTaskTable(matches, time.Now()))
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
