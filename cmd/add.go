package cmd

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/tasklight/tasklight/models"
)

var (
	addTitle    string
	addAssignee string
	addPriority string
	addDueIn    string
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new task",
	Long: `Add a new task to the tracker. Fields not given as flags are prompted
for interactively. Missing or unparseable input falls back to safe
defaults: a placeholder title and assignee, low priority, due in 1 day.`,
	Example: `  # Fully specified
  tasklight add "Fix login bug" --assignee Alice --priority high --due-in 3

  # Prompt for everything
  tasklight add`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		auditLog := GetAuditLog()
		taskStore, err := GetStore(auditLog)
		if err != nil {
			HandleFatalError("Error: Could not initialize the task store.", err)
		}
		defer func() { _ = taskStore.Close() }()

		title := addTitle
		if len(args) > 0 {
			title = args[0]
		}
		assignee := addAssignee
		priority := addPriority
		dueIn := addDueIn

		// Prompt for anything not supplied. Prompt errors (interrupt
		// included) leave the value empty, which the defaults cover.
		if title == "" {
			title = promptLine("Title")
		}
		if assignee == "" {
			assignee = promptLine("Assignee")
		}
		if !cmd.Flags().Changed("priority") {
			priority = promptLine("Priority (1=low, 2=medium, 3=high)")
		}
		if !cmd.Flags().Changed("due-in") {
			dueIn = promptLine("Due in how many days")
		}

		task, err := taskStore.CreateTask(title, assignee, models.ParsePriorityInput(priority), models.ParseDueDays(dueIn))
		if err != nil {
			// The task exists in memory but was not durably saved.
			PrintError(fmt.Sprintf("Warning: task added but not saved: %v", err), err)
		}
		auditLog.Eventf("task #%d added: %s", task.ID, task.Title)

		fmt.Println("Added:", task.Describe())
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addTitle, "title", "", "task title")
	addCmd.Flags().StringVar(&addAssignee, "assignee", "", "who the task is assigned to")
	addCmd.Flags().StringVar(&addPriority, "priority", "", "priority: low, medium, high (or 1-3)")
	addCmd.Flags().StringVar(&addDueIn, "due-in", "", "days until the task is due")
}

// promptLine reads a single free-text line. A cancelled or failed prompt
// yields an empty string, which callers treat as missing input.
func promptLine(label string) string {
	prompt := promptui.Prompt{Label: label}
	value, err := prompt.Run()
	if err != nil {
		return ""
	}
	return value
}
