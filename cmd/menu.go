package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/tasklight/tasklight/internal/audit"
	"github.com/tasklight/tasklight/internal/ui"
	"github.com/tasklight/tasklight/models"
	"github.com/tasklight/tasklight/store"
)

const (
	menuAdd          = "Add task"
	menuList         = "List tasks"
	menuSearch       = "Search tasks"
	menuUpdateStatus = "Update status"
	menuSortPriority = "Sort by priority"
	menuSortDueDate  = "Sort by due date"
	menuExit         = "Exit"
)

var menuOptions = []string{
	menuAdd, menuList, menuSearch, menuUpdateStatus, menuSortPriority, menuSortDueDate, menuExit,
}

// menuCmd represents the menu command
var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Run the interactive menu",
	Long: `Run the numbered menu loop: add, list, search, update status, sort by
priority or due date, exit. Errors inside a menu action are reported and
the loop continues; the process only exits when Exit is selected.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		auditLog := GetAuditLog()
		taskStore, err := GetStore(auditLog)
		if err != nil {
			HandleFatalError("Error: Could not initialize the task store.", err)
		}
		defer func() { _ = taskStore.Close() }()

		fmt.Println(ui.StyleHeader.Render("Tasklight"))
		for {
			choice, err := promptMenuChoice()
			if err != nil {
				// Interrupt at the menu prompt behaves like Exit.
				if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
					return
				}
				PrintError("Error: Could not read menu choice.", err)
				continue
			}
			if choice == menuExit {
				return
			}
			runMenuAction(choice, taskStore, auditLog)
		}
	},
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

func promptMenuChoice() (string, error) {
	prompt := promptui.Select{
		Label: "What would you like to do",
		Items: menuOptions,
		Size:  len(menuOptions),
	}
	_, choice, err := prompt.Run()
	return choice, err
}

// runMenuAction dispatches one menu choice. A panic inside an action is
// recovered and reported so the loop keeps running.
func runMenuAction(choice string, taskStore store.TaskStore, auditLog *audit.Log) {
	defer func() {
		if r := recover(); r != nil {
			PrintError(fmt.Sprintf("Error: operation failed unexpectedly: %v", r), fmt.Errorf("recovered: %v", r))
		}
	}()

	switch choice {
	case menuAdd:
		menuAddTask(taskStore, auditLog)
	case menuList:
		tasks, err := taskStore.ListTasks(nil)
		if err != nil {
			PrintError("Error: Could not list tasks.", err)
			return
		}
		fmt.Print(ui.RenderTaskTable(tasks, time.Now()))
	case menuSearch:
		keyword := promptLine("Keyword")
		matches, err := taskStore.Search(keyword)
		if err != nil {
			PrintError("Error: Search failed.", err)
			return
		}
		fmt.Print(ui.RenderTaskTable(matches, time.Now()))
	case menuUpdateStatus:
		menuUpdateTaskStatus(taskStore, auditLog)
	case menuSortPriority:
		if err := taskStore.SortByPriority(); err != nil {
			PrintError(fmt.Sprintf("Warning: tasks reordered but not saved: %v", err), err)
		}
		auditLog.Record("tasks sorted by priority")
		fmt.Println("Sorted by priority.")
	case menuSortDueDate:
		if err := taskStore.SortByDueDate(); err != nil {
			PrintError(fmt.Sprintf("Warning: tasks reordered but not saved: %v", err), err)
		}
		auditLog.Record("tasks sorted by due date")
		fmt.Println("Sorted by due date.")
	}
}

func menuAddTask(taskStore store.TaskStore, auditLog *audit.Log) {
	title := promptLine("Title")
	assignee := promptLine("Assignee")
	priority := promptLine("Priority (1=low, 2=medium, 3=high)")
	dueIn := promptLine("Due in how many days")

	task, err := taskStore.CreateTask(title, assignee, models.ParsePriorityInput(priority), models.ParseDueDays(dueIn))
	if err != nil {
		PrintError(fmt.Sprintf("Warning: task added but not saved: %v", err), err)
	}
	auditLog.Eventf("task #%d added: %s", task.ID, task.Title)
	fmt.Println("Added:", task.Describe())
}

func menuUpdateTaskStatus(taskStore store.TaskStore, auditLog *audit.Log) {
	task, err := selectTaskInteractive(taskStore, nil, "Select task to update")
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

	input := promptLine(fmt.Sprintf("New status (current: %s; 1=todo, 2=in-progress, 3=done)", task.Status))
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
		PrintError(fmt.Sprintf("Warning: status changed but not saved: %v", err), err)
	}
	auditLog.Eventf("task #%d status set to %s", updated.ID, updated.Status)
	fmt.Printf("Task #%d status set to %s.\n", updated.ID, updated.Status)
}
