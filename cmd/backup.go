package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// backupCmd represents the backup command
var backupCmd = &cobra.Command{
	Use:   "backup <destination>",
	Short: "Copy the task file to a backup location",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		auditLog := GetAuditLog()
		taskStore, err := GetStore(auditLog)
		if err != nil {
			HandleFatalError("Error: Could not initialize the task store.", err)
		}
		defer func() { _ = taskStore.Close() }()

		if err := taskStore.Backup(args[0]); err != nil {
			PrintError("Error: Backup failed.", err)
			return
		}
		auditLog.Eventf("tasks backed up to %s", args[0])
		fmt.Println("Backup written to", args[0])
	},
}

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore <source>",
	Short: "Replace the task file with a backup",
	Long: `Replace the current task file with the document at the source path.
The in-memory list is reloaded from the restored file.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		auditLog := GetAuditLog()
		taskStore, err := GetStore(auditLog)
		if err != nil {
			HandleFatalError("Error: Could not initialize the task store.", err)
		}
		defer func() { _ = taskStore.Close() }()

		if err := taskStore.Restore(args[0]); err != nil {
			PrintError("Error: Restore failed.", err)
			return
		}
		auditLog.Eventf("tasks restored from %s", args[0])
		fmt.Println("Tasks restored from", args[0])
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
}
