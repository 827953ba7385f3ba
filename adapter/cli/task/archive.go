package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdcannonchess/trackfire/adapter/cli"
	"github.com/jdcannonchess/trackfire/internal/tracker/application/commands"
)

var archiveRestore bool

var archiveCmd = &cobra.Command{
	Use:   "archive [task-id]",
	Short: "Archive or restore a task",
	Long: `Archive a task so it stops scheduling, keeping its history.

Examples:
  trackfire task archive 3
  trackfire task archive 3 --restore`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()

		id, err := parseTaskID(args[0])
		if err != nil {
			return err
		}

		err = app.ArchiveTaskHandler.Handle(cmd.Context(), commands.ArchiveTaskCommand{
			TaskID:  id,
			Restore: archiveRestore,
		})
		if err != nil {
			return fmt.Errorf("failed to archive task: %w", err)
		}

		if archiveRestore {
			fmt.Printf("Restored task %d\n", id)
		} else {
			fmt.Printf("Archived task %d\n", id)
		}
		return nil
	},
}

func init() {
	archiveCmd.Flags().BoolVar(&archiveRestore, "restore", false, "bring an archived task back")
}
