package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdcannonchess/trackfire/adapter/cli"
	"github.com/jdcannonchess/trackfire/internal/tracker/application/commands"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [task-id]",
	Short: "Delete a task and its history",
	Long: `Permanently delete a task together with all its ledger rows.
Use archive instead if you want to keep the history.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()

		id, err := parseTaskID(args[0])
		if err != nil {
			return err
		}

		if err := app.DeleteTaskHandler.Handle(cmd.Context(), commands.DeleteTaskCommand{TaskID: id}); err != nil {
			return fmt.Errorf("failed to delete task: %w", err)
		}

		fmt.Printf("Deleted task %d\n", id)
		return nil
	},
}
