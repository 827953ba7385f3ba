package log

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdcannonchess/trackfire/adapter/cli"
	"github.com/jdcannonchess/trackfire/internal/tracker/application/commands"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle [task-id]",
	Short: "Toggle a task's completion",
	Long: `Flip the completed state of a task for a date.

Examples:
  trackfire log toggle 3
  trackfire log toggle 3 --date 2024-01-05`,
	Aliases: []string{"done"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()

		id, err := parseTaskID(args[0])
		if err != nil {
			return err
		}
		date, err := entryDate()
		if err != nil {
			return err
		}

		result, err := app.ToggleCompletionHandler.Handle(cmd.Context(), commands.ToggleCompletionCommand{
			TaskID: id,
			Date:   date,
		})
		if err != nil {
			return fmt.Errorf("failed to toggle completion: %w", err)
		}

		if result.Completed {
			fmt.Printf("Completed task %d on %s\n", id, date.Format("2006-01-02"))
		} else {
			fmt.Printf("Uncompleted task %d on %s\n", id, date.Format("2006-01-02"))
		}
		return nil
	},
}

func init() {
	registerDateFlag(toggleCmd)
}
