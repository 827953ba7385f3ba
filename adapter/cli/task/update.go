package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdcannonchess/trackfire/adapter/cli"
	"github.com/jdcannonchess/trackfire/internal/tracker/application/commands"
)

var (
	updateSchedule scheduleFlags
	updateName     string
	updateCategory string
	updateHour     int
	updateNoHour   bool
	updateHidden   bool
	updateVisible  bool
)

var updateCmd = &cobra.Command{
	Use:   "update [task-id]",
	Short: "Update a task",
	Long: `Update a task's name, category, schedule, or visibility.
Only the given flags change; everything else stays as it is.

Examples:
  trackfire task update 3 --name "Morning run" --hour 7
  trackfire task update 3 --days mon,thu
  trackfire task update 3 --no-hour --hide`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()

		id, err := parseTaskID(args[0])
		if err != nil {
			return err
		}

		schedule, err := updateSchedule.build()
		if err != nil {
			return err
		}

		update := commands.UpdateTaskCommand{
			TaskID:            id,
			Schedule:          schedule,
			ClearScheduleHour: updateNoHour,
		}
		if cmd.Flags().Changed("name") {
			update.Name = &updateName
		}
		if cmd.Flags().Changed("category") {
			update.Category = &updateCategory
		}
		if cmd.Flags().Changed("hour") {
			update.ScheduledHour = &updateHour
		}
		if updateHidden {
			hidden := true
			update.Hidden = &hidden
		} else if updateVisible {
			hidden := false
			update.Hidden = &hidden
		}

		if err := app.UpdateTaskHandler.Handle(cmd.Context(), update); err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}

		fmt.Printf("Updated task %d\n", id)
		return nil
	},
}

func init() {
	updateSchedule.register(updateCmd)
	updateCmd.Flags().StringVar(&updateName, "name", "", "new task name")
	updateCmd.Flags().StringVarP(&updateCategory, "category", "c", "", "new category")
	updateCmd.Flags().IntVar(&updateHour, "hour", 0, "scheduled hour of day (0-23)")
	updateCmd.Flags().BoolVar(&updateNoHour, "no-hour", false, "clear the scheduled hour")
	updateCmd.Flags().BoolVar(&updateHidden, "hide", false, "hide from the default daily view")
	updateCmd.Flags().BoolVar(&updateVisible, "show", false, "show in the default daily view")
}
