package log

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jdcannonchess/trackfire/adapter/cli"
	"github.com/jdcannonchess/trackfire/internal/tracker/application/commands"
)

var valueCmd = &cobra.Command{
	Use:   "value [task-id] [value]",
	Short: "Record a numeric value",
	Long: `Record a slider or number value; this also completes the task.

Examples:
  trackfire log value 2 7.5
  trackfire log value 5 9200 --date 2024-01-05`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()

		id, err := parseTaskID(args[0])
		if err != nil {
			return err
		}
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid value %q", args[1])
		}
		date, err := entryDate()
		if err != nil {
			return err
		}

		err = app.RecordNumericHandler.Handle(cmd.Context(), commands.RecordNumericCommand{
			TaskID: id,
			Date:   date,
			Value:  value,
		})
		if err != nil {
			return fmt.Errorf("failed to record value: %w", err)
		}

		fmt.Printf("Recorded %s for task %d on %s\n", args[1], id, date.Format("2006-01-02"))
		return nil
	},
}

var starsCmd = &cobra.Command{
	Use:   "stars [task-id] [stars]",
	Short: "Record a star rating",
	Long: `Record a star rating; this also completes the task.

Examples:
  trackfire log stars 1 4`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()

		id, err := parseTaskID(args[0])
		if err != nil {
			return err
		}
		stars, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid star rating %q", args[1])
		}
		date, err := entryDate()
		if err != nil {
			return err
		}

		err = app.RecordStarsHandler.Handle(cmd.Context(), commands.RecordStarsCommand{
			TaskID: id,
			Date:   date,
			Stars:  stars,
		})
		if err != nil {
			return fmt.Errorf("failed to record stars: %w", err)
		}

		fmt.Printf("Recorded %d star(s) for task %d on %s\n", stars, id, date.Format("2006-01-02"))
		return nil
	},
}

func init() {
	registerDateFlag(valueCmd)
	registerDateFlag(starsCmd)
}
