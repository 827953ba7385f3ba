package log

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jdcannonchess/trackfire/adapter/cli"
	"github.com/jdcannonchess/trackfire/internal/tracker/application/commands"
)

var photoCmd = &cobra.Command{
	Use:   "photo [task-id] [file]",
	Short: "Record a photo",
	Long: `Copy a photo into the media store and attach it to the task's entry.

Examples:
  trackfire log photo 4 ./progress.jpg`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()

		id, err := parseTaskID(args[0])
		if err != nil {
			return err
		}
		data, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("failed to read photo: %w", err)
		}
		date, err := entryDate()
		if err != nil {
			return err
		}

		result, err := app.RecordPhotoHandler.Handle(cmd.Context(), commands.RecordPhotoCommand{
			TaskID: id,
			Date:   date,
			Photo:  data,
		})
		if err != nil {
			return fmt.Errorf("failed to record photo: %w", err)
		}

		fmt.Printf("Stored photo at %s\n", result.URI)
		return nil
	},
}

var bpCmd = &cobra.Command{
	Use:   "bp [task-id] [systolic] [diastolic] [heart-rate]",
	Short: "Record a blood-pressure reading",
	Long: `Record a blood-pressure reading. Several readings on the same day
accumulate on one entry.

Examples:
  trackfire log bp 6 122 79 64`,
	Args: cobra.RangeArgs(3, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()

		id, err := parseTaskID(args[0])
		if err != nil {
			return err
		}
		systolic, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid systolic value %q", args[1])
		}
		diastolic, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid diastolic value %q", args[2])
		}
		heartRate := 0
		if len(args) == 4 {
			heartRate, err = strconv.Atoi(args[3])
			if err != nil {
				return fmt.Errorf("invalid heart rate %q", args[3])
			}
		}
		date, err := entryDate()
		if err != nil {
			return err
		}

		result, err := app.RecordBloodPressureHandler.Handle(cmd.Context(), commands.RecordBloodPressureCommand{
			TaskID:    id,
			Date:      date,
			Systolic:  systolic,
			Diastolic: diastolic,
			HeartRate: heartRate,
		})
		if err != nil {
			return fmt.Errorf("failed to record reading: %w", err)
		}

		fmt.Printf("Recorded %d/%d (%s)\n", systolic, diastolic, result.Category)
		return nil
	},
}

func init() {
	registerDateFlag(photoCmd)
	registerDateFlag(bpCmd)
}
