package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdcannonchess/trackfire/adapter/cli"
	"github.com/jdcannonchess/trackfire/internal/tracker/application/commands"
	"github.com/jdcannonchess/trackfire/internal/tracker/domain"
)

var (
	createSchedule scheduleFlags
	createCategory string
	createInput    string
	createHour     int
	createHidden   bool

	sliderMin  float64
	sliderMax  float64
	starCount  int
	numSuffix  string
	numInteger bool
	photoTimer int
)

var createCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a task",
	Long: `Create a recurring or one-off task.

Examples:
  trackfire task create "Gym" --days mon,wed,fri --category body
  trackfire task create "Pay rent" --monthly-day 1 --category home
  trackfire task create "Water intake" --days all --input slider --max 12
  trackfire task create "Renew passport" --on 2024-06-01 --rollover`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()

		schedule, err := createSchedule.build()
		if err != nil {
			return err
		}
		if schedule == nil {
			return fmt.Errorf("a schedule is required: use --days, --monthly-day, --monthly-week, --yearly, or --on")
		}

		create := commands.CreateTaskCommand{
			Name:      args[0],
			Category:  createCategory,
			InputType: createInput,
			Schedule:  schedule,
			Hidden:    createHidden,
		}
		if cmd.Flags().Changed("hour") {
			create.ScheduledHour = &createHour
		}
		create.InputConfig = inputConfigFromFlags(cmd, domain.ParseInputType(createInput))

		result, err := app.CreateTaskHandler.Handle(cmd.Context(), create)
		if err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}

		fmt.Printf("Created task %d: %s\n", result.TaskID, args[0])
		return nil
	},
}

// inputConfigFromFlags returns nil unless a type-specific flag was set, so
// the handler's defaults apply otherwise.
func inputConfigFromFlags(cmd *cobra.Command, input domain.InputType) domain.InputConfig {
	switch input {
	case domain.InputSlider:
		if cmd.Flags().Changed("min") || cmd.Flags().Changed("max") {
			return domain.SliderConfig{Min: sliderMin, Max: sliderMax}
		}
	case domain.InputStars:
		if cmd.Flags().Changed("stars") {
			return domain.StarsConfig{Count: starCount}
		}
	case domain.InputNumber:
		if cmd.Flags().Changed("suffix") || cmd.Flags().Changed("integer") {
			return domain.NumberConfig{Suffix: numSuffix, Integer: numInteger}
		}
	case domain.InputPhoto:
		if cmd.Flags().Changed("timer") {
			return domain.PhotoConfig{TimerSeconds: photoTimer}
		}
	}
	return nil
}

func init() {
	createSchedule.register(createCmd)
	createCmd.Flags().StringVarP(&createCategory, "category", "c", "other", "category: body, mind, work, home, social, other")
	createCmd.Flags().StringVarP(&createInput, "input", "i", "checkbox", "input type: checkbox, slider, stars, number, photo, blood_pressure")
	createCmd.Flags().IntVar(&createHour, "hour", 0, "scheduled hour of day (0-23)")
	createCmd.Flags().BoolVar(&createHidden, "hidden", false, "hide from the default daily view")

	createCmd.Flags().Float64Var(&sliderMin, "min", 0, "slider minimum")
	createCmd.Flags().Float64Var(&sliderMax, "max", 10, "slider maximum")
	createCmd.Flags().IntVar(&starCount, "stars", 5, "star count")
	createCmd.Flags().StringVar(&numSuffix, "suffix", "", "number input unit suffix")
	createCmd.Flags().BoolVar(&numInteger, "integer", false, "number input accepts whole numbers only")
	createCmd.Flags().IntVar(&photoTimer, "timer", 3, "photo capture countdown seconds")
}
