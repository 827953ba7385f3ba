package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jdcannonchess/trackfire/internal/tracker/application/queries"
	"github.com/jdcannonchess/trackfire/internal/tracker/domain"
)

var dayShowHidden bool

var dayCmd = &cobra.Command{
	Use:   "day [date]",
	Short: "Show the tasks due on a day",
	Long: `Show the tasks due on a day with their completion state.
Defaults to today.

Examples:
  trackfire day
  trackfire day 2024-01-05 --all`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()

		date := domain.NormalizeDay(time.Now())
		if len(args) == 1 {
			parsed, err := time.ParseInLocation("2006-01-02", args[0], time.UTC)
			if err != nil {
				return fmt.Errorf("invalid date %q", args[0])
			}
			date = parsed
		}

		dtos, err := app.TasksForDayHandler.Handle(cmd.Context(), queries.TasksForDayQuery{
			Date:          date,
			IncludeHidden: dayShowHidden,
		})
		if err != nil {
			return fmt.Errorf("failed to load day: %w", err)
		}

		fmt.Printf("%s (%s)\n", date.Format("2006-01-02"), date.Weekday())
		if len(dtos) == 0 {
			fmt.Println("Nothing due.")
			return nil
		}

		for _, dto := range dtos {
			mark := " "
			if dto.Completed {
				mark = "x"
			}
			hour := "     "
			if dto.ScheduledHour != nil {
				hour = fmt.Sprintf("%02d:00", *dto.ScheduledHour)
			}
			fmt.Printf("[%s] %s  #%-3d %s%s\n", mark, hour, dto.TaskID, dto.Name, dayDetail(dto))
		}
		return nil
	},
}

func dayDetail(dto queries.DayTaskDTO) string {
	var parts []string
	if dto.Numeric != nil {
		parts = append(parts, fmt.Sprintf("%.1f", *dto.Numeric))
	}
	if dto.Stars != nil {
		parts = append(parts, strings.Repeat("*", *dto.Stars))
	}
	if dto.PhotoURI != "" {
		parts = append(parts, "photo")
	}
	if len(dto.Readings) > 0 {
		last := dto.Readings[len(dto.Readings)-1]
		parts = append(parts, fmt.Sprintf("%d/%d", last.Systolic, last.Diastolic))
	}
	if len(parts) == 0 {
		return ""
	}
	return "  (" + strings.Join(parts, ", ") + ")"
}

func init() {
	dayCmd.Flags().BoolVarP(&dayShowHidden, "all", "a", false, "include hidden tasks")
	rootCmd.AddCommand(dayCmd)
}
