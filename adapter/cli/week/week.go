// Package week contains the weekly summary command group.
package week

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jdcannonchess/trackfire/adapter/cli"
	insightsQueries "github.com/jdcannonchess/trackfire/internal/insights/application/queries"
	"github.com/jdcannonchess/trackfire/internal/tracker/domain"
)

// Cmd is the week command group
var Cmd = &cobra.Command{
	Use:   "week",
	Short: "Weekly summaries",
	Long:  `Show, list, and regenerate graded weekly summaries.`,
}

func init() {
	Cmd.AddCommand(showCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(refreshCmd)
}

func weekArg(args []string) (time.Time, error) {
	if len(args) == 0 {
		return domain.StartOfWeek(time.Now()), nil
	}
	date, err := time.ParseInLocation("2006-01-02", args[0], time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", args[0])
	}
	return domain.StartOfWeek(date), nil
}

var showCmd = &cobra.Command{
	Use:   "show [date]",
	Short: "Show a week's summary",
	Long: `Show the summary of the week containing the date, generating it if
missing. Defaults to the current week.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()

		weekStart, err := weekArg(args)
		if err != nil {
			return err
		}

		snapshot, err := app.SnapshotGenerator.GetOrGenerate(cmd.Context(), weekStart)
		if err != nil {
			return fmt.Errorf("failed to load week: %w", err)
		}

		printSnapshot(insightsQueries.ToSnapshotDTO(snapshot))
		return nil
	},
}

var refreshCmd = &cobra.Command{
	Use:   "refresh [date]",
	Short: "Regenerate a week's summary",
	Long:  `Recompute the summary from the ledger, replacing the stored one.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()

		weekStart, err := weekArg(args)
		if err != nil {
			return err
		}

		snapshot, err := app.SnapshotGenerator.Generate(cmd.Context(), weekStart)
		if err != nil {
			return fmt.Errorf("failed to regenerate week: %w", err)
		}

		printSnapshot(insightsQueries.ToSnapshotDTO(snapshot))
		return nil
	},
}

var listLimit int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent weekly summaries",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()

		dtos, err := app.RecentSnapshotsHandler.Handle(cmd.Context(), insightsQueries.RecentSnapshotsQuery{
			Limit: listLimit,
		})
		if err != nil {
			return fmt.Errorf("failed to list weeks: %w", err)
		}
		if len(dtos) == 0 {
			fmt.Println("No summaries yet.")
			return nil
		}

		for _, dto := range dtos {
			fmt.Printf("%s  %-2s %5.1f%%  %d/%d done, %d perfect day(s)\n",
				dto.WeekStart.Format("2006-01-02"),
				dto.Grade,
				dto.CompletionRate,
				dto.TasksCompleted,
				dto.TotalTasks,
				dto.PerfectDays,
			)
		}
		return nil
	},
}

func printSnapshot(dto insightsQueries.SnapshotDTO) {
	fmt.Printf("Week of %s\n", dto.WeekStart.Format("2006-01-02"))
	fmt.Printf("  Grade: %s (%.1f%%, %d/%d completed)\n", dto.Grade, dto.CompletionRate, dto.TasksCompleted, dto.TotalTasks)
	fmt.Printf("  Perfect days: %d, longest streak: %d\n", dto.PerfectDays, dto.LongestStreak)

	var stats []string
	if dto.AvgMood != nil {
		stats = append(stats, fmt.Sprintf("mood %.1f", *dto.AvgMood))
	}
	if dto.AvgSleepHours != nil {
		stats = append(stats, fmt.Sprintf("sleep %.1fh", *dto.AvgSleepHours))
	}
	if dto.AvgSleepQuality != nil {
		stats = append(stats, fmt.Sprintf("sleep quality %.1f", *dto.AvgSleepQuality))
	}
	if dto.AvgWeight != nil {
		stats = append(stats, fmt.Sprintf("weight %.1f", *dto.AvgWeight))
	}
	if dto.TotalSteps != nil {
		stats = append(stats, fmt.Sprintf("%d steps", *dto.TotalSteps))
	}
	if len(stats) > 0 {
		fmt.Printf("  Wellness: %s\n", strings.Join(stats, ", "))
	}

	for _, highlight := range dto.Highlights {
		fmt.Printf("  - %s\n", highlight)
	}
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 12, "max summaries to show")
}
