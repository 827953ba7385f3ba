package task

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jdcannonchess/trackfire/adapter/cli"
	"github.com/jdcannonchess/trackfire/internal/tracker/application/queries"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history [task-id]",
	Short: "Show a task's completion history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()

		id, err := parseTaskID(args[0])
		if err != nil {
			return err
		}

		entries, err := app.CompletionHistoryHandler.Handle(cmd.Context(), queries.CompletionHistoryQuery{
			TaskID: id,
			Limit:  historyLimit,
		})
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("No history.")
			return nil
		}

		for _, entry := range entries {
			mark := " "
			if entry.Completed {
				mark = "x"
			}
			var detail []string
			if entry.Numeric != nil {
				detail = append(detail, fmt.Sprintf("%.1f", *entry.Numeric))
			}
			if entry.Stars != nil {
				detail = append(detail, strings.Repeat("*", *entry.Stars))
			}
			if entry.PhotoURI != "" {
				detail = append(detail, entry.PhotoURI)
			}
			for _, reading := range entry.Readings {
				detail = append(detail, fmt.Sprintf("%d/%d (%s)", reading.Systolic, reading.Diastolic, reading.Classify()))
			}
			fmt.Printf("[%s] %s  %s\n", mark, entry.Date.Format("2006-01-02"), strings.Join(detail, ", "))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 30, "max entries to show, newest first")
}
