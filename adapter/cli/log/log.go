// Package log contains the completion logging command group.
package log

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/jdcannonchess/trackfire/internal/tracker/domain"
)

// Cmd is the log command group
var Cmd = &cobra.Command{
	Use:   "log",
	Short: "Log completions and values",
	Long:  `Toggle completions and record values, stars, photos, and blood-pressure readings.`,
}

func init() {
	Cmd.AddCommand(toggleCmd)
	Cmd.AddCommand(valueCmd)
	Cmd.AddCommand(starsCmd)
	Cmd.AddCommand(photoCmd)
	Cmd.AddCommand(bpCmd)
}

var logDate string

func registerDateFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&logDate, "date", "d", "", "entry date as YYYY-MM-DD (default today)")
}

func entryDate() (time.Time, error) {
	if logDate == "" {
		return domain.NormalizeDay(time.Now()), nil
	}
	date, err := time.ParseInLocation("2006-01-02", logDate, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q", logDate)
	}
	return date, nil
}

func parseTaskID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task ID %q", arg)
	}
	return id, nil
}
