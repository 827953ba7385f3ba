// Package task contains the task management command group.
package task

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jdcannonchess/trackfire/internal/tracker/domain"
)

// Cmd is the task command group
var Cmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
	Long:  `Create, update, archive, and delete recurring and one-off tasks.`,
}

func init() {
	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(updateCmd)
	Cmd.AddCommand(archiveCmd)
	Cmd.AddCommand(deleteCmd)
	Cmd.AddCommand(historyCmd)
}

func parseTaskID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task ID %q", arg)
	}
	return id, nil
}

var weekdayNames = map[string]time.Weekday{
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
	"sun": time.Sunday,
}

func parseWeekdays(spec string) (domain.WeekdaySet, error) {
	if strings.EqualFold(spec, "all") {
		return domain.AllWeekdays, nil
	}
	var days []time.Weekday
	for _, part := range strings.Split(spec, ",") {
		day, ok := weekdayNames[strings.ToLower(strings.TrimSpace(part))]
		if !ok {
			return 0, fmt.Errorf("unknown weekday %q", part)
		}
		days = append(days, day)
	}
	return domain.NewWeekdaySet(days...), nil
}

func parseWeekday(spec string) (time.Weekday, error) {
	day, ok := weekdayNames[strings.ToLower(strings.TrimSpace(spec))]
	if !ok {
		return 0, fmt.Errorf("unknown weekday %q", spec)
	}
	return day, nil
}

// scheduleFlags is the shared recurrence flag set for create and update.
type scheduleFlags struct {
	days           string
	monthlyDay     int
	monthlyWeek    int
	monthlyWeekday string
	yearlyDate     string // MM-DD
	yearlyWeek     int
	onDate         string // YYYY-MM-DD, one-time
	rollover       bool
}

func (f *scheduleFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.days, "days", "", "weekly schedule: comma-separated weekdays (mon,wed,fri) or 'all'")
	cmd.Flags().IntVar(&f.monthlyDay, "monthly-day", 0, "monthly schedule: day of month (1-31)")
	cmd.Flags().IntVar(&f.monthlyWeek, "monthly-week", 0, "monthly schedule: week ordinal (1-5), with --weekday")
	cmd.Flags().StringVar(&f.monthlyWeekday, "weekday", "", "weekday for --monthly-week or --yearly-week")
	cmd.Flags().StringVar(&f.yearlyDate, "yearly", "", "yearly schedule: date as MM-DD")
	cmd.Flags().IntVar(&f.yearlyWeek, "yearly-week", 0, "yearly schedule: week ordinal in the month of --yearly")
	cmd.Flags().StringVar(&f.onDate, "on", "", "one-time schedule: date as YYYY-MM-DD")
	cmd.Flags().BoolVar(&f.rollover, "rollover", false, "one-time only: move forward daily until done")
}

// build returns nil when no recurrence flag was given.
func (f *scheduleFlags) build() (domain.Schedule, error) {
	switch {
	case f.onDate != "":
		date, err := time.ParseInLocation("2006-01-02", f.onDate, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("invalid --on date %q", f.onDate)
		}
		schedule, err := domain.NewOneTimeSchedule(date, f.rollover)
		if err != nil {
			return nil, err
		}
		return schedule, nil

	case f.days != "":
		mask, err := parseWeekdays(f.days)
		if err != nil {
			return nil, err
		}
		return domain.NewWeeklySchedule(mask), nil

	case f.monthlyDay > 0:
		schedule, err := domain.MonthlyOnDay(f.monthlyDay)
		if err != nil {
			return nil, err
		}
		return schedule, nil

	case f.monthlyWeek > 0:
		weekday, err := parseWeekday(f.monthlyWeekday)
		if err != nil {
			return nil, err
		}
		schedule, err := domain.MonthlyOnNthWeekday(f.monthlyWeek, weekday)
		if err != nil {
			return nil, err
		}
		return schedule, nil

	case f.yearlyDate != "":
		parsed, err := time.Parse("01-02", f.yearlyDate)
		if err != nil {
			return nil, fmt.Errorf("invalid --yearly date %q (want MM-DD)", f.yearlyDate)
		}
		if f.yearlyWeek > 0 {
			weekday, err := parseWeekday(f.monthlyWeekday)
			if err != nil {
				return nil, err
			}
			schedule, err := domain.YearlyOnNthWeekday(parsed.Month(), f.yearlyWeek, weekday)
			if err != nil {
				return nil, err
			}
			return schedule, nil
		}
		schedule, err := domain.YearlyOnDate(parsed.Month(), parsed.Day())
		if err != nil {
			return nil, err
		}
		return schedule, nil

	default:
		return nil, nil
	}
}
