package domain

import (
	"errors"
	"time"
)

var (
	ErrInvalidMonthDay  = errors.New("day of month must be between 1 and 31")
	ErrInvalidWeekOrd   = errors.New("week ordinal must be between 1 and 5")
	ErrInvalidMonth     = errors.New("month must be between 1 and 12")
	ErrZeroScheduleDate = errors.New("one-time schedule requires a date")
)

// ScheduleType identifies the recurrence scheme of a task.
type ScheduleType string

const (
	ScheduleWeekly  ScheduleType = "weekly"
	ScheduleMonthly ScheduleType = "monthly"
	ScheduleYearly  ScheduleType = "yearly"
	ScheduleOneTime ScheduleType = "one_time"
)

// Schedule decides whether a task is due on a given calendar date.
// Implementations are pure: no clock access, no storage access.
type Schedule interface {
	Type() ScheduleType
	IsDueOn(date time.Time) bool
}

// WeeklySchedule fires on the weekdays in its mask.
type WeeklySchedule struct {
	Days WeekdaySet
}

func NewWeeklySchedule(days WeekdaySet) WeeklySchedule {
	return WeeklySchedule{Days: days}
}

func (s WeeklySchedule) Type() ScheduleType { return ScheduleWeekly }

func (s WeeklySchedule) IsDueOn(date time.Time) bool {
	return s.Days.Contains(date.Weekday())
}

// MonthlySchedule fires either on a specific day of the month or on the
// nth occurrence of a weekday. Exactly one mode is active: Day > 0 selects
// day-of-month mode, otherwise Week/Weekday apply.
type MonthlySchedule struct {
	Day     int // 1-31; 0 in nth-weekday mode
	Week    int // 1-5, literal occurrence count (5 never means "last")
	Weekday time.Weekday
}

// MonthlyOnDay schedules for a specific day of the month. Days past the end
// of a short month simply never fire that month; there is no clamping.
func MonthlyOnDay(day int) (MonthlySchedule, error) {
	if day < 1 || day > 31 {
		return MonthlySchedule{}, ErrInvalidMonthDay
	}
	return MonthlySchedule{Day: day}, nil
}

// MonthlyOnNthWeekday schedules for the nth occurrence of a weekday. A week
// ordinal of 5 is taken literally: in months with only four occurrences of
// that weekday the task does not fire.
func MonthlyOnNthWeekday(week int, weekday time.Weekday) (MonthlySchedule, error) {
	if week < 1 || week > 5 {
		return MonthlySchedule{}, ErrInvalidWeekOrd
	}
	return MonthlySchedule{Week: week, Weekday: weekday}, nil
}

func (s MonthlySchedule) Type() ScheduleType { return ScheduleMonthly }

func (s MonthlySchedule) IsDueOn(date time.Time) bool {
	if s.Day > 0 {
		return date.Day() == s.Day
	}
	return date.Weekday() == s.Weekday && weekdayOrdinal(date) == s.Week
}

// YearlySchedule is a MonthlySchedule additionally gated on a month.
type YearlySchedule struct {
	Month   time.Month
	Day     int // 1-31; 0 in nth-weekday mode
	Week    int // 1-5, literal occurrence count
	Weekday time.Weekday
}

// YearlyOnDate schedules for a fixed month and day every year.
func YearlyOnDate(month time.Month, day int) (YearlySchedule, error) {
	if month < time.January || month > time.December {
		return YearlySchedule{}, ErrInvalidMonth
	}
	if day < 1 || day > 31 {
		return YearlySchedule{}, ErrInvalidMonthDay
	}
	return YearlySchedule{Month: month, Day: day}, nil
}

// YearlyOnNthWeekday schedules for the nth weekday of a fixed month.
func YearlyOnNthWeekday(month time.Month, week int, weekday time.Weekday) (YearlySchedule, error) {
	if month < time.January || month > time.December {
		return YearlySchedule{}, ErrInvalidMonth
	}
	if week < 1 || week > 5 {
		return YearlySchedule{}, ErrInvalidWeekOrd
	}
	return YearlySchedule{Month: month, Week: week, Weekday: weekday}, nil
}

func (s YearlySchedule) Type() ScheduleType { return ScheduleYearly }

func (s YearlySchedule) IsDueOn(date time.Time) bool {
	if date.Month() != s.Month {
		return false
	}
	if s.Day > 0 {
		return date.Day() == s.Day
	}
	return date.Weekday() == s.Weekday && weekdayOrdinal(date) == s.Week
}

// OneTimeSchedule fires on exactly one calendar date. The rollover engine,
// not the evaluator, is what moves Date forward for overdue tasks.
type OneTimeSchedule struct {
	Date         time.Time
	AutoRollover bool
}

func NewOneTimeSchedule(date time.Time, autoRollover bool) (OneTimeSchedule, error) {
	if date.IsZero() {
		return OneTimeSchedule{}, ErrZeroScheduleDate
	}
	return OneTimeSchedule{Date: NormalizeDay(date), AutoRollover: autoRollover}, nil
}

func (s OneTimeSchedule) Type() ScheduleType { return ScheduleOneTime }

func (s OneTimeSchedule) IsDueOn(date time.Time) bool {
	return SameDay(s.Date, date)
}
