// Package domain holds the weekly rollup model and its derivation rules.
package domain

import (
	"sort"
	"time"

	tracker "github.com/jdcannonchess/trackfire/internal/tracker/domain"
)

// WeeklySnapshot is the rollup for exactly one Monday-start week. All fields
// are derived from the completion ledger; there is no independent mutation
// path. Nil wellness stats mean the backing task produced no data that week.
type WeeklySnapshot struct {
	WeekStart time.Time // Monday, midnight UTC

	TotalTasks     int
	TasksCompleted int
	PerfectDays    int
	LongestStreak  int

	AvgMood         *float64
	AvgSleepHours   *float64
	AvgSleepQuality *float64
	AvgWeight       *float64
	TotalSteps      *int

	Grade      string
	Highlights []string

	GeneratedAt time.Time
}

// CompletionRate returns the completed fraction in percent. A week with no
// ledger rows rates 0 rather than dividing by zero.
func (s *WeeklySnapshot) CompletionRate() float64 {
	return completionRate(s.TasksCompleted, s.TotalTasks)
}

func completionRate(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}

// GradeFor maps a completion percentage to a letter grade.
func GradeFor(rate float64) string {
	switch {
	case rate >= 95:
		return "A+"
	case rate >= 90:
		return "A"
	case rate >= 85:
		return "A-"
	case rate >= 80:
		return "B+"
	case rate >= 75:
		return "B"
	case rate >= 70:
		return "B-"
	case rate >= 65:
		return "C+"
	case rate >= 60:
		return "C"
	case rate >= 55:
		return "C-"
	case rate >= 50:
		return "D"
	default:
		return "F"
	}
}

// CountCompletions tallies total ledger rows and completed rows.
func CountCompletions(rows []*tracker.Completion) (completed, total int) {
	for _, row := range rows {
		total++
		if row.IsCompleted() {
			completed++
		}
	}
	return completed, total
}

// PerfectDays returns the distinct dates on which every ledger row of that
// day is completed, requiring at least one row.
func PerfectDays(rows []*tracker.Completion) []time.Time {
	type tally struct {
		total     int
		completed int
	}
	byDay := make(map[time.Time]*tally)
	for _, row := range rows {
		day := tracker.NormalizeDay(row.Date)
		c, ok := byDay[day]
		if !ok {
			c = &tally{}
			byDay[day] = c
		}
		c.total++
		if row.IsCompleted() {
			c.completed++
		}
	}

	var days []time.Time
	for day, c := range byDay {
		if c.total > 0 && c.completed == c.total {
			days = append(days, day)
		}
	}
	sortDays(days)
	return days
}

// LongestStreak finds the longest run of perfect days with consecutive
// weekday ordinals (1=Monday .. 7=Sunday) within a single week. This is the
// weekday-number adjacency rule, not true calendar adjacency: the window is
// one Monday-start week, so runs cannot cross week boundaries anyway.
func LongestStreak(perfectDays []time.Time) int {
	if len(perfectDays) == 0 {
		return 0
	}

	ordinals := make([]int, 0, len(perfectDays))
	for _, day := range perfectDays {
		ordinals = append(ordinals, (int(day.Weekday())+6)%7+1)
	}
	sort.Ints(ordinals)

	longest, run := 1, 1
	for i := 1; i < len(ordinals); i++ {
		switch ordinals[i] {
		case ordinals[i-1] + 1:
			run++
			if run > longest {
				longest = run
			}
		case ordinals[i-1]:
			// duplicate ordinal, keep the run
		default:
			run = 1
		}
	}
	return longest
}

// highlight ladder: each entry contributes at most one string, highest
// qualifying threshold wins. Ladder order fixes the output order.
type rung struct {
	min  float64
	text string
}

var (
	completionLadder = []rung{
		{100, "Flawless week: every single task completed"},
		{90, "Outstanding week with over 90% of tasks completed"},
		{75, "Strong week: three quarters of tasks completed"},
		{50, "Solid effort: more than half of tasks completed"},
	}
	perfectDayLadder = []rung{
		{7, "Perfect every single day this week"},
		{5, "Five or more perfect days"},
		{3, "Three or more perfect days"},
		{1, "At least one perfect day"},
	}
	sleepLadder = []rung{
		{8, "Averaged a full night's sleep (8+ hours)"},
		{7, "Averaged 7+ hours of sleep"},
	}
	moodLadder = []rung{
		{4.5, "Mood stayed excellent all week"},
		{4, "Mood averaged 4 stars or better"},
	}
)

// BuildHighlights evaluates the four ladders in fixed order: completion
// rate, perfect days, sleep average, mood average.
func BuildHighlights(rate float64, perfectDays int, avgSleep, avgMood *float64) []string {
	highlights := make([]string, 0, 4)

	if text, ok := climb(completionLadder, rate); ok {
		highlights = append(highlights, text)
	}
	if text, ok := climb(perfectDayLadder, float64(perfectDays)); ok {
		highlights = append(highlights, text)
	}
	if avgSleep != nil {
		if text, ok := climb(sleepLadder, *avgSleep); ok {
			highlights = append(highlights, text)
		}
	}
	if avgMood != nil {
		if text, ok := climb(moodLadder, *avgMood); ok {
			highlights = append(highlights, text)
		}
	}
	return highlights
}

func climb(ladder []rung, value float64) (string, bool) {
	for _, r := range ladder {
		if value >= r.min {
			return r.text, true
		}
	}
	return "", false
}

func sortDays(days []time.Time) {
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
}
