package domain

import "time"

// WeekdaySet is a 7-bit weekday mask. Bit 0 is Monday, bit 6 is Sunday.
// The bit layout is part of the persisted format and must not change.
type WeekdaySet uint8

// AllWeekdays has every day set.
const AllWeekdays WeekdaySet = 0x7F

// NewWeekdaySet builds a set from the given weekdays.
func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s |= bitFor(d)
	}
	return s
}

// Contains reports whether the set includes the given weekday.
func (s WeekdaySet) Contains(d time.Weekday) bool {
	return s&bitFor(d) != 0
}

// IsEmpty reports whether no weekday is set. A weekly task with an empty
// set is never due: it represents an unassigned, not-yet-scheduled task.
func (s WeekdaySet) IsEmpty() bool {
	return s&AllWeekdays == 0
}

// Days returns the weekdays in the set, Monday first.
func (s WeekdaySet) Days() []time.Weekday {
	order := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
	var days []time.Weekday
	for _, d := range order {
		if s.Contains(d) {
			days = append(days, d)
		}
	}
	return days
}

func bitFor(d time.Weekday) WeekdaySet {
	// time.Weekday counts Sunday=0; the persisted mask counts Monday=0.
	return WeekdaySet(1) << ((int(d) + 6) % 7)
}

// NormalizeDay truncates a time to midnight UTC. Completion dates are stored
// as fixed-timezone midnight instants and joined against schedules by day.
func NormalizeDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// StartOfWeek returns the Monday of the week containing t, at midnight UTC.
func StartOfWeek(t time.Time) time.Time {
	t = NormalizeDay(t)
	daysBack := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -daysBack)
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// weekdayOrdinal counts which occurrence of its weekday the date is within
// its month, starting at 1.
func weekdayOrdinal(date time.Time) int {
	return (date.Day()-1)/7 + 1
}
