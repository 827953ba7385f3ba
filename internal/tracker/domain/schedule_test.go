package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeeklySchedule_FullYearMatchesMask(t *testing.T) {
	s := NewWeeklySchedule(NewWeekdaySet(time.Monday, time.Wednesday, time.Friday))

	day := date(2024, time.January, 1)
	for i := 0; i < 366; i++ {
		want := day.Weekday() == time.Monday ||
			day.Weekday() == time.Wednesday ||
			day.Weekday() == time.Friday
		assert.Equal(t, want, s.IsDueOn(day), "date %s", day.Format("2006-01-02"))
		day = day.AddDate(0, 0, 1)
	}
}

func TestWeeklySchedule_EmptyMaskNeverDue(t *testing.T) {
	s := NewWeeklySchedule(0)

	day := date(2024, time.January, 1)
	for i := 0; i < 7; i++ {
		assert.False(t, s.IsDueOn(day))
		day = day.AddDate(0, 0, 1)
	}
}

func TestMonthlyOnDay(t *testing.T) {
	s, err := MonthlyOnDay(15)
	require.NoError(t, err)

	assert.True(t, s.IsDueOn(date(2024, time.March, 15)))
	assert.False(t, s.IsDueOn(date(2024, time.March, 14)))
	assert.False(t, s.IsDueOn(date(2024, time.March, 16)))
}

func TestMonthlyOnDay_ShortMonthNeverFires(t *testing.T) {
	// Day 31 simply does not exist in February; no clamping to the 29th.
	s, err := MonthlyOnDay(31)
	require.NoError(t, err)

	day := date(2024, time.February, 1)
	for day.Month() == time.February {
		assert.False(t, s.IsDueOn(day))
		day = day.AddDate(0, 0, 1)
	}
	assert.True(t, s.IsDueOn(date(2024, time.March, 31)))
}

func TestMonthlyOnDay_Validation(t *testing.T) {
	_, err := MonthlyOnDay(0)
	assert.ErrorIs(t, err, ErrInvalidMonthDay)
	_, err = MonthlyOnDay(32)
	assert.ErrorIs(t, err, ErrInvalidMonthDay)
}

func TestMonthlyOnNthWeekday(t *testing.T) {
	// Second Tuesday of April 2024 is the 9th.
	s, err := MonthlyOnNthWeekday(2, time.Tuesday)
	require.NoError(t, err)

	assert.True(t, s.IsDueOn(date(2024, time.April, 9)))
	assert.False(t, s.IsDueOn(date(2024, time.April, 2)))  // first Tuesday
	assert.False(t, s.IsDueOn(date(2024, time.April, 16))) // third Tuesday
	assert.False(t, s.IsDueOn(date(2024, time.April, 10))) // a Wednesday
}

func TestMonthlyOnNthWeekday_FifthIsLiteral(t *testing.T) {
	// Week 5 means the fifth occurrence, never "last". February 2024 has
	// only four Mondays, so the schedule stays silent all month.
	s, err := MonthlyOnNthWeekday(5, time.Monday)
	require.NoError(t, err)

	day := date(2024, time.February, 1)
	for day.Month() == time.February {
		assert.False(t, s.IsDueOn(day), "date %s", day.Format("2006-01-02"))
		day = day.AddDate(0, 0, 1)
	}

	// April 2024 does have five Mondays; the fifth is the 29th.
	assert.True(t, s.IsDueOn(date(2024, time.April, 29)))
}

func TestMonthlyOnNthWeekday_Validation(t *testing.T) {
	_, err := MonthlyOnNthWeekday(0, time.Monday)
	assert.ErrorIs(t, err, ErrInvalidWeekOrd)
	_, err = MonthlyOnNthWeekday(6, time.Monday)
	assert.ErrorIs(t, err, ErrInvalidWeekOrd)
}

func TestYearlyOnDate(t *testing.T) {
	s, err := YearlyOnDate(time.July, 4)
	require.NoError(t, err)

	assert.True(t, s.IsDueOn(date(2024, time.July, 4)))
	assert.False(t, s.IsDueOn(date(2024, time.June, 4)))
	assert.False(t, s.IsDueOn(date(2024, time.July, 5)))
}

func TestYearlyOnNthWeekday(t *testing.T) {
	// Fourth Thursday of November 2024 is the 28th.
	s, err := YearlyOnNthWeekday(time.November, 4, time.Thursday)
	require.NoError(t, err)

	assert.True(t, s.IsDueOn(date(2024, time.November, 28)))
	assert.False(t, s.IsDueOn(date(2024, time.November, 21)))
	assert.False(t, s.IsDueOn(date(2024, time.October, 24)))
}

func TestYearlySchedule_Validation(t *testing.T) {
	_, err := YearlyOnDate(time.Month(13), 1)
	assert.ErrorIs(t, err, ErrInvalidMonth)
	_, err = YearlyOnDate(time.May, 40)
	assert.ErrorIs(t, err, ErrInvalidMonthDay)
	_, err = YearlyOnNthWeekday(time.May, 7, time.Friday)
	assert.ErrorIs(t, err, ErrInvalidWeekOrd)
}

func TestOneTimeSchedule(t *testing.T) {
	s, err := NewOneTimeSchedule(date(2024, time.January, 1), true)
	require.NoError(t, err)

	assert.True(t, s.IsDueOn(date(2024, time.January, 1)))
	assert.False(t, s.IsDueOn(date(2024, time.January, 2)))
	// Overdue days stay not-due; only rollover moves the date itself.
	assert.False(t, s.IsDueOn(date(2024, time.January, 5)))
}

func TestOneTimeSchedule_ZeroDate(t *testing.T) {
	_, err := NewOneTimeSchedule(time.Time{}, false)
	assert.ErrorIs(t, err, ErrZeroScheduleDate)
}

func TestWeekdaySet_BitLayout(t *testing.T) {
	// Monday = bit 0 through Sunday = bit 6; persisted layout.
	assert.Equal(t, WeekdaySet(1), NewWeekdaySet(time.Monday))
	assert.Equal(t, WeekdaySet(1<<4), NewWeekdaySet(time.Friday))
	assert.Equal(t, WeekdaySet(1<<6), NewWeekdaySet(time.Sunday))
	assert.Equal(t, WeekdaySet(21), NewWeekdaySet(time.Monday, time.Wednesday, time.Friday))
}

func TestWeekdaySet_DaysRoundTrip(t *testing.T) {
	s := NewWeekdaySet(time.Sunday, time.Tuesday)
	assert.Equal(t, []time.Weekday{time.Tuesday, time.Sunday}, s.Days())
	assert.True(t, s.Contains(time.Sunday))
	assert.False(t, s.Contains(time.Monday))
	assert.False(t, s.IsEmpty())
	assert.True(t, WeekdaySet(0).IsEmpty())
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		in   time.Time
		want time.Time
	}{
		{date(2024, time.January, 1), date(2024, time.January, 1)},  // Monday
		{date(2024, time.January, 3), date(2024, time.January, 1)},  // Wednesday
		{date(2024, time.January, 7), date(2024, time.January, 1)},  // Sunday
		{date(2024, time.January, 8), date(2024, time.January, 8)},  // next Monday
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, StartOfWeek(tc.in))
	}
}

func TestNormalizeDay(t *testing.T) {
	loc := time.FixedZone("X", 3*3600)
	in := time.Date(2024, time.May, 6, 23, 45, 12, 0, loc)
	got := NormalizeDay(in)

	assert.Equal(t, date(2024, time.May, 6), got)
	assert.Equal(t, time.UTC, got.Location())
}
