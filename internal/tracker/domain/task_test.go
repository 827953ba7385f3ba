package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTask(t *testing.T) *Task {
	t.Helper()
	task, err := NewTask("Stretch", CategoryBody, InputCheckbox, nil,
		NewWeeklySchedule(AllWeekdays))
	require.NoError(t, err)
	return task
}

func TestNewTask(t *testing.T) {
	task := newTestTask(t)

	assert.Equal(t, int64(0), task.ID())
	assert.Equal(t, "Stretch", task.Name())
	assert.Equal(t, CategoryBody, task.Category())
	assert.Equal(t, InputCheckbox, task.InputType())
	assert.IsType(t, CheckboxConfig{}, task.InputConfig())
	assert.True(t, task.IsActive())
	assert.False(t, task.IsHidden())
	assert.False(t, task.IsSystem())
}

func TestNewTask_EmptyName(t *testing.T) {
	tests := []string{"", "   ", "\t\n"}
	for _, name := range tests {
		_, err := NewTask(name, CategoryBody, InputCheckbox, nil, NewWeeklySchedule(AllWeekdays))
		assert.ErrorIs(t, err, ErrTaskEmptyName)
	}
}

func TestNewTask_NilSchedule(t *testing.T) {
	_, err := NewTask("X", CategoryBody, InputCheckbox, nil, nil)
	assert.ErrorIs(t, err, ErrNilSchedule)
}

func TestNewTask_InvalidEnums(t *testing.T) {
	_, err := NewTask("X", Category("nope"), InputCheckbox, nil, NewWeeklySchedule(AllWeekdays))
	assert.ErrorIs(t, err, ErrInvalidCategory)

	_, err = NewTask("X", CategoryBody, InputType("nope"), nil, NewWeeklySchedule(AllWeekdays))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTask_SetID_OnlyOnce(t *testing.T) {
	task := newTestTask(t)
	task.SetID(7)
	task.SetID(9)
	assert.Equal(t, int64(7), task.ID())
}

func TestTask_Archive(t *testing.T) {
	task := newTestTask(t)
	task.Archive()

	assert.False(t, task.IsActive())
	assert.False(t, task.IsDueOn(date(2024, time.January, 1)))
	assert.ErrorIs(t, task.SetName("New"), ErrTaskArchived)

	task.Restore()
	assert.True(t, task.IsActive())
	assert.True(t, task.IsDueOn(date(2024, time.January, 1)))
}

func TestTask_SystemRestrictions(t *testing.T) {
	task := newTestTask(t)
	task.MarkSystem()

	assert.ErrorIs(t, task.SetName("Renamed"), ErrTaskSystem)
	// Hiding and schedule changes stay allowed for system tasks.
	task.SetHidden(true)
	assert.True(t, task.IsHidden())
	require.NoError(t, task.SetSchedule(NewWeeklySchedule(NewWeekdaySet(time.Monday))))
}

func TestTask_SetScheduledHour(t *testing.T) {
	task := newTestTask(t)

	h := 9
	require.NoError(t, task.SetScheduledHour(&h))
	require.NotNil(t, task.ScheduledHour())
	assert.Equal(t, 9, *task.ScheduledHour())

	bad := 24
	assert.ErrorIs(t, task.SetScheduledHour(&bad), ErrInvalidHour)

	require.NoError(t, task.SetScheduledHour(nil))
	assert.Nil(t, task.ScheduledHour())
}

func TestTask_RescheduleOneTime(t *testing.T) {
	s, err := NewOneTimeSchedule(date(2024, time.January, 1), true)
	require.NoError(t, err)
	task, err := NewTask("Dentist", CategoryOther, InputCheckbox, nil, s)
	require.NoError(t, err)

	require.NoError(t, task.RescheduleOneTime(date(2024, time.January, 5)))

	moved, ok := task.OneTime()
	require.True(t, ok)
	assert.Equal(t, date(2024, time.January, 5), moved.Date)
	assert.True(t, moved.AutoRollover)
	assert.True(t, task.IsDueOn(date(2024, time.January, 5)))
	assert.False(t, task.IsDueOn(date(2024, time.January, 1)))
}

func TestTask_RescheduleOneTime_WrongType(t *testing.T) {
	task := newTestTask(t)
	assert.ErrorIs(t, task.RescheduleOneTime(date(2024, time.January, 5)), ErrNotOneTime)
}

func TestParseCategory_UnknownFallsBack(t *testing.T) {
	assert.Equal(t, CategoryMind, ParseCategory("mind"))
	assert.Equal(t, CategoryOther, ParseCategory("fitness"))
	assert.Equal(t, CategoryOther, ParseCategory(""))
}

func TestParseInputType_UnknownFallsBack(t *testing.T) {
	assert.Equal(t, InputStars, ParseInputType("stars"))
	assert.Equal(t, InputCheckbox, ParseInputType("dial"))
	assert.Equal(t, InputCheckbox, ParseInputType(""))
}
