package commands

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jdcannonchess/trackfire/internal/tracker/application/services"
	"github.com/jdcannonchess/trackfire/internal/tracker/domain"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestUpdateTask_PartialUpdate(t *testing.T) {
	tasks := &mockTaskRepo{}
	ledger := &mockLedger{}
	handler := NewUpdateTaskHandler(tasks, services.NewMaterializer(tasks, ledger, testLogger()))

	task := rehydrate(1, "Stretch", domain.InputCheckbox, nil)
	tasks.On("FindByID", mock.Anything, int64(1)).Return(task, nil)
	tasks.On("Save", mock.Anything, task).Return(nil)

	err := handler.Handle(context.Background(), UpdateTaskCommand{
		TaskID:        1,
		Name:          strPtr("Morning stretch"),
		Category:      strPtr("mind"),
		ScheduledHour: intPtr(7),
	})
	require.NoError(t, err)
	assert.Equal(t, "Morning stretch", task.Name())
	assert.Equal(t, domain.CategoryMind, task.Category())
	require.NotNil(t, task.ScheduledHour())
	assert.Equal(t, 7, *task.ScheduledHour())
	// No schedule change, no re-materialization.
	ledger.AssertNotCalled(t, "UpsertPlaceholder", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateTask_ScheduleChangeRematerializes(t *testing.T) {
	tasks := &mockTaskRepo{}
	ledger := &mockLedger{}
	handler := NewUpdateTaskHandler(tasks, services.NewMaterializer(tasks, ledger, testLogger()))
	handler.now = func() time.Time {
		return time.Date(2024, time.January, 5, 12, 0, 0, 0, time.UTC) // Friday
	}

	task := rehydrate(1, "Gym", domain.InputCheckbox, nil)
	tasks.On("FindByID", mock.Anything, int64(1)).Return(task, nil)
	tasks.On("Save", mock.Anything, task).Return(nil)
	// New mask hits Friday and Saturday in the remaining window.
	ledger.On("UpsertPlaceholder", mock.Anything, int64(1),
		time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)).Return(nil)
	ledger.On("UpsertPlaceholder", mock.Anything, int64(1),
		time.Date(2024, time.January, 6, 0, 0, 0, 0, time.UTC)).Return(nil)

	err := handler.Handle(context.Background(), UpdateTaskCommand{
		TaskID:   1,
		Schedule: domain.NewWeeklySchedule(domain.NewWeekdaySet(time.Friday, time.Saturday)),
	})
	require.NoError(t, err)
	ledger.AssertExpectations(t)
}

func TestUpdateTask_ClearScheduledHour(t *testing.T) {
	tasks := &mockTaskRepo{}
	handler := NewUpdateTaskHandler(tasks, services.NewMaterializer(tasks, &mockLedger{}, testLogger()))

	task := rehydrate(1, "Gym", domain.InputCheckbox, nil)
	require.NoError(t, task.SetScheduledHour(intPtr(18)))
	tasks.On("FindByID", mock.Anything, int64(1)).Return(task, nil)
	tasks.On("Save", mock.Anything, task).Return(nil)

	err := handler.Handle(context.Background(), UpdateTaskCommand{TaskID: 1, ClearScheduleHour: true})
	require.NoError(t, err)
	assert.Nil(t, task.ScheduledHour())
}

func TestUpdateTask_RenameSystemTaskRejected(t *testing.T) {
	tasks := &mockTaskRepo{}
	handler := NewUpdateTaskHandler(tasks, services.NewMaterializer(tasks, &mockLedger{}, testLogger()))

	task := rehydrate(1, domain.WellnessTaskMood, domain.InputStars, domain.StarsConfig{Count: 5})
	task.MarkSystem()
	tasks.On("FindByID", mock.Anything, int64(1)).Return(task, nil)

	err := handler.Handle(context.Background(), UpdateTaskCommand{TaskID: 1, Name: strPtr("Vibes")})
	assert.ErrorIs(t, err, domain.ErrTaskSystem)
	tasks.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUpdateTask_MissingTask(t *testing.T) {
	tasks := &mockTaskRepo{}
	handler := NewUpdateTaskHandler(tasks, services.NewMaterializer(tasks, &mockLedger{}, testLogger()))

	tasks.On("FindByID", mock.Anything, int64(42)).Return(nil, nil)

	err := handler.Handle(context.Background(), UpdateTaskCommand{TaskID: 42, Name: strPtr("x")})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestArchiveTask_ArchiveAndRestore(t *testing.T) {
	tasks := &mockTaskRepo{}
	handler := NewArchiveTaskHandler(tasks)

	task := rehydrate(1, "Gym", domain.InputCheckbox, nil)
	tasks.On("FindByID", mock.Anything, int64(1)).Return(task, nil)
	tasks.On("Save", mock.Anything, task).Return(nil)

	require.NoError(t, handler.Handle(context.Background(), ArchiveTaskCommand{TaskID: 1}))
	assert.False(t, task.IsActive())

	require.NoError(t, handler.Handle(context.Background(), ArchiveTaskCommand{TaskID: 1, Restore: true}))
	assert.True(t, task.IsActive())
}

func TestDeleteTask_MissingTask(t *testing.T) {
	tasks := &mockTaskRepo{}
	handler := NewDeleteTaskHandler(tasks)

	tasks.On("FindByID", mock.Anything, int64(9)).Return(nil, nil)

	err := handler.Handle(context.Background(), DeleteTaskCommand{TaskID: 9})
	assert.ErrorIs(t, err, ErrTaskNotFound)
	tasks.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteTask_Deletes(t *testing.T) {
	tasks := &mockTaskRepo{}
	handler := NewDeleteTaskHandler(tasks)

	tasks.On("FindByID", mock.Anything, int64(1)).Return(rehydrate(1, "Gym", domain.InputCheckbox, nil), nil)
	tasks.On("Delete", mock.Anything, int64(1)).Return(nil)

	require.NoError(t, handler.Handle(context.Background(), DeleteTaskCommand{TaskID: 1}))
	tasks.AssertExpectations(t)
}
