package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jdcannonchess/trackfire/internal/tracker/domain"
)

func TestRecordNumeric_SliderBounds(t *testing.T) {
	tasks := &mockTaskRepo{}
	ledger := &mockLedger{}
	handler := NewRecordNumericHandler(tasks, ledger)

	task := rehydrate(1, "Energy", domain.InputSlider, domain.SliderConfig{Min: 0, Max: 10})
	tasks.On("FindByID", mock.Anything, int64(1)).Return(task, nil)
	ledger.On("Get", mock.Anything, int64(1), testDay).Return(domain.NewPlaceholder(1, testDay), nil)
	ledger.On("Save", mock.Anything, mock.AnythingOfType("*domain.Completion")).Return(nil)

	err := handler.Handle(context.Background(), RecordNumericCommand{TaskID: 1, Date: testDay, Value: 7})
	require.NoError(t, err)

	err = handler.Handle(context.Background(), RecordNumericCommand{TaskID: 1, Date: testDay, Value: 11})
	assert.ErrorIs(t, err, ErrValueOutOfRange)

	err = handler.Handle(context.Background(), RecordNumericCommand{TaskID: 1, Date: testDay, Value: -0.5})
	assert.ErrorIs(t, err, ErrValueOutOfRange)
}

func TestRecordNumeric_IntegerOnlyNumber(t *testing.T) {
	tasks := &mockTaskRepo{}
	ledger := &mockLedger{}
	handler := NewRecordNumericHandler(tasks, ledger)

	task := rehydrate(1, "Steps", domain.InputNumber, domain.NumberConfig{Suffix: "steps", Integer: true})
	tasks.On("FindByID", mock.Anything, int64(1)).Return(task, nil)
	ledger.On("Get", mock.Anything, int64(1), testDay).Return(domain.NewPlaceholder(1, testDay), nil)
	ledger.On("Save", mock.Anything, mock.AnythingOfType("*domain.Completion")).Return(nil)

	require.NoError(t, handler.Handle(context.Background(),
		RecordNumericCommand{TaskID: 1, Date: testDay, Value: 9500}))

	err := handler.Handle(context.Background(), RecordNumericCommand{TaskID: 1, Date: testDay, Value: 9500.5})
	assert.ErrorIs(t, err, ErrValueOutOfRange)
}

func TestRecordNumeric_RejectsNonNumericTask(t *testing.T) {
	tasks := &mockTaskRepo{}
	ledger := &mockLedger{}
	handler := NewRecordNumericHandler(tasks, ledger)

	task := rehydrate(1, "Stretch", domain.InputCheckbox, domain.CheckboxConfig{})
	tasks.On("FindByID", mock.Anything, int64(1)).Return(task, nil)
	ledger.On("Get", mock.Anything, int64(1), testDay).Return(domain.NewPlaceholder(1, testDay), nil)

	err := handler.Handle(context.Background(), RecordNumericCommand{TaskID: 1, Date: testDay, Value: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	ledger.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestRecordStars_RangeAndSave(t *testing.T) {
	tasks := &mockTaskRepo{}
	ledger := &mockLedger{}
	handler := NewRecordStarsHandler(tasks, ledger)

	task := rehydrate(1, "Mood", domain.InputStars, domain.StarsConfig{Count: 5})
	tasks.On("FindByID", mock.Anything, int64(1)).Return(task, nil)
	ledger.On("Get", mock.Anything, int64(1), testDay).Return(domain.NewPlaceholder(1, testDay), nil)
	ledger.On("Save", mock.Anything, mock.AnythingOfType("*domain.Completion")).Return(nil)

	require.NoError(t, handler.Handle(context.Background(),
		RecordStarsCommand{TaskID: 1, Date: testDay, Stars: 4}))

	err := handler.Handle(context.Background(), RecordStarsCommand{TaskID: 1, Date: testDay, Stars: 6})
	assert.ErrorIs(t, err, domain.ErrStarsOutOfRange)

	err = handler.Handle(context.Background(), RecordStarsCommand{TaskID: 1, Date: testDay, Stars: 0})
	assert.ErrorIs(t, err, domain.ErrStarsOutOfRange)
}
