package commands

import (
	"context"
	"time"

	"github.com/jdcannonchess/trackfire/internal/tracker/domain"
)

// RecordBloodPressureCommand appends one reading to a ledger row. Multiple
// readings per day accumulate on the same row.
type RecordBloodPressureCommand struct {
	TaskID    int64
	Date      time.Time
	Systolic  int
	Diastolic int
	HeartRate int
}

// RecordBloodPressureResult reports the classification of the new reading.
type RecordBloodPressureResult struct {
	Category domain.BPCategory
}

// RecordBloodPressureHandler handles the RecordBloodPressureCommand.
type RecordBloodPressureHandler struct {
	tasks  domain.TaskRepository
	ledger domain.CompletionRepository
	now    func() time.Time
}

// NewRecordBloodPressureHandler creates a new RecordBloodPressureHandler.
func NewRecordBloodPressureHandler(tasks domain.TaskRepository, ledger domain.CompletionRepository) *RecordBloodPressureHandler {
	return &RecordBloodPressureHandler{
		tasks:  tasks,
		ledger: ledger,
		now:    time.Now,
	}
}

// Handle validates and appends the reading, completing the row if needed.
func (h *RecordBloodPressureHandler) Handle(ctx context.Context, cmd RecordBloodPressureCommand) (*RecordBloodPressureResult, error) {
	if cmd.Systolic <= 0 || cmd.Diastolic <= 0 || cmd.HeartRate < 0 {
		return nil, ErrValueOutOfRange
	}

	task, row, err := loadTaskAndRow(ctx, h.tasks, h.ledger, cmd.TaskID, cmd.Date)
	if err != nil {
		return nil, err
	}
	if task.InputType() != domain.InputBloodPressure {
		return nil, domain.ErrInvalidInput
	}

	at := h.now().UTC()
	reading := domain.BPReading{
		Systolic:  cmd.Systolic,
		Diastolic: cmd.Diastolic,
		HeartRate: cmd.HeartRate,
		TakenAt:   at,
	}
	row.AddReading(reading, at)

	if err := h.ledger.Save(ctx, row); err != nil {
		return nil, err
	}
	return &RecordBloodPressureResult{Category: reading.Classify()}, nil
}
