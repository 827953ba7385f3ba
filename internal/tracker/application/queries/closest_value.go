package queries

import (
	"context"
	"time"

	"github.com/jdcannonchess/trackfire/internal/tracker/domain"
)

// ValueAtDTO is a numeric payload together with the date it was recorded.
type ValueAtDTO struct {
	Date  time.Time
	Value float64
}

// ClosestValueQuery finds the numeric entry nearest a target date. The
// progress-photo view uses it to caption a photo with the weight of record.
type ClosestValueQuery struct {
	TaskID int64
	Target time.Time
}

// ClosestValueHandler handles the ClosestValueQuery.
type ClosestValueHandler struct {
	tasks  domain.TaskRepository
	ledger domain.CompletionRepository
}

// NewClosestValueHandler creates a new ClosestValueHandler.
func NewClosestValueHandler(tasks domain.TaskRepository, ledger domain.CompletionRepository) *ClosestValueHandler {
	return &ClosestValueHandler{tasks: tasks, ledger: ledger}
}

// Handle returns nil when the task has no numeric entries. Ties between two
// equally distant dates resolve to the earlier one.
func (h *ClosestValueHandler) Handle(ctx context.Context, query ClosestValueQuery) (*ValueAtDTO, error) {
	row, err := h.ledger.ClosestNumeric(ctx, query.TaskID, domain.NormalizeDay(query.Target))
	if err != nil {
		return nil, err
	}
	if row == nil || row.Numeric == nil {
		return nil, nil
	}
	return &ValueAtDTO{Date: row.Date, Value: *row.Numeric}, nil
}

// ClosestWeight resolves the seeded weight task and finds its entry nearest
// the target date. Nil when the task is gone or has no entries.
func (h *ClosestValueHandler) ClosestWeight(ctx context.Context, target time.Time) (*ValueAtDTO, error) {
	task, err := h.tasks.FindSystemTask(ctx, domain.WellnessTaskWeight, domain.InputNumber)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, nil
	}
	return h.Handle(ctx, ClosestValueQuery{TaskID: task.ID(), Target: target})
}
