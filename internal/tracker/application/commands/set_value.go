package commands

import (
	"context"
	"math"
	"time"

	"github.com/jdcannonchess/trackfire/internal/tracker/domain"
)

// RecordNumericCommand records a numeric value (slider or number input) on
// a ledger row. Recording a value completes the row if it was not already.
type RecordNumericCommand struct {
	TaskID int64
	Date   time.Time
	Value  float64
}

// RecordNumericHandler handles the RecordNumericCommand.
type RecordNumericHandler struct {
	tasks  domain.TaskRepository
	ledger domain.CompletionRepository
	now    func() time.Time
}

// NewRecordNumericHandler creates a new RecordNumericHandler.
func NewRecordNumericHandler(tasks domain.TaskRepository, ledger domain.CompletionRepository) *RecordNumericHandler {
	return &RecordNumericHandler{
		tasks:  tasks,
		ledger: ledger,
		now:    time.Now,
	}
}

// Handle validates the value against the task's input config and saves it.
func (h *RecordNumericHandler) Handle(ctx context.Context, cmd RecordNumericCommand) error {
	task, row, err := loadTaskAndRow(ctx, h.tasks, h.ledger, cmd.TaskID, cmd.Date)
	if err != nil {
		return err
	}

	switch cfg := task.InputConfig().(type) {
	case domain.SliderConfig:
		if cmd.Value < cfg.Min || cmd.Value > cfg.Max {
			return ErrValueOutOfRange
		}
	case domain.NumberConfig:
		if cfg.Integer && cmd.Value != math.Trunc(cmd.Value) {
			return ErrValueOutOfRange
		}
	default:
		return domain.ErrInvalidInput
	}

	row.SetNumeric(cmd.Value, h.now().UTC())
	return h.ledger.Save(ctx, row)
}

// RecordStarsCommand records a star rating on a ledger row.
type RecordStarsCommand struct {
	TaskID int64
	Date   time.Time
	Stars  int
}

// RecordStarsHandler handles the RecordStarsCommand.
type RecordStarsHandler struct {
	tasks  domain.TaskRepository
	ledger domain.CompletionRepository
	now    func() time.Time
}

// NewRecordStarsHandler creates a new RecordStarsHandler.
func NewRecordStarsHandler(tasks domain.TaskRepository, ledger domain.CompletionRepository) *RecordStarsHandler {
	return &RecordStarsHandler{
		tasks:  tasks,
		ledger: ledger,
		now:    time.Now,
	}
}

// Handle validates the rating against the star count and saves it.
func (h *RecordStarsHandler) Handle(ctx context.Context, cmd RecordStarsCommand) error {
	task, row, err := loadTaskAndRow(ctx, h.tasks, h.ledger, cmd.TaskID, cmd.Date)
	if err != nil {
		return err
	}

	cfg, ok := task.InputConfig().(domain.StarsConfig)
	if !ok {
		return domain.ErrInvalidInput
	}
	if cmd.Stars < 1 || cmd.Stars > cfg.Count {
		return domain.ErrStarsOutOfRange
	}

	row.SetStars(cmd.Stars, h.now().UTC())
	return h.ledger.Save(ctx, row)
}
