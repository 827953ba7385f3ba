package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jdcannonchess/trackfire/internal/tracker/domain"
)

// Rollover advances overdue one-time tasks with the auto-rollover flag to
// today. Tasks without the flag stay stuck on their original date and only
// surface in history views.
type Rollover struct {
	tasks  domain.TaskRepository
	ledger domain.CompletionRepository
	logger *slog.Logger
}

// NewRollover creates a new Rollover engine.
func NewRollover(tasks domain.TaskRepository, ledger domain.CompletionRepository, logger *slog.Logger) *Rollover {
	return &Rollover{tasks: tasks, ledger: ledger, logger: logger}
}

// Run rolls overdue, uncompleted one-time tasks forward to today and
// returns how many were moved.
func (r *Rollover) Run(ctx context.Context, today time.Time) (int, error) {
	today = domain.NormalizeDay(today)

	candidates, err := r.tasks.FindRolloverCandidates(ctx, today)
	if err != nil {
		return 0, fmt.Errorf("load rollover candidates: %w", err)
	}

	moved := 0
	for _, task := range candidates {
		schedule, ok := task.OneTime()
		if !ok {
			continue
		}

		// A completed row on the original date means the task was done
		// late but done; leave it where it is.
		row, err := r.ledger.Get(ctx, task.ID(), schedule.Date)
		if err != nil {
			return moved, fmt.Errorf("check completion for task %d: %w", task.ID(), err)
		}
		if row != nil && row.IsCompleted() {
			continue
		}

		if err := task.RescheduleOneTime(today); err != nil {
			return moved, err
		}
		if err := r.tasks.Save(ctx, task); err != nil {
			return moved, fmt.Errorf("save rolled task %d: %w", task.ID(), err)
		}
		moved++
	}

	if moved > 0 {
		r.logger.Info("rolled over one-time tasks",
			"count", moved,
			"today", today.Format("2006-01-02"),
		)
	}
	return moved, nil
}
