// Package services holds the scheduling engine: weekly materialization,
// one-time rollover, seeding, and the startup orchestration tying them
// together.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jdcannonchess/trackfire/internal/tracker/domain"
)

// Materializer ensures a ledger row exists for every (task, date) pair that
// is due in a week. Placeholder inserts are no-ops when the row already
// exists, so re-running a week changes nothing.
type Materializer struct {
	tasks  domain.TaskRepository
	ledger domain.CompletionRepository
	logger *slog.Logger
}

// NewMaterializer creates a new Materializer.
func NewMaterializer(tasks domain.TaskRepository, ledger domain.CompletionRepository, logger *slog.Logger) *Materializer {
	return &Materializer{tasks: tasks, ledger: ledger, logger: logger}
}

// MaterializeWeek walks all active recurring tasks over the seven dates of
// the week starting at weekStart and inserts missing placeholder rows.
func (m *Materializer) MaterializeWeek(ctx context.Context, weekStart time.Time) error {
	weekStart = domain.StartOfWeek(weekStart)

	tasks, err := m.tasks.FindActiveRecurring(ctx)
	if err != nil {
		return fmt.Errorf("load recurring tasks: %w", err)
	}

	created := 0
	for offset := 0; offset < 7; offset++ {
		day := weekStart.AddDate(0, 0, offset)
		for _, task := range tasks {
			if !task.IsDueOn(day) {
				continue
			}
			if err := m.ledger.UpsertPlaceholder(ctx, task.ID(), day); err != nil {
				return fmt.Errorf("materialize task %d on %s: %w", task.ID(), day.Format("2006-01-02"), err)
			}
			created++
		}
	}

	m.logger.Debug("week materialized",
		"week_start", weekStart.Format("2006-01-02"),
		"tasks", len(tasks),
		"due_slots", created,
	)
	return nil
}

// MaterializeTaskFrom inserts placeholder rows for a single task over the
// dates from `from` to the end of its week. Used right after task creation:
// a new task must not grow rows for days already past.
func (m *Materializer) MaterializeTaskFrom(ctx context.Context, task *domain.Task, from time.Time) error {
	if task.IsOneTime() {
		return nil
	}

	from = domain.NormalizeDay(from)
	weekEnd := domain.StartOfWeek(from).AddDate(0, 0, 6)

	for day := from; !day.After(weekEnd); day = day.AddDate(0, 0, 1) {
		if !task.IsDueOn(day) {
			continue
		}
		if err := m.ledger.UpsertPlaceholder(ctx, task.ID(), day); err != nil {
			return fmt.Errorf("materialize task %d on %s: %w", task.ID(), day.Format("2006-01-02"), err)
		}
	}
	return nil
}
