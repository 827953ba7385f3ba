package domain

import (
	"context"
	"time"
)

// TaskRepository persists task definitions.
type TaskRepository interface {
	// Save inserts or updates a task. On first insert the task's id is
	// assigned from storage.
	Save(ctx context.Context, task *Task) error
	// FindByID returns nil, nil when the task does not exist.
	FindByID(ctx context.Context, id int64) (*Task, error)
	FindAll(ctx context.Context) ([]*Task, error)
	// FindActive returns non-archived tasks.
	FindActive(ctx context.Context) ([]*Task, error)
	// FindActiveRecurring returns non-archived tasks with a recurring
	// (non one-time) schedule, for weekly materialization.
	FindActiveRecurring(ctx context.Context) ([]*Task, error)
	// FindRolloverCandidates returns active one-time tasks with auto-rollover
	// set whose scheduled date is before today.
	FindRolloverCandidates(ctx context.Context, today time.Time) ([]*Task, error)
	// FindSystemTask looks up a seeded wellness task by name and input type.
	// Returns nil, nil when absent.
	FindSystemTask(ctx context.Context, name string, input InputType) (*Task, error)
	// Delete hard-deletes a task; its completion rows go with it via cascade.
	Delete(ctx context.Context, id int64) error
}

// CompletionRepository is the append-mostly completion ledger.
type CompletionRepository interface {
	// Get returns nil, nil when no row exists for the (task, date) pair.
	Get(ctx context.Context, taskID int64, date time.Time) (*Completion, error)
	// RangeByDate returns all rows in the inclusive date range, any task.
	RangeByDate(ctx context.Context, start, end time.Time) ([]*Completion, error)
	// RangeByTask returns all rows for a task, oldest first.
	RangeByTask(ctx context.Context, taskID int64) ([]*Completion, error)
	// UpsertPlaceholder creates an uncompleted row only if absent.
	UpsertPlaceholder(ctx context.Context, taskID int64, date time.Time) error
	// Save inserts or updates a row.
	Save(ctx context.Context, completion *Completion) error
	// ClosestNumeric returns the row with a numeric payload whose date is
	// nearest to target. Ties resolve to the earlier date. nil, nil on none.
	ClosestNumeric(ctx context.Context, taskID int64, target time.Time) (*Completion, error)
}

// MarkerStore is the small persisted key-value store holding the
// last-materialized-week and last-rollover-date markers.
type MarkerStore interface {
	// Get returns "" when the key is absent.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
