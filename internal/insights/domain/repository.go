package domain

import (
	"context"
	"time"
)

// Repository persists weekly snapshots, keyed by week-start date.
type Repository interface {
	// Save inserts or replaces the snapshot for its week.
	Save(ctx context.Context, snapshot *WeeklySnapshot) error
	// GetByWeek returns nil, nil when no snapshot exists for the week.
	GetByWeek(ctx context.Context, weekStart time.Time) (*WeeklySnapshot, error)
	// GetRecent returns the most recent snapshots, newest first.
	GetRecent(ctx context.Context, limit int) ([]*WeeklySnapshot, error)
}
