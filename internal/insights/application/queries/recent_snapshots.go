// Package queries contains the read-side handlers over stored snapshots.
package queries

import (
	"context"
	"time"

	"github.com/jdcannonchess/trackfire/internal/insights/domain"
)

// SnapshotDTO is a stored weekly rollup shaped for presentation.
type SnapshotDTO struct {
	WeekStart      time.Time
	TotalTasks     int
	TasksCompleted int
	CompletionRate float64
	PerfectDays    int
	LongestStreak  int

	AvgMood         *float64
	AvgSleepHours   *float64
	AvgSleepQuality *float64
	AvgWeight       *float64
	TotalSteps      *int

	Grade       string
	Highlights  []string
	GeneratedAt time.Time
}

// RecentSnapshotsQuery contains the parameters for listing snapshots.
type RecentSnapshotsQuery struct {
	Limit int
}

// RecentSnapshotsHandler handles the RecentSnapshotsQuery.
type RecentSnapshotsHandler struct {
	snapshots domain.Repository
}

// NewRecentSnapshotsHandler creates a new RecentSnapshotsHandler.
func NewRecentSnapshotsHandler(snapshots domain.Repository) *RecentSnapshotsHandler {
	return &RecentSnapshotsHandler{snapshots: snapshots}
}

// Handle returns stored snapshots, newest week first.
func (h *RecentSnapshotsHandler) Handle(ctx context.Context, query RecentSnapshotsQuery) ([]SnapshotDTO, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = 12
	}

	snapshots, err := h.snapshots.GetRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	dtos := make([]SnapshotDTO, len(snapshots))
	for i, s := range snapshots {
		dtos[i] = ToSnapshotDTO(s)
	}
	return dtos, nil
}

// ToSnapshotDTO shapes a snapshot for presentation.
func ToSnapshotDTO(s *domain.WeeklySnapshot) SnapshotDTO {
	return SnapshotDTO{
		WeekStart:       s.WeekStart,
		TotalTasks:      s.TotalTasks,
		TasksCompleted:  s.TasksCompleted,
		CompletionRate:  s.CompletionRate(),
		PerfectDays:     s.PerfectDays,
		LongestStreak:   s.LongestStreak,
		AvgMood:         s.AvgMood,
		AvgSleepHours:   s.AvgSleepHours,
		AvgSleepQuality: s.AvgSleepQuality,
		AvgWeight:       s.AvgWeight,
		TotalSteps:      s.TotalSteps,
		Grade:           s.Grade,
		Highlights:      s.Highlights,
		GeneratedAt:     s.GeneratedAt,
	}
}
