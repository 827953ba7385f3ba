// Package services derives weekly snapshots from the completion ledger.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jdcannonchess/trackfire/internal/insights/domain"
	tracker "github.com/jdcannonchess/trackfire/internal/tracker/domain"
)

// SnapshotGenerator aggregates one week of ledger rows into a persisted
// WeeklySnapshot. Snapshots are derived cache data: regeneration always
// recomputes from the ledger and replaces the stored row.
type SnapshotGenerator struct {
	snapshots domain.Repository
	tasks     tracker.TaskRepository
	ledger    tracker.CompletionRepository
	logger    *slog.Logger
	now       func() time.Time
}

// NewSnapshotGenerator creates a generator backed by the given repositories.
func NewSnapshotGenerator(
	snapshots domain.Repository,
	tasks tracker.TaskRepository,
	ledger tracker.CompletionRepository,
	logger *slog.Logger,
) *SnapshotGenerator {
	return &SnapshotGenerator{
		snapshots: snapshots,
		tasks:     tasks,
		ledger:    ledger,
		logger:    logger,
		now:       time.Now,
	}
}

// Generate computes the snapshot for the week containing weekStart, persists
// it with insert-or-replace semantics, and returns it.
func (g *SnapshotGenerator) Generate(ctx context.Context, weekStart time.Time) (*domain.WeeklySnapshot, error) {
	weekStart = tracker.StartOfWeek(weekStart)
	weekEnd := weekStart.AddDate(0, 0, 6)

	rows, err := g.ledger.RangeByDate(ctx, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("load ledger rows: %w", err)
	}

	completed, total := domain.CountCompletions(rows)
	perfect := domain.PerfectDays(rows)

	snapshot := &domain.WeeklySnapshot{
		WeekStart:      weekStart,
		TotalTasks:     total,
		TasksCompleted: completed,
		PerfectDays:    len(perfect),
		LongestStreak:  domain.LongestStreak(perfect),
		GeneratedAt:    g.now().UTC(),
	}

	if err := g.fillWellnessStats(ctx, snapshot, rows); err != nil {
		return nil, err
	}

	rate := snapshot.CompletionRate()
	snapshot.Grade = domain.GradeFor(rate)
	snapshot.Highlights = domain.BuildHighlights(rate, snapshot.PerfectDays, snapshot.AvgSleepHours, snapshot.AvgMood)

	if err := g.snapshots.Save(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("save snapshot: %w", err)
	}

	g.logger.Info("weekly snapshot generated",
		"week_start", weekStart.Format("2006-01-02"),
		"completed", completed,
		"total", total,
		"grade", snapshot.Grade,
	)
	return snapshot, nil
}

// Ensure returns the stored snapshot for the week, generating it first when
// absent. Existing snapshots are never recomputed here.
func (g *SnapshotGenerator) Ensure(ctx context.Context, weekStart time.Time) error {
	weekStart = tracker.StartOfWeek(weekStart)

	existing, err := g.snapshots.GetByWeek(ctx, weekStart)
	if err != nil {
		return fmt.Errorf("check existing snapshot: %w", err)
	}
	if existing != nil {
		return nil
	}

	_, err = g.Generate(ctx, weekStart)
	return err
}

// GetOrGenerate is the read path for presentation code: the cached snapshot
// when present, a freshly generated one otherwise.
func (g *SnapshotGenerator) GetOrGenerate(ctx context.Context, weekStart time.Time) (*domain.WeeklySnapshot, error) {
	weekStart = tracker.StartOfWeek(weekStart)

	existing, err := g.snapshots.GetByWeek(ctx, weekStart)
	if err != nil {
		return nil, fmt.Errorf("check existing snapshot: %w", err)
	}
	if existing != nil {
		return existing, nil
	}
	return g.Generate(ctx, weekStart)
}

// fillWellnessStats resolves each well-known wellness task by name and input
// type, then folds that task's payloads out of the already loaded week rows.
// A missing task, or a task with no payloads that week, leaves its stat nil.
func (g *SnapshotGenerator) fillWellnessStats(ctx context.Context, s *domain.WeeklySnapshot, rows []*tracker.Completion) error {
	byTask := make(map[int64][]*tracker.Completion)
	for _, row := range rows {
		byTask[row.TaskID] = append(byTask[row.TaskID], row)
	}

	rowsFor := func(name string, input tracker.InputType) ([]*tracker.Completion, error) {
		task, err := g.tasks.FindSystemTask(ctx, name, input)
		if err != nil {
			return nil, fmt.Errorf("look up wellness task %q: %w", name, err)
		}
		if task == nil {
			return nil, nil
		}
		return byTask[task.ID()], nil
	}

	moodRows, err := rowsFor(tracker.WellnessTaskMood, tracker.InputStars)
	if err != nil {
		return err
	}
	s.AvgMood = averageStars(moodRows)

	sleepRows, err := rowsFor(tracker.WellnessTaskSleepHours, tracker.InputNumber)
	if err != nil {
		return err
	}
	s.AvgSleepHours = averageNumeric(sleepRows)

	qualityRows, err := rowsFor(tracker.WellnessTaskSleepQuality, tracker.InputStars)
	if err != nil {
		return err
	}
	s.AvgSleepQuality = averageStars(qualityRows)

	weightRows, err := rowsFor(tracker.WellnessTaskWeight, tracker.InputNumber)
	if err != nil {
		return err
	}
	s.AvgWeight = averageNumeric(weightRows)

	stepRows, err := rowsFor(tracker.WellnessTaskSteps, tracker.InputNumber)
	if err != nil {
		return err
	}
	s.TotalSteps = sumNumeric(stepRows)

	return nil
}

func averageNumeric(rows []*tracker.Completion) *float64 {
	var sum float64
	var n int
	for _, row := range rows {
		if row.Numeric != nil {
			sum += *row.Numeric
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := sum / float64(n)
	return &avg
}

func averageStars(rows []*tracker.Completion) *float64 {
	var sum float64
	var n int
	for _, row := range rows {
		if row.Stars != nil {
			sum += float64(*row.Stars)
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := sum / float64(n)
	return &avg
}

func sumNumeric(rows []*tracker.Completion) *int {
	var sum float64
	var n int
	for _, row := range rows {
		if row.Numeric != nil {
			sum += *row.Numeric
			n++
		}
	}
	if n == 0 {
		return nil
	}
	total := int(sum)
	return &total
}
