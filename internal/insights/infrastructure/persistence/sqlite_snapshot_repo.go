// Package persistence implements the insights repository on SQLite.
package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jdcannonchess/trackfire/internal/insights/domain"
)

const dateLayout = "2006-01-02"

const snapshotColumns = `week_start, total_tasks, tasks_completed, perfect_days, longest_streak,
	avg_mood, avg_sleep_hours, avg_sleep_quality, avg_weight, total_steps,
	grade, highlights, generated_at`

// SQLiteSnapshotRepository stores weekly snapshots keyed by week-start date.
type SQLiteSnapshotRepository struct {
	db *sql.DB
}

// NewSQLiteSnapshotRepository creates a new SQLite snapshot repository.
func NewSQLiteSnapshotRepository(db *sql.DB) *SQLiteSnapshotRepository {
	return &SQLiteSnapshotRepository{db: db}
}

// Save inserts or replaces the snapshot for its week.
func (r *SQLiteSnapshotRepository) Save(ctx context.Context, snapshot *domain.WeeklySnapshot) error {
	highlights, err := json.Marshal(snapshot.Highlights)
	if err != nil {
		return fmt.Errorf("encode highlights: %w", err)
	}

	query := `INSERT INTO weekly_snapshots (` + snapshotColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (week_start) DO UPDATE SET
			total_tasks = excluded.total_tasks,
			tasks_completed = excluded.tasks_completed,
			perfect_days = excluded.perfect_days,
			longest_streak = excluded.longest_streak,
			avg_mood = excluded.avg_mood,
			avg_sleep_hours = excluded.avg_sleep_hours,
			avg_sleep_quality = excluded.avg_sleep_quality,
			avg_weight = excluded.avg_weight,
			total_steps = excluded.total_steps,
			grade = excluded.grade,
			highlights = excluded.highlights,
			generated_at = excluded.generated_at`

	_, err = r.db.ExecContext(ctx, query,
		snapshot.WeekStart.Format(dateLayout),
		snapshot.TotalTasks,
		snapshot.TasksCompleted,
		snapshot.PerfectDays,
		snapshot.LongestStreak,
		toNullFloat(snapshot.AvgMood),
		toNullFloat(snapshot.AvgSleepHours),
		toNullFloat(snapshot.AvgSleepQuality),
		toNullFloat(snapshot.AvgWeight),
		toNullInt(snapshot.TotalSteps),
		snapshot.Grade,
		string(highlights),
		snapshot.GeneratedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// GetByWeek returns nil, nil when no snapshot exists for the week.
func (r *SQLiteSnapshotRepository) GetByWeek(ctx context.Context, weekStart time.Time) (*domain.WeeklySnapshot, error) {
	query := `SELECT ` + snapshotColumns + ` FROM weekly_snapshots WHERE week_start = ?`
	snapshot, err := scanSnapshot(r.db.QueryRowContext(ctx, query, weekStart.Format(dateLayout)))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	return snapshot, nil
}

// GetRecent returns the most recent snapshots, newest first.
func (r *SQLiteSnapshotRepository) GetRecent(ctx context.Context, limit int) ([]*domain.WeeklySnapshot, error) {
	query := `SELECT ` + snapshotColumns + ` FROM weekly_snapshots
		ORDER BY week_start DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []*domain.WeeklySnapshot
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}
	return snapshots, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (*domain.WeeklySnapshot, error) {
	var (
		weekStart   string
		generatedAt string
		highlights  string
		avgMood     sql.NullFloat64
		avgSleep    sql.NullFloat64
		avgQuality  sql.NullFloat64
		avgWeight   sql.NullFloat64
		totalSteps  sql.NullInt64
	)
	snapshot := &domain.WeeklySnapshot{}

	err := row.Scan(
		&weekStart,
		&snapshot.TotalTasks,
		&snapshot.TasksCompleted,
		&snapshot.PerfectDays,
		&snapshot.LongestStreak,
		&avgMood,
		&avgSleep,
		&avgQuality,
		&avgWeight,
		&totalSteps,
		&snapshot.Grade,
		&highlights,
		&generatedAt,
	)
	if err != nil {
		return nil, err
	}

	snapshot.WeekStart, err = time.ParseInLocation(dateLayout, weekStart, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("parse week start %q: %w", weekStart, err)
	}
	snapshot.GeneratedAt, err = time.Parse(time.RFC3339, generatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse generated_at %q: %w", generatedAt, err)
	}

	// A torn highlights payload is not worth failing the read for.
	if err := json.Unmarshal([]byte(highlights), &snapshot.Highlights); err != nil {
		snapshot.Highlights = nil
	}

	snapshot.AvgMood = fromNullFloat(avgMood)
	snapshot.AvgSleepHours = fromNullFloat(avgSleep)
	snapshot.AvgSleepQuality = fromNullFloat(avgQuality)
	snapshot.AvgWeight = fromNullFloat(avgWeight)
	snapshot.TotalSteps = fromNullInt(totalSteps)
	return snapshot, nil
}

func toNullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func fromNullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func toNullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func fromNullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}
