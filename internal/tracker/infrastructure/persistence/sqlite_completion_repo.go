package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jdcannonchess/trackfire/internal/tracker/domain"
)

const completionColumns = `id, task_id, date, completed_at,
		numeric_value, star_value, photo_uri, bp_readings`

// SQLiteCompletionRepository implements the completion ledger on SQLite.
type SQLiteCompletionRepository struct {
	db *sql.DB
}

// NewSQLiteCompletionRepository creates a new SQLite completion repository.
func NewSQLiteCompletionRepository(db *sql.DB) *SQLiteCompletionRepository {
	return &SQLiteCompletionRepository{db: db}
}

// Get returns the row for a (task, date) pair, or nil, nil when absent.
func (r *SQLiteCompletionRepository) Get(ctx context.Context, taskID int64, date time.Time) (*domain.Completion, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+completionColumns+` FROM completions WHERE task_id = ? AND date = ?`,
		taskID, domain.NormalizeDay(date).Format(dateLayout))
	return scanCompletion(row)
}

// RangeByDate returns all rows in the inclusive date range.
func (r *SQLiteCompletionRepository) RangeByDate(ctx context.Context, start, end time.Time) ([]*domain.Completion, error) {
	return r.queryCompletions(ctx,
		`SELECT `+completionColumns+` FROM completions
		 WHERE date >= ? AND date <= ?
		 ORDER BY date, task_id`,
		domain.NormalizeDay(start).Format(dateLayout),
		domain.NormalizeDay(end).Format(dateLayout))
}

// RangeByTask returns all rows for a task, oldest first.
func (r *SQLiteCompletionRepository) RangeByTask(ctx context.Context, taskID int64) ([]*domain.Completion, error) {
	return r.queryCompletions(ctx,
		`SELECT `+completionColumns+` FROM completions WHERE task_id = ? ORDER BY date`,
		taskID)
}

// UpsertPlaceholder creates an uncompleted row only if none exists. The
// unique (task_id, date) index makes the re-run a no-op, which keeps weekly
// materialization idempotent.
func (r *SQLiteCompletionRepository) UpsertPlaceholder(ctx context.Context, taskID int64, date time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO completions (task_id, date) VALUES (?, ?)
		 ON CONFLICT (task_id, date) DO NOTHING`,
		taskID, domain.NormalizeDay(date).Format(dateLayout))
	return err
}

// Save inserts or updates a row.
func (r *SQLiteCompletionRepository) Save(ctx context.Context, c *domain.Completion) error {
	readings, err := encodeReadings(c.Readings)
	if err != nil {
		return err
	}

	if c.ID == 0 {
		query := `
			INSERT INTO completions (task_id, date, completed_at, numeric_value, star_value, photo_uri, bp_readings)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (task_id, date) DO UPDATE SET
				completed_at = excluded.completed_at,
				numeric_value = excluded.numeric_value,
				star_value = excluded.star_value,
				photo_uri = excluded.photo_uri,
				bp_readings = excluded.bp_readings
		`
		result, err := r.db.ExecContext(ctx, query,
			c.TaskID,
			c.Date.Format(dateLayout),
			toNullTime(c.CompletedAt),
			toNullFloat(c.Numeric),
			toNullInt(c.Stars),
			toNullString(c.PhotoURI),
			readings,
		)
		if err != nil {
			return err
		}
		if id, err := result.LastInsertId(); err == nil {
			c.ID = id
		}
		return nil
	}

	query := `
		UPDATE completions SET
			completed_at = ?, numeric_value = ?, star_value = ?, photo_uri = ?, bp_readings = ?
		WHERE id = ?
	`
	_, err = r.db.ExecContext(ctx, query,
		toNullTime(c.CompletedAt),
		toNullFloat(c.Numeric),
		toNullInt(c.Stars),
		toNullString(c.PhotoURI),
		readings,
		c.ID,
	)
	return err
}

// ClosestNumeric returns the numeric-payload row nearest to the target date.
// Ties resolve to the earlier date.
func (r *SQLiteCompletionRepository) ClosestNumeric(ctx context.Context, taskID int64, target time.Time) (*domain.Completion, error) {
	query := `
		SELECT ` + completionColumns + ` FROM completions
		WHERE task_id = ? AND numeric_value IS NOT NULL
		ORDER BY ABS(julianday(date) - julianday(?)), date
		LIMIT 1
	`
	row := r.db.QueryRowContext(ctx, query,
		taskID, domain.NormalizeDay(target).Format(dateLayout))
	return scanCompletion(row)
}

func (r *SQLiteCompletionRepository) queryCompletions(ctx context.Context, query string, args ...any) ([]*domain.Completion, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var completions []*domain.Completion
	for rows.Next() {
		c, err := scanCompletionRow(rows)
		if err != nil {
			return nil, err
		}
		completions = append(completions, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return completions, nil
}

func scanCompletion(row *sql.Row) (*domain.Completion, error) {
	c, err := scanCompletionRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func scanCompletionRow(scanner rowScanner) (*domain.Completion, error) {
	var (
		c            domain.Completion
		dateStr      string
		completedAt  sql.NullString
		numericValue sql.NullFloat64
		starValue    sql.NullInt64
		photoURI     sql.NullString
		readings     sql.NullString
	)

	err := scanner.Scan(
		&c.ID, &c.TaskID, &dateStr, &completedAt,
		&numericValue, &starValue, &photoURI, &readings,
	)
	if err != nil {
		return nil, err
	}

	c.Date, _ = time.Parse(dateLayout, dateStr)
	if completedAt.Valid {
		if t, err := time.Parse(time.RFC3339, completedAt.String); err == nil {
			c.CompletedAt = &t
		}
	}
	if numericValue.Valid {
		v := numericValue.Float64
		c.Numeric = &v
	}
	c.Stars = fromNullInt(starValue)
	c.PhotoURI = photoURI.String
	c.Readings = decodeReadings(readings)

	return &c, nil
}

func encodeReadings(readings []domain.BPReading) (sql.NullString, error) {
	if len(readings) == 0 {
		return sql.NullString{}, nil
	}
	raw, err := json.Marshal(readings)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(raw), Valid: true}, nil
}

// decodeReadings tolerates malformed blobs: a reading list that cannot be
// parsed reads back as empty instead of failing the whole row.
func decodeReadings(raw sql.NullString) []domain.BPReading {
	if !raw.Valid || raw.String == "" {
		return nil
	}
	var readings []domain.BPReading
	if err := json.Unmarshal([]byte(raw.String), &readings); err != nil {
		return nil
	}
	return readings
}

func toNullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Format(time.RFC3339), Valid: true}
}

func toNullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func toNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
