// Package persistence implements the tracker repositories on SQLite.
package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jdcannonchess/trackfire/internal/tracker/domain"
)

const dateLayout = "2006-01-02"

const taskColumns = `id, name, category, input_type, input_config,
		schedule_type, assigned_days,
		monthly_day, monthly_week, monthly_weekday,
		yearly_month, yearly_day, yearly_week, yearly_weekday,
		scheduled_date, auto_rollover,
		scheduled_hour, hidden, system, active, created_at, updated_at`

// SQLiteTaskRepository implements domain.TaskRepository using SQLite.
type SQLiteTaskRepository struct {
	db *sql.DB
}

// NewSQLiteTaskRepository creates a new SQLite task repository.
func NewSQLiteTaskRepository(db *sql.DB) *SQLiteTaskRepository {
	return &SQLiteTaskRepository{db: db}
}

// Save persists a task. The first insert assigns the storage id.
func (r *SQLiteTaskRepository) Save(ctx context.Context, task *domain.Task) error {
	cols := flattenSchedule(task.Schedule())

	if task.ID() == 0 {
		query := `
			INSERT INTO tasks (
				name, category, input_type, input_config,
				schedule_type, assigned_days,
				monthly_day, monthly_week, monthly_weekday,
				yearly_month, yearly_day, yearly_week, yearly_weekday,
				scheduled_date, auto_rollover,
				scheduled_hour, hidden, system, active, created_at, updated_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`
		result, err := r.db.ExecContext(ctx, query,
			task.Name(),
			string(task.Category()),
			string(task.InputType()),
			domain.EncodeInputConfig(task.InputConfig()),
			cols.scheduleType,
			cols.assignedDays,
			cols.monthlyDay, cols.monthlyWeek, cols.monthlyWeekday,
			cols.yearlyMonth, cols.yearlyDay, cols.yearlyWeek, cols.yearlyWeekday,
			cols.scheduledDate, cols.autoRollover,
			toNullInt(task.ScheduledHour()),
			boolToInt64(task.IsHidden()),
			boolToInt64(task.IsSystem()),
			boolToInt64(task.IsActive()),
			task.CreatedAt().Format(time.RFC3339),
			task.UpdatedAt().Format(time.RFC3339),
		)
		if err != nil {
			return err
		}
		id, err := result.LastInsertId()
		if err != nil {
			return err
		}
		task.SetID(id)
		return nil
	}

	query := `
		UPDATE tasks SET
			name = ?, category = ?, input_type = ?, input_config = ?,
			schedule_type = ?, assigned_days = ?,
			monthly_day = ?, monthly_week = ?, monthly_weekday = ?,
			yearly_month = ?, yearly_day = ?, yearly_week = ?, yearly_weekday = ?,
			scheduled_date = ?, auto_rollover = ?,
			scheduled_hour = ?, hidden = ?, system = ?, active = ?, updated_at = ?
		WHERE id = ?
	`
	_, err := r.db.ExecContext(ctx, query,
		task.Name(),
		string(task.Category()),
		string(task.InputType()),
		domain.EncodeInputConfig(task.InputConfig()),
		cols.scheduleType,
		cols.assignedDays,
		cols.monthlyDay, cols.monthlyWeek, cols.monthlyWeekday,
		cols.yearlyMonth, cols.yearlyDay, cols.yearlyWeek, cols.yearlyWeekday,
		cols.scheduledDate, cols.autoRollover,
		toNullInt(task.ScheduledHour()),
		boolToInt64(task.IsHidden()),
		boolToInt64(task.IsSystem()),
		boolToInt64(task.IsActive()),
		task.UpdatedAt().Format(time.RFC3339),
		task.ID(),
	)
	return err
}

// FindByID retrieves a task by id. Returns nil, nil when absent.
func (r *SQLiteTaskRepository) FindByID(ctx context.Context, id int64) (*domain.Task, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	return scanTask(row)
}

// FindAll retrieves every task, archived ones included.
func (r *SQLiteTaskRepository) FindAll(ctx context.Context) ([]*domain.Task, error) {
	return r.queryTasks(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY id`)
}

// FindActive retrieves non-archived tasks.
func (r *SQLiteTaskRepository) FindActive(ctx context.Context) ([]*domain.Task, error) {
	return r.queryTasks(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE active = 1 ORDER BY id`)
}

// FindActiveRecurring retrieves non-archived tasks with a recurring schedule.
func (r *SQLiteTaskRepository) FindActiveRecurring(ctx context.Context) ([]*domain.Task, error) {
	return r.queryTasks(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE active = 1 AND schedule_type != ? ORDER BY id`,
		string(domain.ScheduleOneTime))
}

// FindRolloverCandidates retrieves active auto-rollover one-time tasks whose
// scheduled date is before today.
func (r *SQLiteTaskRepository) FindRolloverCandidates(ctx context.Context, today time.Time) ([]*domain.Task, error) {
	return r.queryTasks(ctx,
		`SELECT `+taskColumns+` FROM tasks
		 WHERE active = 1 AND schedule_type = ? AND auto_rollover = 1 AND scheduled_date < ?
		 ORDER BY id`,
		string(domain.ScheduleOneTime),
		domain.NormalizeDay(today).Format(dateLayout))
}

// FindSystemTask looks up a seeded wellness task by name and input type.
func (r *SQLiteTaskRepository) FindSystemTask(ctx context.Context, name string, input domain.InputType) (*domain.Task, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks
		 WHERE system = 1 AND name = ? AND input_type = ? AND active = 1
		 LIMIT 1`,
		name, string(input))
	return scanTask(row)
}

// Delete hard-deletes a task. Completion rows are removed via cascade.
func (r *SQLiteTaskRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	return err
}

func (r *SQLiteTaskRepository) queryTasks(ctx context.Context, query string, args ...any) ([]*domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		task, err := scanTaskRow(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

// scheduleColumns is the flattened storage form of the schedule variant.
// Only the columns for the active branch are non-null.
type scheduleColumns struct {
	scheduleType  string
	assignedDays  sql.NullInt64
	monthlyDay    sql.NullInt64
	monthlyWeek   sql.NullInt64
	monthlyWeekday sql.NullInt64
	yearlyMonth   sql.NullInt64
	yearlyDay     sql.NullInt64
	yearlyWeek    sql.NullInt64
	yearlyWeekday sql.NullInt64
	scheduledDate sql.NullString
	autoRollover  int64
}

func flattenSchedule(s domain.Schedule) scheduleColumns {
	cols := scheduleColumns{scheduleType: string(s.Type())}

	switch v := s.(type) {
	case domain.WeeklySchedule:
		cols.assignedDays = sql.NullInt64{Int64: int64(v.Days), Valid: true}
	case domain.MonthlySchedule:
		if v.Day > 0 {
			cols.monthlyDay = sql.NullInt64{Int64: int64(v.Day), Valid: true}
		} else {
			cols.monthlyWeek = sql.NullInt64{Int64: int64(v.Week), Valid: true}
			cols.monthlyWeekday = sql.NullInt64{Int64: weekdayToISO(v.Weekday), Valid: true}
		}
	case domain.YearlySchedule:
		cols.yearlyMonth = sql.NullInt64{Int64: int64(v.Month), Valid: true}
		if v.Day > 0 {
			cols.yearlyDay = sql.NullInt64{Int64: int64(v.Day), Valid: true}
		} else {
			cols.yearlyWeek = sql.NullInt64{Int64: int64(v.Week), Valid: true}
			cols.yearlyWeekday = sql.NullInt64{Int64: weekdayToISO(v.Weekday), Valid: true}
		}
	case domain.OneTimeSchedule:
		cols.scheduledDate = sql.NullString{String: v.Date.Format(dateLayout), Valid: true}
		cols.autoRollover = boolToInt64(v.AutoRollover)
	}
	return cols
}

// rebuildSchedule decodes the flattened columns. Unknown schedule types and
// torn branch data clamp to a weekly schedule with an empty mask (never due)
// rather than failing on drifted rows.
func rebuildSchedule(cols scheduleColumns) domain.Schedule {
	switch domain.ScheduleType(cols.scheduleType) {
	case domain.ScheduleWeekly:
		return domain.WeeklySchedule{Days: domain.WeekdaySet(cols.assignedDays.Int64)}
	case domain.ScheduleMonthly:
		if cols.monthlyDay.Valid {
			return domain.MonthlySchedule{Day: int(cols.monthlyDay.Int64)}
		}
		if cols.monthlyWeek.Valid && cols.monthlyWeekday.Valid {
			return domain.MonthlySchedule{
				Week:    int(cols.monthlyWeek.Int64),
				Weekday: isoToWeekday(cols.monthlyWeekday.Int64),
			}
		}
		return domain.WeeklySchedule{}
	case domain.ScheduleYearly:
		if !cols.yearlyMonth.Valid {
			return domain.WeeklySchedule{}
		}
		month := time.Month(cols.yearlyMonth.Int64)
		if cols.yearlyDay.Valid {
			return domain.YearlySchedule{Month: month, Day: int(cols.yearlyDay.Int64)}
		}
		if cols.yearlyWeek.Valid && cols.yearlyWeekday.Valid {
			return domain.YearlySchedule{
				Month:   month,
				Week:    int(cols.yearlyWeek.Int64),
				Weekday: isoToWeekday(cols.yearlyWeekday.Int64),
			}
		}
		return domain.WeeklySchedule{}
	case domain.ScheduleOneTime:
		if !cols.scheduledDate.Valid {
			return domain.WeeklySchedule{}
		}
		date, err := time.Parse(dateLayout, cols.scheduledDate.String)
		if err != nil {
			return domain.WeeklySchedule{}
		}
		return domain.OneTimeSchedule{Date: date, AutoRollover: cols.autoRollover != 0}
	default:
		return domain.WeeklySchedule{}
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row *sql.Row) (*domain.Task, error) {
	task, err := scanTaskRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return task, nil
}

func scanTaskRow(scanner rowScanner) (*domain.Task, error) {
	var (
		id                           int64
		name, category, inputType    string
		inputConfig, scheduleType    string
		cols                         scheduleColumns
		scheduledHour                sql.NullInt64
		hidden, system, active       int64
		createdAtStr, updatedAtStr   string
	)

	err := scanner.Scan(
		&id, &name, &category, &inputType, &inputConfig,
		&scheduleType, &cols.assignedDays,
		&cols.monthlyDay, &cols.monthlyWeek, &cols.monthlyWeekday,
		&cols.yearlyMonth, &cols.yearlyDay, &cols.yearlyWeek, &cols.yearlyWeekday,
		&cols.scheduledDate, &cols.autoRollover,
		&scheduledHour, &hidden, &system, &active, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, err
	}
	cols.scheduleType = scheduleType

	parsedInput := domain.ParseInputType(inputType)
	createdAt, _ := time.Parse(time.RFC3339, createdAtStr)
	updatedAt, _ := time.Parse(time.RFC3339, updatedAtStr)

	return domain.RehydrateTask(
		id,
		name,
		domain.ParseCategory(category),
		parsedInput,
		domain.DecodeInputConfig(parsedInput, inputConfig),
		rebuildSchedule(cols),
		fromNullInt(scheduledHour),
		hidden != 0,
		system != 0,
		active != 0,
		createdAt,
		updatedAt,
	), nil
}

// Helper functions
func boolToInt64(b bool) int64 {
	if b {
		return 1
	}
	return 0
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

// weekdayToISO stores weekdays as ISO numbers: 1 = Monday .. 7 = Sunday.
func weekdayToISO(d time.Weekday) int64 {
	return int64((int(d)+6)%7 + 1)
}

func isoToWeekday(iso int64) time.Weekday {
	return time.Weekday(iso % 7)
}
