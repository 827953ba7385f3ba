// Package queries contains the read-side handlers over tasks and the ledger.
package queries

import (
	"context"
	"sort"
	"time"

	"github.com/jdcannonchess/trackfire/internal/tracker/domain"
)

// DayTaskDTO is one row of the daily view: a task joined with its ledger
// state for the requested date.
type DayTaskDTO struct {
	TaskID        int64
	Name          string
	Category      string
	InputType     string
	ScheduledHour *int
	Hidden        bool
	System        bool

	Completed   bool
	CompletedAt *time.Time
	Numeric     *float64
	Stars       *int
	PhotoURI    string
	Readings    []domain.BPReading
}

// TasksForDayQuery contains the parameters for the daily view.
type TasksForDayQuery struct {
	Date          time.Time
	IncludeHidden bool
}

// TasksForDayHandler handles the TasksForDayQuery.
type TasksForDayHandler struct {
	tasks  domain.TaskRepository
	ledger domain.CompletionRepository
}

// NewTasksForDayHandler creates a new TasksForDayHandler.
func NewTasksForDayHandler(tasks domain.TaskRepository, ledger domain.CompletionRepository) *TasksForDayHandler {
	return &TasksForDayHandler{tasks: tasks, ledger: ledger}
}

// Handle returns the tasks due on the date with their completion state.
// Unscheduled tasks sort first, then by hour, then by name.
func (h *TasksForDayHandler) Handle(ctx context.Context, query TasksForDayQuery) ([]DayTaskDTO, error) {
	day := domain.NormalizeDay(query.Date)

	tasks, err := h.tasks.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := h.ledger.RangeByDate(ctx, day, day)
	if err != nil {
		return nil, err
	}
	byTask := make(map[int64]*domain.Completion, len(rows))
	for _, row := range rows {
		byTask[row.TaskID] = row
	}

	var dtos []DayTaskDTO
	for _, task := range tasks {
		if !task.IsDueOn(day) {
			continue
		}
		if task.IsHidden() && !query.IncludeHidden {
			continue
		}
		dtos = append(dtos, toDayTaskDTO(task, byTask[task.ID()]))
	}

	sort.SliceStable(dtos, func(i, j int) bool {
		a, b := dtos[i].ScheduledHour, dtos[j].ScheduledHour
		switch {
		case a == nil && b != nil:
			return true
		case a != nil && b == nil:
			return false
		case a != nil && b != nil && *a != *b:
			return *a < *b
		default:
			return dtos[i].Name < dtos[j].Name
		}
	})
	return dtos, nil
}

func toDayTaskDTO(task *domain.Task, row *domain.Completion) DayTaskDTO {
	dto := DayTaskDTO{
		TaskID:        task.ID(),
		Name:          task.Name(),
		Category:      string(task.Category()),
		InputType:     string(task.InputType()),
		ScheduledHour: task.ScheduledHour(),
		Hidden:        task.IsHidden(),
		System:        task.IsSystem(),
	}
	if row != nil {
		dto.Completed = row.IsCompleted()
		dto.CompletedAt = row.CompletedAt
		dto.Numeric = row.Numeric
		dto.Stars = row.Stars
		dto.PhotoURI = row.PhotoURI
		dto.Readings = row.Readings
	}
	return dto
}
