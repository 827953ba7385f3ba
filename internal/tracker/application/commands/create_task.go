// Package commands contains the write-side handlers for tasks and the
// completion ledger.
package commands

import (
	"context"
	"errors"
	"time"

	"github.com/jdcannonchess/trackfire/internal/tracker/application/services"
	"github.com/jdcannonchess/trackfire/internal/tracker/domain"
)

var (
	// ErrTaskNotFound is returned when a command targets a missing task.
	ErrTaskNotFound = errors.New("task not found")
	// ErrValueOutOfRange is returned when a recorded value falls outside
	// the task's configured input range.
	ErrValueOutOfRange = errors.New("value out of range for task input")
)

// CreateTaskCommand contains the data needed to create a task. Category and
// input type arrive as strings from the adapter layer; unknown values fall
// back to their documented defaults rather than failing.
type CreateTaskCommand struct {
	Name          string
	Category      string
	InputType     string
	InputConfig   domain.InputConfig
	Schedule      domain.Schedule
	ScheduledHour *int
	Hidden        bool
}

// CreateTaskResult contains the result of creating a task.
type CreateTaskResult struct {
	TaskID int64
}

// CreateTaskHandler handles the CreateTaskCommand.
type CreateTaskHandler struct {
	tasks        domain.TaskRepository
	materializer *services.Materializer
	now          func() time.Time
}

// NewCreateTaskHandler creates a new CreateTaskHandler.
func NewCreateTaskHandler(tasks domain.TaskRepository, materializer *services.Materializer) *CreateTaskHandler {
	return &CreateTaskHandler{
		tasks:        tasks,
		materializer: materializer,
		now:          time.Now,
	}
}

// Handle creates the task and materializes its remaining due dates for the
// current week. Days already past get no rows.
func (h *CreateTaskHandler) Handle(ctx context.Context, cmd CreateTaskCommand) (*CreateTaskResult, error) {
	inputType := domain.ParseInputType(cmd.InputType)
	cfg := cmd.InputConfig
	if cfg == nil {
		cfg = domain.DefaultInputConfig(inputType)
	}

	task, err := domain.NewTask(cmd.Name, domain.ParseCategory(cmd.Category), inputType, cfg, cmd.Schedule)
	if err != nil {
		return nil, err
	}
	if cmd.ScheduledHour != nil {
		if err := task.SetScheduledHour(cmd.ScheduledHour); err != nil {
			return nil, err
		}
	}
	task.SetHidden(cmd.Hidden)

	if err := h.tasks.Save(ctx, task); err != nil {
		return nil, err
	}
	if err := h.materializer.MaterializeTaskFrom(ctx, task, h.now()); err != nil {
		return nil, err
	}
	return &CreateTaskResult{TaskID: task.ID()}, nil
}
