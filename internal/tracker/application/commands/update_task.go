package commands

import (
	"context"
	"time"

	"github.com/jdcannonchess/trackfire/internal/tracker/application/services"
	"github.com/jdcannonchess/trackfire/internal/tracker/domain"
)

// UpdateTaskCommand carries a partial task update. Nil fields are left
// untouched. The input type itself is fixed at creation; only its config
// can change.
type UpdateTaskCommand struct {
	TaskID            int64
	Name              *string
	Category          *string
	InputConfig       domain.InputConfig
	Schedule          domain.Schedule
	ScheduledHour     *int
	ClearScheduleHour bool
	Hidden            *bool
}

// UpdateTaskHandler handles the UpdateTaskCommand.
type UpdateTaskHandler struct {
	tasks        domain.TaskRepository
	materializer *services.Materializer
	now          func() time.Time
}

// NewUpdateTaskHandler creates a new UpdateTaskHandler.
func NewUpdateTaskHandler(tasks domain.TaskRepository, materializer *services.Materializer) *UpdateTaskHandler {
	return &UpdateTaskHandler{
		tasks:        tasks,
		materializer: materializer,
		now:          time.Now,
	}
}

// Handle applies the update. A schedule change re-materializes the rest of
// the current week so new due dates show up immediately; stale placeholder
// rows from the old schedule are left in the ledger as uncompleted history.
func (h *UpdateTaskHandler) Handle(ctx context.Context, cmd UpdateTaskCommand) error {
	task, err := h.tasks.FindByID(ctx, cmd.TaskID)
	if err != nil {
		return err
	}
	if task == nil {
		return ErrTaskNotFound
	}

	if cmd.Name != nil {
		if err := task.SetName(*cmd.Name); err != nil {
			return err
		}
	}
	if cmd.Category != nil {
		if err := task.SetCategory(domain.ParseCategory(*cmd.Category)); err != nil {
			return err
		}
	}
	if cmd.InputConfig != nil {
		if err := task.SetInputConfig(cmd.InputConfig); err != nil {
			return err
		}
	}
	if cmd.Schedule != nil {
		if err := task.SetSchedule(cmd.Schedule); err != nil {
			return err
		}
	}
	if cmd.ClearScheduleHour {
		if err := task.SetScheduledHour(nil); err != nil {
			return err
		}
	} else if cmd.ScheduledHour != nil {
		if err := task.SetScheduledHour(cmd.ScheduledHour); err != nil {
			return err
		}
	}
	if cmd.Hidden != nil {
		task.SetHidden(*cmd.Hidden)
	}

	if err := h.tasks.Save(ctx, task); err != nil {
		return err
	}
	if cmd.Schedule != nil {
		if err := h.materializer.MaterializeTaskFrom(ctx, task, h.now()); err != nil {
			return err
		}
	}
	return nil
}
