package commands

import (
	"context"

	"github.com/jdcannonchess/trackfire/internal/tracker/domain"
)

// ArchiveTaskCommand soft-deletes or restores a task.
type ArchiveTaskCommand struct {
	TaskID  int64
	Restore bool
}

// ArchiveTaskHandler handles the ArchiveTaskCommand.
type ArchiveTaskHandler struct {
	tasks domain.TaskRepository
}

// NewArchiveTaskHandler creates a new ArchiveTaskHandler.
func NewArchiveTaskHandler(tasks domain.TaskRepository) *ArchiveTaskHandler {
	return &ArchiveTaskHandler{tasks: tasks}
}

// Handle flips the task's active flag. Archiving keeps the task and its
// ledger rows; the task just stops scheduling.
func (h *ArchiveTaskHandler) Handle(ctx context.Context, cmd ArchiveTaskCommand) error {
	task, err := h.tasks.FindByID(ctx, cmd.TaskID)
	if err != nil {
		return err
	}
	if task == nil {
		return ErrTaskNotFound
	}

	if cmd.Restore {
		task.Restore()
	} else {
		task.Archive()
	}
	return h.tasks.Save(ctx, task)
}
