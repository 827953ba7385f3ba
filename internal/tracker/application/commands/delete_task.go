package commands

import (
	"context"

	"github.com/jdcannonchess/trackfire/internal/tracker/domain"
)

// DeleteTaskCommand hard-deletes a task and, via cascade, its ledger rows.
type DeleteTaskCommand struct {
	TaskID int64
}

// DeleteTaskHandler handles the DeleteTaskCommand.
type DeleteTaskHandler struct {
	tasks domain.TaskRepository
}

// NewDeleteTaskHandler creates a new DeleteTaskHandler.
func NewDeleteTaskHandler(tasks domain.TaskRepository) *DeleteTaskHandler {
	return &DeleteTaskHandler{tasks: tasks}
}

// Handle removes the task. Photo files referenced by deleted ledger rows are
// kept on disk; they are user media.
func (h *DeleteTaskHandler) Handle(ctx context.Context, cmd DeleteTaskCommand) error {
	task, err := h.tasks.FindByID(ctx, cmd.TaskID)
	if err != nil {
		return err
	}
	if task == nil {
		return ErrTaskNotFound
	}
	return h.tasks.Delete(ctx, cmd.TaskID)
}
