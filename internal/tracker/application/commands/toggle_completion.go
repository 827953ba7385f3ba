package commands

import (
	"context"
	"time"

	"github.com/jdcannonchess/trackfire/internal/tracker/domain"
)

// ToggleCompletionCommand flips the completed state of one (task, date)
// ledger row.
type ToggleCompletionCommand struct {
	TaskID int64
	Date   time.Time
}

// ToggleCompletionResult reports the state after the toggle.
type ToggleCompletionResult struct {
	Completed bool
}

// ToggleCompletionHandler handles the ToggleCompletionCommand.
type ToggleCompletionHandler struct {
	tasks  domain.TaskRepository
	ledger domain.CompletionRepository
	now    func() time.Time
}

// NewToggleCompletionHandler creates a new ToggleCompletionHandler.
func NewToggleCompletionHandler(tasks domain.TaskRepository, ledger domain.CompletionRepository) *ToggleCompletionHandler {
	return &ToggleCompletionHandler{
		tasks:  tasks,
		ledger: ledger,
		now:    time.Now,
	}
}

// Handle toggles the row, creating it first when the materializer has not
// produced one (off-schedule completions are allowed). Uncompleting keeps
// any recorded payload on the row.
func (h *ToggleCompletionHandler) Handle(ctx context.Context, cmd ToggleCompletionCommand) (*ToggleCompletionResult, error) {
	_, row, err := loadTaskAndRow(ctx, h.tasks, h.ledger, cmd.TaskID, cmd.Date)
	if err != nil {
		return nil, err
	}

	if row.IsCompleted() {
		row.Uncomplete()
	} else {
		row.Complete(h.now().UTC())
	}

	if err := h.ledger.Save(ctx, row); err != nil {
		return nil, err
	}
	return &ToggleCompletionResult{Completed: row.IsCompleted()}, nil
}

// loadTaskAndRow fetches the task and its ledger row for the pair, creating
// an in-memory placeholder row when absent. Writes against a missing task
// are rejected before they can orphan a row.
func loadTaskAndRow(
	ctx context.Context,
	tasks domain.TaskRepository,
	ledger domain.CompletionRepository,
	taskID int64,
	date time.Time,
) (*domain.Task, *domain.Completion, error) {
	task, err := tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, nil, err
	}
	if task == nil {
		return nil, nil, ErrTaskNotFound
	}

	row, err := ledger.Get(ctx, taskID, date)
	if err != nil {
		return nil, nil, err
	}
	if row == nil {
		row = domain.NewPlaceholder(taskID, date)
	}
	return task, row, nil
}
