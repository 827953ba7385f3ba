package queries

import (
	"context"
	"time"

	"github.com/jdcannonchess/trackfire/internal/tracker/domain"
)

// HistoryEntryDTO is one ledger row in a task's history.
type HistoryEntryDTO struct {
	Date        time.Time
	Completed   bool
	CompletedAt *time.Time
	Numeric     *float64
	Stars       *int
	PhotoURI    string
	Readings    []domain.BPReading
}

// CompletionHistoryQuery contains the parameters for a task's history.
type CompletionHistoryQuery struct {
	TaskID int64
	// Limit caps the number of entries, newest first. Zero means all.
	Limit int
}

// CompletionHistoryHandler handles the CompletionHistoryQuery.
type CompletionHistoryHandler struct {
	tasks  domain.TaskRepository
	ledger domain.CompletionRepository
}

// NewCompletionHistoryHandler creates a new CompletionHistoryHandler.
func NewCompletionHistoryHandler(tasks domain.TaskRepository, ledger domain.CompletionRepository) *CompletionHistoryHandler {
	return &CompletionHistoryHandler{tasks: tasks, ledger: ledger}
}

// Handle returns the task's ledger rows, newest first. A missing task yields
// an empty history rather than an error; reads have no preconditions.
func (h *CompletionHistoryHandler) Handle(ctx context.Context, query CompletionHistoryQuery) ([]HistoryEntryDTO, error) {
	task, err := h.tasks.FindByID(ctx, query.TaskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, nil
	}

	rows, err := h.ledger.RangeByTask(ctx, query.TaskID)
	if err != nil {
		return nil, err
	}

	entries := make([]HistoryEntryDTO, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		row := rows[i]
		entries = append(entries, HistoryEntryDTO{
			Date:        row.Date,
			Completed:   row.IsCompleted(),
			CompletedAt: row.CompletedAt,
			Numeric:     row.Numeric,
			Stars:       row.Stars,
			PhotoURI:    row.PhotoURI,
			Readings:    row.Readings,
		})
		if query.Limit > 0 && len(entries) == query.Limit {
			break
		}
	}
	return entries, nil
}
