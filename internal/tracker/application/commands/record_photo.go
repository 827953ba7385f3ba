package commands

import (
	"context"
	"errors"
	"time"

	"github.com/jdcannonchess/trackfire/internal/tracker/domain"
)

// ErrEmptyPhoto is returned when a photo command carries no payload.
var ErrEmptyPhoto = errors.New("photo payload is empty")

// PhotoStore saves a captured photo and returns its URI.
type PhotoStore interface {
	SavePhoto(data []byte) (string, error)
}

// RecordPhotoCommand stores a captured photo on a ledger row.
type RecordPhotoCommand struct {
	TaskID int64
	Date   time.Time
	Photo  []byte
}

// RecordPhotoResult contains the stored photo's URI.
type RecordPhotoResult struct {
	URI string
}

// RecordPhotoHandler handles the RecordPhotoCommand.
type RecordPhotoHandler struct {
	tasks  domain.TaskRepository
	ledger domain.CompletionRepository
	photos PhotoStore
	now    func() time.Time
}

// NewRecordPhotoHandler creates a new RecordPhotoHandler.
func NewRecordPhotoHandler(tasks domain.TaskRepository, ledger domain.CompletionRepository, photos PhotoStore) *RecordPhotoHandler {
	return &RecordPhotoHandler{
		tasks:  tasks,
		ledger: ledger,
		photos: photos,
		now:    time.Now,
	}
}

// Handle writes the photo to the media store first, then records its URI on
// the ledger row. A failed row save leaves an orphan file behind rather than
// a row pointing at nothing.
func (h *RecordPhotoHandler) Handle(ctx context.Context, cmd RecordPhotoCommand) (*RecordPhotoResult, error) {
	if len(cmd.Photo) == 0 {
		return nil, ErrEmptyPhoto
	}

	task, row, err := loadTaskAndRow(ctx, h.tasks, h.ledger, cmd.TaskID, cmd.Date)
	if err != nil {
		return nil, err
	}
	if task.InputType() != domain.InputPhoto {
		return nil, domain.ErrInvalidInput
	}

	uri, err := h.photos.SavePhoto(cmd.Photo)
	if err != nil {
		return nil, err
	}

	row.SetPhoto(uri, h.now().UTC())
	if err := h.ledger.Save(ctx, row); err != nil {
		return nil, err
	}
	return &RecordPhotoResult{URI: uri}, nil
}
