package domain

import (
	"errors"
	"time"
)

var ErrStarsOutOfRange = errors.New("star value out of range")

// BPCategory classifies a blood-pressure reading.
type BPCategory string

const (
	BPNormal   BPCategory = "normal"
	BPElevated BPCategory = "elevated"
	BPStage1   BPCategory = "stage_1"
	BPStage2   BPCategory = "stage_2"
	BPCrisis   BPCategory = "crisis"
)

// BPReading is a single blood-pressure measurement. A completion row for a
// blood-pressure task holds a list of these.
type BPReading struct {
	Systolic  int       `json:"systolic"`
	Diastolic int       `json:"diastolic"`
	HeartRate int       `json:"heart_rate"`
	TakenAt   time.Time `json:"taken_at"`
}

// Classify buckets the reading. Crisis is checked first so that a systolic
// above 180 wins over the stage-2 branch.
func (r BPReading) Classify() BPCategory {
	switch {
	case r.Systolic > 180 || r.Diastolic > 120:
		return BPCrisis
	case r.Systolic >= 140 || r.Diastolic >= 90:
		return BPStage2
	case r.Systolic >= 130 || r.Diastolic >= 80:
		return BPStage1
	case r.Systolic >= 120:
		return BPElevated
	default:
		return BPNormal
	}
}

// Completion is one ledger row: at most one per (task, date). Date is a
// midnight UTC instant, the join key against the task's recurrence.
type Completion struct {
	ID          int64
	TaskID      int64
	Date        time.Time
	CompletedAt *time.Time

	// Type-specific payload; at most one is populated, chosen by the
	// owning task's input type.
	Numeric  *float64
	Stars    *int
	PhotoURI string
	Readings []BPReading
}

// NewPlaceholder creates an uncompleted ledger row for a due date.
func NewPlaceholder(taskID int64, date time.Time) *Completion {
	return &Completion{
		TaskID: taskID,
		Date:   NormalizeDay(date),
	}
}

// IsCompleted reports whether the row carries a completion timestamp.
func (c *Completion) IsCompleted() bool {
	return c.CompletedAt != nil
}

// Complete stamps the row. Re-completing keeps the original timestamp.
func (c *Completion) Complete(at time.Time) {
	if c.CompletedAt == nil {
		c.CompletedAt = &at
	}
}

// Uncomplete clears the completion timestamp. The payload is kept; only the
// completed state is toggled.
func (c *Completion) Uncomplete() {
	c.CompletedAt = nil
}

// SetNumeric records a numeric value and completes the row if it was not
// already completed. An existing completion timestamp is never overwritten.
func (c *Completion) SetNumeric(v float64, at time.Time) {
	c.Numeric = &v
	c.Complete(at)
}

// SetStars records a star rating and completes the row.
func (c *Completion) SetStars(n int, at time.Time) {
	c.Stars = &n
	c.Complete(at)
}

// SetPhoto records a photo reference and completes the row.
func (c *Completion) SetPhoto(uri string, at time.Time) {
	c.PhotoURI = uri
	c.Complete(at)
}

// AddReading appends a blood-pressure reading and completes the row.
func (c *Completion) AddReading(r BPReading, at time.Time) {
	c.Readings = append(c.Readings, r)
	c.Complete(at)
}
