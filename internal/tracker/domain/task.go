package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrTaskEmptyName   = errors.New("task name cannot be empty")
	ErrTaskArchived    = errors.New("task is archived")
	ErrTaskSystem      = errors.New("system tasks cannot be renamed or retyped")
	ErrNilSchedule     = errors.New("task requires a schedule")
	ErrInvalidHour     = errors.New("scheduled hour must be between 0 and 23")
	ErrNotOneTime      = errors.New("task does not have a one-time schedule")
	ErrInvalidInput    = errors.New("invalid input type")
	ErrInvalidCategory = errors.New("invalid category")
)

// Task is a recurring or one-time habit definition.
type Task struct {
	id            int64
	name          string
	category      Category
	inputType     InputType
	inputConfig   InputConfig
	schedule      Schedule
	scheduledHour *int // display ordering hint only, 0-23
	hidden        bool
	system        bool
	active        bool
	createdAt     time.Time
	updatedAt     time.Time
}

// NewTask creates a new task. The id stays zero until the first save.
func NewTask(name string, category Category, inputType InputType, cfg InputConfig, schedule Schedule) (*Task, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrTaskEmptyName
	}
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}
	if !inputType.IsValid() {
		return nil, ErrInvalidInput
	}
	if schedule == nil {
		return nil, ErrNilSchedule
	}
	if cfg == nil {
		cfg = DefaultInputConfig(inputType)
	}

	now := time.Now()
	return &Task{
		name:        name,
		category:    category,
		inputType:   inputType,
		inputConfig: cfg,
		schedule:    schedule,
		active:      true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// Getters
func (t *Task) ID() int64                { return t.id }
func (t *Task) Name() string             { return t.name }
func (t *Task) Category() Category       { return t.category }
func (t *Task) InputType() InputType     { return t.inputType }
func (t *Task) InputConfig() InputConfig { return t.inputConfig }
func (t *Task) Schedule() Schedule       { return t.schedule }
func (t *Task) ScheduledHour() *int      { return t.scheduledHour }
func (t *Task) IsHidden() bool           { return t.hidden }
func (t *Task) IsSystem() bool           { return t.system }
func (t *Task) IsActive() bool           { return t.active }
func (t *Task) CreatedAt() time.Time     { return t.createdAt }
func (t *Task) UpdatedAt() time.Time     { return t.updatedAt }

// SetID records the storage-assigned identifier. It has no effect once set.
func (t *Task) SetID(id int64) {
	if t.id == 0 {
		t.id = id
	}
}

// SetName updates the task name.
func (t *Task) SetName(name string) error {
	if !t.active {
		return ErrTaskArchived
	}
	if t.system {
		return ErrTaskSystem
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrTaskEmptyName
	}
	t.name = name
	t.touch()
	return nil
}

// SetCategory updates the display category.
func (t *Task) SetCategory(c Category) error {
	if !t.active {
		return ErrTaskArchived
	}
	if !c.IsValid() {
		return ErrInvalidCategory
	}
	t.category = c
	t.touch()
	return nil
}

// SetInputConfig replaces the input configuration.
func (t *Task) SetInputConfig(cfg InputConfig) error {
	if !t.active {
		return ErrTaskArchived
	}
	if cfg == nil {
		cfg = DefaultInputConfig(t.inputType)
	}
	t.inputConfig = cfg
	t.touch()
	return nil
}

// SetSchedule replaces the recurrence schedule. Existing ledger rows are
// not retroactively pruned when the schedule changes.
func (t *Task) SetSchedule(s Schedule) error {
	if !t.active {
		return ErrTaskArchived
	}
	if s == nil {
		return ErrNilSchedule
	}
	t.schedule = s
	t.touch()
	return nil
}

// SetScheduledHour sets or clears the same-day ordering hint.
func (t *Task) SetScheduledHour(hour *int) error {
	if hour != nil && (*hour < 0 || *hour > 23) {
		return ErrInvalidHour
	}
	t.scheduledHour = hour
	t.touch()
	return nil
}

// SetHidden toggles exclusion from the default daily view.
func (t *Task) SetHidden(hidden bool) {
	t.hidden = hidden
	t.touch()
}

// MarkSystem flags the task as a seeded wellness task.
func (t *Task) MarkSystem() {
	t.system = true
}

// Archive soft-deletes the task. Archived tasks are excluded from all
// scheduling and materialization queries.
func (t *Task) Archive() {
	if t.active {
		t.active = false
		t.touch()
	}
}

// Restore reactivates an archived task.
func (t *Task) Restore() {
	if !t.active {
		t.active = true
		t.touch()
	}
}

// IsDueOn reports whether the task is due on the given date.
func (t *Task) IsDueOn(date time.Time) bool {
	if !t.active {
		return false
	}
	return t.schedule.IsDueOn(date)
}

// IsOneTime reports whether the task has a one-time schedule.
func (t *Task) IsOneTime() bool {
	return t.schedule.Type() == ScheduleOneTime
}

// OneTime returns the one-time schedule branch, if any.
func (t *Task) OneTime() (OneTimeSchedule, bool) {
	s, ok := t.schedule.(OneTimeSchedule)
	return s, ok
}

// RescheduleOneTime moves an overdue one-time task to a new date. The
// auto-rollover flag is preserved.
func (t *Task) RescheduleOneTime(date time.Time) error {
	s, ok := t.schedule.(OneTimeSchedule)
	if !ok {
		return ErrNotOneTime
	}
	s.Date = NormalizeDay(date)
	t.schedule = s
	t.touch()
	return nil
}

func (t *Task) touch() {
	t.updatedAt = time.Now()
}

// RehydrateTask recreates a task from persisted state.
func RehydrateTask(
	id int64,
	name string,
	category Category,
	inputType InputType,
	cfg InputConfig,
	schedule Schedule,
	scheduledHour *int,
	hidden bool,
	system bool,
	active bool,
	createdAt time.Time,
	updatedAt time.Time,
) *Task {
	return &Task{
		id:            id,
		name:          name,
		category:      category,
		inputType:     inputType,
		inputConfig:   cfg,
		schedule:      schedule,
		scheduledHour: scheduledHour,
		hidden:        hidden,
		system:        system,
		active:        active,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}
