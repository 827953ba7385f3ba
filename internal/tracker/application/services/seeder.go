package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jdcannonchess/trackfire/internal/tracker/domain"
)

// Seeder creates the wellness system tasks on first launch. Seeding only
// happens when the task table is completely empty, so a user who deletes a
// system task does not get it back on the next start.
type Seeder struct {
	tasks  domain.TaskRepository
	logger *slog.Logger
}

// NewSeeder creates a new Seeder.
func NewSeeder(tasks domain.TaskRepository, logger *slog.Logger) *Seeder {
	return &Seeder{tasks: tasks, logger: logger}
}

type seedDef struct {
	name     string
	category domain.Category
	input    domain.InputType
	config   domain.InputConfig
}

func wellnessSeeds() []seedDef {
	return []seedDef{
		{domain.WellnessTaskMood, domain.CategoryMind, domain.InputStars, domain.StarsConfig{Count: 5}},
		{domain.WellnessTaskSleepHours, domain.CategoryBody, domain.InputNumber, domain.NumberConfig{Suffix: "h"}},
		{domain.WellnessTaskSleepQuality, domain.CategoryBody, domain.InputStars, domain.StarsConfig{Count: 5}},
		{domain.WellnessTaskWeight, domain.CategoryBody, domain.InputNumber, domain.NumberConfig{Suffix: "kg"}},
		{domain.WellnessTaskSteps, domain.CategoryBody, domain.InputNumber, domain.NumberConfig{Suffix: "steps", Integer: true}},
		{domain.WellnessTaskBloodPressure, domain.CategoryBody, domain.InputBloodPressure, domain.CheckboxConfig{}},
	}
}

// SeedIfEmpty creates the wellness tasks when no task exists yet.
func (s *Seeder) SeedIfEmpty(ctx context.Context) error {
	existing, err := s.tasks.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("check existing tasks: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, def := range wellnessSeeds() {
		task, err := domain.NewTask(def.name, def.category, def.input, def.config,
			domain.NewWeeklySchedule(domain.AllWeekdays))
		if err != nil {
			return fmt.Errorf("build seed task %q: %w", def.name, err)
		}
		task.MarkSystem()
		if err := s.tasks.Save(ctx, task); err != nil {
			return fmt.Errorf("save seed task %q: %w", def.name, err)
		}
	}

	s.logger.Info("seeded wellness tasks", "count", len(wellnessSeeds()))
	return nil
}
