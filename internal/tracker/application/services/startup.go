package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jdcannonchess/trackfire/internal/tracker/domain"
)

// Marker keys in the injected key-value store.
const (
	MarkerLastMaterializedWeek = "last_materialized_week"
	MarkerLastRolloverDate     = "last_rollover_date"
)

const markerDateLayout = "2006-01-02"

// SnapshotEnsurer generates a weekly snapshot when one is missing. The
// insights context provides the implementation.
type SnapshotEnsurer interface {
	Ensure(ctx context.Context, weekStart time.Time) error
}

// Startup runs the process-start orchestration in a fixed order: seed if
// empty, materialize the week if it is new, roll over one-time tasks if the
// day is new, and backfill the previous week's snapshot on a week change.
//
// Every step is idempotent, and each marker is only advanced after its pass
// completes, so a crash mid-run is repaired by the next launch.
type Startup struct {
	seeder       *Seeder
	materializer *Materializer
	rollover     *Rollover
	snapshots    SnapshotEnsurer
	markers      domain.MarkerStore
	logger       *slog.Logger
}

// NewStartup creates the startup orchestrator. A nil seeder disables
// first-launch seeding.
func NewStartup(
	seeder *Seeder,
	materializer *Materializer,
	rollover *Rollover,
	snapshots SnapshotEnsurer,
	markers domain.MarkerStore,
	logger *slog.Logger,
) *Startup {
	return &Startup{
		seeder:       seeder,
		materializer: materializer,
		rollover:     rollover,
		snapshots:    snapshots,
		markers:      markers,
		logger:       logger,
	}
}

// Run executes the startup pass for the given local calendar day.
func (s *Startup) Run(ctx context.Context, today time.Time) error {
	today = domain.NormalizeDay(today)
	week := domain.StartOfWeek(today)

	if s.seeder != nil {
		if err := s.seeder.SeedIfEmpty(ctx); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	lastWeek, err := s.markers.Get(ctx, MarkerLastMaterializedWeek)
	if err != nil {
		return fmt.Errorf("read week marker: %w", err)
	}
	if lastWeek != week.Format(markerDateLayout) {
		if err := s.materializer.MaterializeWeek(ctx, week); err != nil {
			return fmt.Errorf("materialize week: %w", err)
		}

		// A week change with history behind it: make sure the closed
		// week has its snapshot. First launch has nothing to roll up.
		if lastWeek != "" && s.snapshots != nil {
			previous := week.AddDate(0, 0, -7)
			if err := s.snapshots.Ensure(ctx, previous); err != nil {
				return fmt.Errorf("ensure previous snapshot: %w", err)
			}
		}

		if err := s.markers.Set(ctx, MarkerLastMaterializedWeek, week.Format(markerDateLayout)); err != nil {
			return fmt.Errorf("advance week marker: %w", err)
		}
	}

	lastRollover, err := s.markers.Get(ctx, MarkerLastRolloverDate)
	if err != nil {
		return fmt.Errorf("read rollover marker: %w", err)
	}
	if lastRollover != today.Format(markerDateLayout) {
		if _, err := s.rollover.Run(ctx, today); err != nil {
			return fmt.Errorf("rollover: %w", err)
		}
		if err := s.markers.Set(ctx, MarkerLastRolloverDate, today.Format(markerDateLayout)); err != nil {
			return fmt.Errorf("advance rollover marker: %w", err)
		}
	}

	s.logger.Debug("startup pass complete", "today", today.Format(markerDateLayout))
	return nil
}
