package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdcannonchess/trackfire/internal/tracker/domain"
)

type recordingEnsurer struct {
	weeks []time.Time
}

func (r *recordingEnsurer) Ensure(_ context.Context, weekStart time.Time) error {
	r.weeks = append(r.weeks, weekStart)
	return nil
}

func newStartupFixture(t *testing.T) (*serviceFixture, *Startup, *recordingEnsurer) {
	t.Helper()
	f := setupServices(t)
	snapshots := &recordingEnsurer{}
	startup := NewStartup(
		NewSeeder(f.tasks, f.logger),
		NewMaterializer(f.tasks, f.ledger, f.logger),
		NewRollover(f.tasks, f.ledger, f.logger),
		snapshots,
		f.markers,
		f.logger,
	)
	return f, startup, snapshots
}

func TestStartup_FirstLaunchSeedsAndMaterializes(t *testing.T) {
	f, startup, snapshots := newStartupFixture(t)
	ctx := context.Background()

	today := date(2024, time.January, 3) // a Wednesday
	require.NoError(t, startup.Run(ctx, today))

	tasks, err := f.tasks.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 6)

	// Every seeded task is daily, so the whole week is materialized.
	rows, err := f.ledger.RangeByDate(ctx, date(2024, time.January, 1), date(2024, time.January, 7))
	require.NoError(t, err)
	assert.Len(t, rows, 6*7)

	// No history before the first launch, nothing to snapshot.
	assert.Empty(t, snapshots.weeks)

	week, err := f.markers.Get(ctx, MarkerLastMaterializedWeek)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", week)

	day, err := f.markers.Get(ctx, MarkerLastRolloverDate)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-03", day)
}

func TestStartup_SameDayRunIsNoOp(t *testing.T) {
	f, startup, _ := newStartupFixture(t)
	ctx := context.Background()

	today := date(2024, time.January, 3)
	require.NoError(t, startup.Run(ctx, today))

	// Archive a seeded task, then run again the same day. The week marker
	// blocks re-materialization, so no rows for the archived task change.
	tasks, err := f.tasks.FindAll(ctx)
	require.NoError(t, err)
	tasks[0].Archive()
	require.NoError(t, f.tasks.Save(ctx, tasks[0]))

	require.NoError(t, startup.Run(ctx, today))

	rows, err := f.ledger.RangeByDate(ctx, date(2024, time.January, 1), date(2024, time.January, 7))
	require.NoError(t, err)
	assert.Len(t, rows, 6*7)
}

func TestStartup_NewWeekSnapshotsPreviousWeek(t *testing.T) {
	_, startup, snapshots := newStartupFixture(t)
	ctx := context.Background()

	require.NoError(t, startup.Run(ctx, date(2024, time.January, 3)))
	require.NoError(t, startup.Run(ctx, date(2024, time.January, 8)))

	require.Len(t, snapshots.weeks, 1)
	assert.Equal(t, date(2024, time.January, 1), snapshots.weeks[0])
}

func TestStartup_NewDayRollsOver(t *testing.T) {
	f, startup, _ := newStartupFixture(t)
	ctx := context.Background()

	require.NoError(t, startup.Run(ctx, date(2024, time.January, 3)))

	task := saveOneTime(t, f, "Return library book", date(2024, time.January, 3), true)

	require.NoError(t, startup.Run(ctx, date(2024, time.January, 4)))

	reloaded, err := f.tasks.FindByID(ctx, task.ID())
	require.NoError(t, err)
	schedule, ok := reloaded.OneTime()
	require.True(t, ok)
	assert.Equal(t, date(2024, time.January, 4), schedule.Date)
}

func TestStartup_DeletedSystemTaskStaysGone(t *testing.T) {
	f, startup, _ := newStartupFixture(t)
	ctx := context.Background()

	require.NoError(t, startup.Run(ctx, date(2024, time.January, 3)))

	mood, err := f.tasks.FindSystemTask(ctx, domain.WellnessTaskMood, domain.InputStars)
	require.NoError(t, err)
	require.NotNil(t, mood)
	require.NoError(t, f.tasks.Delete(ctx, mood.ID()))

	require.NoError(t, startup.Run(ctx, date(2024, time.January, 4)))

	mood, err = f.tasks.FindSystemTask(ctx, domain.WellnessTaskMood, domain.InputStars)
	require.NoError(t, err)
	assert.Nil(t, mood)
}
