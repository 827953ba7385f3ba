// Package app wires configuration, storage, and handlers into one container.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	insightsQueries "github.com/jdcannonchess/trackfire/internal/insights/application/queries"
	insightsServices "github.com/jdcannonchess/trackfire/internal/insights/application/services"
	insightsPersistence "github.com/jdcannonchess/trackfire/internal/insights/infrastructure/persistence"
	"github.com/jdcannonchess/trackfire/internal/shared/infrastructure/database/sqlite"
	"github.com/jdcannonchess/trackfire/internal/shared/infrastructure/migrations"
	"github.com/jdcannonchess/trackfire/internal/tracker/application/commands"
	"github.com/jdcannonchess/trackfire/internal/tracker/application/queries"
	"github.com/jdcannonchess/trackfire/internal/tracker/application/services"
	"github.com/jdcannonchess/trackfire/internal/tracker/infrastructure/media"
	"github.com/jdcannonchess/trackfire/internal/tracker/infrastructure/persistence"
	"github.com/jdcannonchess/trackfire/pkg/config"
)

// Container holds the wired application.
type Container struct {
	db *sql.DB

	// Task command handlers
	CreateTaskHandler  *commands.CreateTaskHandler
	UpdateTaskHandler  *commands.UpdateTaskHandler
	ArchiveTaskHandler *commands.ArchiveTaskHandler
	DeleteTaskHandler  *commands.DeleteTaskHandler

	// Ledger command handlers
	ToggleCompletionHandler    *commands.ToggleCompletionHandler
	RecordNumericHandler       *commands.RecordNumericHandler
	RecordStarsHandler         *commands.RecordStarsHandler
	RecordPhotoHandler         *commands.RecordPhotoHandler
	RecordBloodPressureHandler *commands.RecordBloodPressureHandler

	// Query handlers
	TasksForDayHandler       *queries.TasksForDayHandler
	CompletionHistoryHandler *queries.CompletionHistoryHandler
	ClosestValueHandler      *queries.ClosestValueHandler
	RecentSnapshotsHandler   *insightsQueries.RecentSnapshotsHandler

	// Services
	SnapshotGenerator *insightsServices.SnapshotGenerator
	Startup           *services.Startup
	Maintenance       *services.Maintenance
}

// NewContainer opens storage, runs migrations, and wires every handler.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	db, err := sqlite.Open(ctx, cfg.SQLitePath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := migrations.RunSQLiteMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	taskRepo := persistence.NewSQLiteTaskRepository(db)
	ledger := persistence.NewSQLiteCompletionRepository(db)
	markers := persistence.NewSQLiteMarkerStore(db)
	snapshotRepo := insightsPersistence.NewSQLiteSnapshotRepository(db)
	photos := media.NewStore(cfg.MediaDir)

	materializer := services.NewMaterializer(taskRepo, ledger, logger)
	rollover := services.NewRollover(taskRepo, ledger, logger)
	generator := insightsServices.NewSnapshotGenerator(snapshotRepo, taskRepo, ledger, logger)

	var seeder *services.Seeder
	if cfg.SeedEnabled {
		seeder = services.NewSeeder(taskRepo, logger)
	}
	startup := services.NewStartup(seeder, materializer, rollover, generator, markers, logger)

	return &Container{
		db: db,

		CreateTaskHandler:  commands.NewCreateTaskHandler(taskRepo, materializer),
		UpdateTaskHandler:  commands.NewUpdateTaskHandler(taskRepo, materializer),
		ArchiveTaskHandler: commands.NewArchiveTaskHandler(taskRepo),
		DeleteTaskHandler:  commands.NewDeleteTaskHandler(taskRepo),

		ToggleCompletionHandler:    commands.NewToggleCompletionHandler(taskRepo, ledger),
		RecordNumericHandler:       commands.NewRecordNumericHandler(taskRepo, ledger),
		RecordStarsHandler:         commands.NewRecordStarsHandler(taskRepo, ledger),
		RecordPhotoHandler:         commands.NewRecordPhotoHandler(taskRepo, ledger, photos),
		RecordBloodPressureHandler: commands.NewRecordBloodPressureHandler(taskRepo, ledger),

		TasksForDayHandler:       queries.NewTasksForDayHandler(taskRepo, ledger),
		CompletionHistoryHandler: queries.NewCompletionHistoryHandler(taskRepo, ledger),
		ClosestValueHandler:      queries.NewClosestValueHandler(taskRepo, ledger),
		RecentSnapshotsHandler:   insightsQueries.NewRecentSnapshotsHandler(snapshotRepo),

		SnapshotGenerator: generator,
		Startup:           startup,
		Maintenance:       services.NewMaintenance(startup, logger),
	}, nil
}

// Close releases held resources.
func (c *Container) Close() error {
	return c.db.Close()
}
