package cli

import (
	insightsQueries "github.com/jdcannonchess/trackfire/internal/insights/application/queries"
	insightsServices "github.com/jdcannonchess/trackfire/internal/insights/application/services"
	"github.com/jdcannonchess/trackfire/internal/tracker/application/commands"
	"github.com/jdcannonchess/trackfire/internal/tracker/application/queries"
	"github.com/jdcannonchess/trackfire/internal/tracker/application/services"
)

// App bundles the application handlers for the command tree.
type App struct {
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

var app *App

// SetApp installs the handler registry for command execution.
func SetApp(a *App) {
	app = a
}

// GetApp returns the installed handler registry, nil before SetApp.
func GetApp() *App {
	return app
}
