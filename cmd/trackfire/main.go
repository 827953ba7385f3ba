package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jdcannonchess/trackfire/adapter/cli"
	clilog "github.com/jdcannonchess/trackfire/adapter/cli/log"
	"github.com/jdcannonchess/trackfire/adapter/cli/task"
	"github.com/jdcannonchess/trackfire/adapter/cli/week"
	"github.com/jdcannonchess/trackfire/internal/app"
	"github.com/jdcannonchess/trackfire/pkg/config"
	"github.com/jdcannonchess/trackfire/pkg/observability"
)

func main() {
	logger := observability.LoggerFromEnv()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize", "error", err)
		os.Exit(1)
	}
	defer container.Close()

	// Every launch repairs whatever the last one missed: seed, the current
	// week's rows, overdue rollovers, the previous week's summary.
	if err := container.Startup.Run(ctx, time.Now()); err != nil {
		logger.Error("startup maintenance failed", "error", err)
		os.Exit(1)
	}

	cli.SetLogger(logger)
	cli.SetApp(&cli.App{
		CreateTaskHandler:  container.CreateTaskHandler,
		UpdateTaskHandler:  container.UpdateTaskHandler,
		ArchiveTaskHandler: container.ArchiveTaskHandler,
		DeleteTaskHandler:  container.DeleteTaskHandler,

		ToggleCompletionHandler:    container.ToggleCompletionHandler,
		RecordNumericHandler:       container.RecordNumericHandler,
		RecordStarsHandler:         container.RecordStarsHandler,
		RecordPhotoHandler:         container.RecordPhotoHandler,
		RecordBloodPressureHandler: container.RecordBloodPressureHandler,

		TasksForDayHandler:       container.TasksForDayHandler,
		CompletionHistoryHandler: container.CompletionHistoryHandler,
		ClosestValueHandler:      container.ClosestValueHandler,
		RecentSnapshotsHandler:   container.RecentSnapshotsHandler,

		SnapshotGenerator: container.SnapshotGenerator,
		Startup:           container.Startup,
		Maintenance:       container.Maintenance,
	})

	cli.AddCommand(task.Cmd)
	cli.AddCommand(clilog.Cmd)
	cli.AddCommand(week.Cmd)

	cli.Execute(ctx)
}
