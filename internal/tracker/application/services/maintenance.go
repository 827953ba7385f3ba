package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Maintenance re-runs the startup pass shortly after midnight so a process
// left running across a day (or week) boundary still materializes and rolls
// over without a restart.
type Maintenance struct {
	startup *Startup
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewMaintenance creates the midnight maintenance daemon.
func NewMaintenance(startup *Startup, logger *slog.Logger) *Maintenance {
	return &Maintenance{
		startup: startup,
		cron:    cron.New(),
		logger:  logger,
	}
}

// Start schedules the nightly pass. The returned error only reports an
// invalid cron expression.
func (m *Maintenance) Start(ctx context.Context) error {
	_, err := m.cron.AddFunc("1 0 * * *", func() {
		if err := m.startup.Run(ctx, time.Now()); err != nil {
			m.logger.Error("nightly maintenance failed", "error", err)
		}
	})
	if err != nil {
		return err
	}
	m.cron.Start()
	m.logger.Debug("maintenance daemon started", "schedule", "1 0 * * *")
	return nil
}

// Stop halts the daemon and waits for any in-flight run to finish.
func (m *Maintenance) Stop() {
	stopCtx := m.cron.Stop()
	<-stopCtx.Done()
}
