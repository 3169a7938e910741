// Package workers hosts the background maintenance jobs. Everything in
// memory leaks without them: rooms outlive their debaters and abandoned
// debate sessions never call their own end.
package workers

import (
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/Dosada05/debate-arena/models"
	"github.com/Dosada05/debate-arena/registry"
	"github.com/Dosada05/debate-arena/services"
)

const (
	sweepInterval = 15 * time.Minute

	// debateTTL is how long an abandoned in-progress session survives.
	debateTTL = 6 * time.Hour
)

// CleanupWorker periodically reclaims expired rooms and abandoned
// debate sessions.
type CleanupWorker struct {
	reg       *registry.Registry
	rooms     *services.RoomService
	logger    *slog.Logger
	scheduler gocron.Scheduler
}

func NewCleanupWorker(reg *registry.Registry, rooms *services.RoomService, logger *slog.Logger) (*CleanupWorker, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	return &CleanupWorker{
		reg:       reg,
		rooms:     rooms,
		logger:    logger,
		scheduler: scheduler,
	}, nil
}

// Start registers the jobs and runs the scheduler in the background.
func (w *CleanupWorker) Start() error {
	_, err := w.scheduler.NewJob(
		gocron.DurationJob(sweepInterval),
		gocron.NewTask(func() { w.rooms.SweepExpiredRooms() }),
		gocron.WithName("room-sweeper"),
	)
	if err != nil {
		return err
	}

	_, err = w.scheduler.NewJob(
		gocron.DurationJob(sweepInterval),
		gocron.NewTask(w.sweepStaleDebates),
		gocron.WithName("debate-sweeper"),
	)
	if err != nil {
		return err
	}

	w.scheduler.Start()
	w.logger.Info("cleanup worker started", slog.Duration("interval", sweepInterval))
	return nil
}

// Stop shuts the scheduler down, waiting for running jobs.
func (w *CleanupWorker) Stop() {
	if err := w.scheduler.Shutdown(); err != nil {
		w.logger.Error("cleanup worker shutdown failed", slog.Any("error", err))
	}
}

// sweepStaleDebates drops sessions whose last activity is older than the
// TTL. Their verdicts are lost, matching what happens when a debater
// simply walks away.
func (w *CleanupWorker) sweepStaleDebates() {
	cutoff := time.Now().Add(-debateTTL)
	var stale []string
	w.reg.Debates.ForEach(func(id string, d *models.DebateSession) {
		last := d.StartTime
		if n := len(d.Speeches); n > 0 {
			last = d.Speeches[n-1].Timestamp
		}
		if last.Before(cutoff) {
			stale = append(stale, id)
		}
	})
	for _, id := range stale {
		w.reg.Debates.Delete(id)
	}
	if len(stale) > 0 {
		w.logger.Info("stale debate sessions swept", slog.Int("count", len(stale)))
	}
}
