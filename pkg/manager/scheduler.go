package manager

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/kasuboski/watchlist/config"
	"github.com/kasuboski/watchlist/pkg/logger"
	"github.com/kasuboski/watchlist/pkg/storage"
)

// Scheduler runs the periodic maintenance jobs of the watchlist
type Scheduler struct {
	manager MediaManager
	config  config.Manager
	cron    *gocron.Scheduler
}

func NewScheduler(manager MediaManager, config config.Manager) *Scheduler {
	cron := gocron.NewScheduler(time.UTC)
	cron.SingletonModeAll()

	return &Scheduler{
		manager: manager,
		config:  config,
		cron:    cron,
	}
}

// Run schedules the jobs and blocks until ctx is done
func (s *Scheduler) Run(ctx context.Context) error {
	log := logger.FromCtx(ctx)

	interval := s.config.Jobs.BackdropRefresh
	if interval <= 0 {
		log.Debug("backdrop refresh job disabled")
		<-ctx.Done()
		return nil
	}

	_, err := s.cron.Every(interval).WaitForSchedule().Do(s.refreshBackdrops, ctx)
	if err != nil {
		return err
	}

	log.Infow("scheduled backdrop refresh", "interval", interval)
	s.cron.StartAsync()

	<-ctx.Done()
	s.cron.Stop()
	return nil
}

func (s *Scheduler) refreshBackdrops(ctx context.Context) {
	log := logger.FromCtx(ctx)

	for _, kind := range []storage.Kind{storage.KindMovie, storage.KindSeries} {
		if ctx.Err() != nil {
			return
		}

		res, err := s.manager.RefreshBackdrops(ctx, kind)
		if err != nil {
			log.Errorw("backdrop refresh job failed", "kind", kind, "updated", len(res.Updated), "error", err)
		}
	}
}
