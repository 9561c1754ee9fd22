package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

const sessionSweepSpec = "@every 30s"

// Sweeper drops idle game sessions
type Sweeper interface {
	Sweep() int
}

// LeaderboardRebuilder reloads the ranking cache from storage
type LeaderboardRebuilder interface {
	RebuildLeaderboard(ctx context.Context) error
}

// Scheduler runs the bot's background jobs
type Scheduler struct {
	cron        *cron.Cron
	sweepers    []Sweeper
	rebuilder   LeaderboardRebuilder
	refreshSpec string
	location    *time.Location
}

// NewScheduler creates a scheduler whose calendar jobs run in loc
func NewScheduler(loc *time.Location, refreshSpec string, rebuilder LeaderboardRebuilder, sweepers ...Sweeper) *Scheduler {
	return &Scheduler{
		cron:        cron.New(cron.WithLocation(loc)),
		sweepers:    sweepers,
		rebuilder:   rebuilder,
		refreshSpec: refreshSpec,
		location:    loc,
	}
}

// Start registers the jobs and starts the cron runner
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(sessionSweepSpec, func() { s.sweepSessions() }); err != nil {
		return fmt.Errorf("failed to schedule session sweep: %w", err)
	}

	if s.refreshSpec != "" {
		if _, err := s.cron.AddFunc(s.refreshSpec, func() { s.rebuildLeaderboard(ctx) }); err != nil {
			return fmt.Errorf("failed to schedule leaderboard refresh %q: %w", s.refreshSpec, err)
		}
	}

	// Challenge windows roll over lazily on the next play; this only marks the boundary in the logs
	if _, err := s.cron.AddFunc("0 0 * * *", func() {
		log.WithField("location", s.location.String()).Info("[CRON] Daily challenge window started")
	}); err != nil {
		return fmt.Errorf("failed to schedule daily boundary: %w", err)
	}

	// Warm the cache before the first refresh tick
	s.rebuildLeaderboard(ctx)

	s.cron.Start()
	log.WithField("location", s.location.String()).Info("Scheduler started")
	return nil
}

// Stop waits for running jobs and stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info("Scheduler stopped")
}

func (s *Scheduler) sweepSessions() int {
	total := 0
	for _, sweeper := range s.sweepers {
		total += sweeper.Sweep()
	}
	if total > 0 {
		log.WithField("expired", total).Debug("[CRON] Swept idle sessions")
	}
	return total
}

func (s *Scheduler) rebuildLeaderboard(ctx context.Context) {
	if s.rebuilder == nil {
		return
	}
	if err := s.rebuilder.RebuildLeaderboard(ctx); err != nil {
		log.WithError(err).Error("[CRON] Failed to rebuild leaderboard cache")
	}
}
