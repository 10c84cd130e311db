package app

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/example/bridgebot/internal/config"
	"github.com/example/bridgebot/internal/ports/primary"
)

// SchedulerStats is a snapshot of the scheduler's counters.
type SchedulerStats struct {
	Cycles        int64
	ProjectErrors int64
	Reopened      int64
	Closed        int64
	LastCycleAt   time.Time
}

// Scheduler drives the sync service on a fixed interval. Projects are
// processed sequentially within a cycle; a project's failure is logged
// and does not block the remaining projects or future ticks. There is no
// backoff or overlap detection: a cycle that outruns the interval simply
// runs back-to-back with the next.
type Scheduler struct {
	service  primary.SyncService
	projects []primary.Project
	settings config.SyncSettings
	logger   *log.Logger

	mu    sync.Mutex
	stats SchedulerStats
}

// NewScheduler creates a new Scheduler with injected dependencies.
func NewScheduler(service primary.SyncService, projects []primary.Project, settings config.SyncSettings, logger *log.Logger) *Scheduler {
	return &Scheduler{
		service:  service,
		projects: projects,
		settings: settings,
		logger:   logger,
	}
}

// Run blocks until ctx is cancelled. If sync is disabled it returns
// immediately. The first cycle runs at startup, then one per interval.
func (s *Scheduler) Run(ctx context.Context) {
	if !s.settings.IsEnabled() {
		s.logger.Printf("issue sync is disabled in configuration")
		return
	}

	interval := time.Duration(s.settings.IntervalSeconds) * time.Second
	s.logger.Printf("starting issue sync for %d projects with interval %s", len(s.projects), interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.runCycle(ctx)
	for {
		select {
		case <-ctx.Done():
			s.logger.Printf("issue sync stopped")
			return
		case <-ticker.C:
			s.runCycle(ctx)
		}
	}
}

// RunOnce runs a single cycle regardless of the enabled flag. Used by the
// one-shot CLI path.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.runCycle(ctx)
}

// Stats returns a copy of the scheduler's counters.
func (s *Scheduler) Stats() SchedulerStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

func (s *Scheduler) runCycle(ctx context.Context) {
	var reopened, closed, failed int64

	for _, project := range s.projects {
		if ctx.Err() != nil {
			return
		}
		report, err := s.service.SyncProject(ctx, project)
		if err != nil {
			failed++
			s.logger.Printf("error syncing project %s: %v", project.Label(), err)
			continue
		}
		reopened += int64(report.Reopened)
		closed += int64(report.Closed)
		if report.Reopened > 0 || report.Closed > 0 || report.ThreadErrors > 0 {
			s.logger.Printf("project %s: open_issues=%d reopened=%d closed=%d missing=%d errors=%d",
				report.Project, report.OpenIssues, report.Reopened, report.Closed,
				report.ThreadsMissing, report.ThreadErrors)
		}
	}

	s.mu.Lock()
	s.stats.Cycles++
	s.stats.ProjectErrors += failed
	s.stats.Reopened += reopened
	s.stats.Closed += closed
	s.stats.LastCycleAt = time.Now().UTC()
	s.mu.Unlock()
}
