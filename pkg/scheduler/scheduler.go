package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/salescope/pkg/domain"
	"github.com/umputun/salescope/pkg/trigger"
)

// TriggerRunner runs the full trigger batch
type TriggerRunner interface {
	RunTriggers(ctx context.Context, active trigger.Catalog, region string) []domain.FetchResult
}

// Snapshot is the most recent trigger batch outcome, kept for one retrieval
// cycle only. ExpiresAt marks when the data should be considered stale.
type Snapshot struct {
	Results   []domain.FetchResult `json:"results"`
	Articles  []domain.Article     `json:"articles"` // merged and deduplicated
	FetchedAt time.Time            `json:"fetched_at"`
	ExpiresAt time.Time            `json:"expires_at"`
}

// Config holds scheduler configuration
type Config struct {
	RefreshInterval time.Duration // how often the trigger batch re-runs
	SnapshotTTL     time.Duration // how long a snapshot stays fresh
	Region          string        // optional region scope for all trigger queries
}

// Scheduler periodically re-runs the full trigger batch and keeps the latest
// snapshot in memory for the API surface to serve. Quota exhaustion just
// produces a snapshot with quota_exceeded entries; the next window recovers.
type Scheduler struct {
	runner   TriggerRunner
	interval time.Duration
	ttl      time.Duration
	region   string
	nowFn    func() time.Time

	mu       sync.RWMutex
	snapshot *Snapshot
}

// New creates a scheduler over the given trigger runner
func New(runner TriggerRunner, cfg Config) *Scheduler {
	if cfg.RefreshInterval == 0 {
		cfg.RefreshInterval = 6 * time.Hour
	}
	if cfg.SnapshotTTL == 0 {
		cfg.SnapshotTTL = 24 * time.Hour
	}

	return &Scheduler{
		runner:   runner,
		interval: cfg.RefreshInterval,
		ttl:      cfg.SnapshotTTL,
		region:   cfg.Region,
		nowFn:    time.Now,
	}
}

// Run refreshes the snapshot immediately and then on every interval tick until
// the context is canceled
func (s *Scheduler) Run(ctx context.Context) error {
	lgr.Printf("[INFO] scheduler started, refresh interval %v", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.RefreshNow(ctx)

	for {
		select {
		case <-ctx.Done():
			lgr.Printf("[INFO] scheduler stopped")
			return nil
		case <-ticker.C:
			s.RefreshNow(ctx)
		}
	}
}

// RefreshNow runs the full trigger batch and replaces the stored snapshot
func (s *Scheduler) RefreshNow(ctx context.Context) Snapshot {
	results := s.runner.RunTriggers(ctx, nil, s.region)
	articles := trigger.Merge(results)

	now := s.nowFn()
	snap := Snapshot{
		Results:   results,
		Articles:  articles,
		FetchedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	s.snapshot = &snap
	s.mu.Unlock()

	lgr.Printf("[INFO] trigger snapshot refreshed, %d unique articles from %d triggers", len(articles), len(results))
	return snap
}

// Latest returns the most recent snapshot, false when none has been taken yet
func (s *Scheduler) Latest() (Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snapshot == nil {
		return Snapshot{}, false
	}
	return *s.snapshot, true
}
