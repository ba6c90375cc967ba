package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/salescope/pkg/domain"
	"github.com/umputun/salescope/pkg/trigger"
)

// stubRunner replays one canned batch per run
type stubRunner struct {
	results []domain.FetchResult
	regions []string
	runs    int32
}

func (r *stubRunner) RunTriggers(_ context.Context, _ trigger.Catalog, region string) []domain.FetchResult {
	atomic.AddInt32(&r.runs, 1)
	r.regions = append(r.regions, region)
	return r.results
}

func TestScheduler_RefreshNow(t *testing.T) {
	runner := &stubRunner{results: []domain.FetchResult{
		{Trigger: "funding", Status: domain.StatusOK, Articles: []domain.Article{{ID: "a1"}, {ID: "a2"}}},
		{Trigger: "expansion", Status: domain.StatusOK, Articles: []domain.Article{{ID: "a1"}}},
		{Trigger: "leadership", Status: domain.StatusQuotaExceeded, Articles: []domain.Article{}},
	}}

	sched := New(runner, Config{SnapshotTTL: 24 * time.Hour, Region: "Singapore"})

	_, ok := sched.Latest()
	assert.False(t, ok, "no snapshot before first refresh")

	snap := sched.RefreshNow(context.Background())

	assert.Len(t, snap.Results, 3)
	assert.Len(t, snap.Articles, 2, "merged articles deduplicated")
	assert.Equal(t, snap.ExpiresAt, snap.FetchedAt.Add(24*time.Hour))
	assert.Equal(t, []string{"Singapore"}, runner.regions)

	latest, ok := sched.Latest()
	require.True(t, ok)
	assert.Equal(t, snap.FetchedAt, latest.FetchedAt)
}

func TestScheduler_Run(t *testing.T) {
	runner := &stubRunner{results: []domain.FetchResult{}}
	sched := New(runner, Config{RefreshInterval: 20 * time.Millisecond})

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Millisecond)
	defer cancel()

	require.NoError(t, sched.Run(ctx))

	// immediate run plus at least one tick
	assert.GreaterOrEqual(t, atomic.LoadInt32(&runner.runs), int32(2))

	_, ok := sched.Latest()
	assert.True(t, ok)
}
