package quota

import (
	"context"
	"log"
	"sync"
	"time"
)

// dayFormat is the window key, one calendar day in the tracker's clock
const dayFormat = "2006-01-02"

// Store persists per-day usage counts so the budget survives restarts.
// Optional - a tracker without a store keeps state in memory only.
type Store interface {
	Usage(ctx context.Context, day string) (int, error)
	SaveUsage(ctx context.Context, day string, calls int) error
}

// State is a point-in-time snapshot of the quota window
type State struct {
	CallsUsed   int    `json:"calls_used"`
	DailyLimit  int    `json:"daily_limit"`
	WindowStart string `json:"window_start"` // YYYY-MM-DD
}

// Tracker enforces the shared daily call budget. All callers, ad-hoc search
// and trigger orchestration alike, draw from the same counter. Check and
// increment happen under one lock so concurrent attempts can't over-spend.
type Tracker struct {
	mu    sync.Mutex
	limit int
	used  int
	day   string
	nowFn func() time.Time
	store Store
}

// Option configures the tracker
type Option func(*Tracker)

// WithClock overrides the time source, used in tests to simulate day boundaries
func WithClock(nowFn func() time.Time) Option {
	return func(t *Tracker) { t.nowFn = nowFn }
}

// WithStore enables persistent usage tracking
func WithStore(store Store) Option {
	return func(t *Tracker) { t.store = store }
}

// New creates a tracker with the given daily limit. The current day's count is
// loaded from the store when one is configured, so a restart mid-day doesn't
// reset the budget.
func New(limit int, opts ...Option) *Tracker {
	if limit <= 0 {
		limit = 100 // upstream account-level cap
	}

	t := &Tracker{limit: limit, nowFn: time.Now}
	for _, opt := range opts {
		opt(t)
	}
	t.day = t.nowFn().Format(dayFormat)

	if t.store != nil {
		used, err := t.store.Usage(context.Background(), t.day)
		if err != nil {
			log.Printf("[WARN] failed to load quota usage for %s: %v", t.day, err)
		} else {
			t.used = used
		}
	}

	return t
}

// AttemptCall requests permission for one upstream call. On a new calendar day
// the counter resets before evaluation. Permission charges the budget by
// exactly one; a denied attempt charges nothing.
func (t *Tracker) AttemptCall(ctx context.Context) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.roll()

	if t.used >= t.limit {
		return false
	}
	t.used++

	if t.store != nil {
		// in-memory count stays authoritative, persistence is best-effort
		if err := t.store.SaveUsage(ctx, t.day, t.used); err != nil {
			log.Printf("[WARN] failed to persist quota usage: %v", err)
		}
	}

	return true
}

// State returns a snapshot of the current window
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.roll()
	return State{CallsUsed: t.used, DailyLimit: t.limit, WindowStart: t.day}
}

// Remaining returns the number of calls still permitted today
func (t *Tracker) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.roll()
	return t.limit - t.used
}

// roll resets the counter when the stored window no longer matches the current
// date. Caller must hold the lock.
func (t *Tracker) roll() {
	today := t.nowFn().Format(dayFormat)
	if today == t.day {
		return
	}
	log.Printf("[INFO] quota window rolled from %s to %s, %d calls used in previous window", t.day, today, t.used)
	t.day = today
	t.used = 0
}
