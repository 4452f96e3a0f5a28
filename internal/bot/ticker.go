package bot

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/coinherald/coinherald/internal/config"
	"github.com/coinherald/coinherald/internal/domain"
)

// cycleSteps is how many presence updates one successful poll drives.
const cycleSteps = 10

// retryPresence is the fixed degraded-mode status string.
const retryPresence = "Could not retrieve BTC data. Retrying in 60 seconds"

// StatusTicker polls the ticker endpoint and cycles the bot presence
// through the derived quote strings. In normal mode it runs for the process
// lifetime; in debug mode it performs exactly one outer iteration with
// near-zero sleeps and returns.
type StatusTicker struct {
	market     MarketData
	gw         Gateway
	cache      *SnapshotCache
	interval   time.Duration
	retryDelay time.Duration
	debug      bool
	logger     *slog.Logger
}

func NewStatusTicker(cfg config.TickerConfig, market MarketData, gw Gateway, cache *SnapshotCache, logger *slog.Logger) *StatusTicker {
	interval := cfg.Interval
	if interval <= 0 {
		interval = 20 * time.Second
	}
	retry := cfg.RetryDelay
	if retry <= 0 {
		retry = 60 * time.Second
	}
	if cfg.Debug {
		interval = time.Millisecond
		retry = time.Millisecond
	}
	return &StatusTicker{
		market:     market,
		gw:         gw,
		cache:      cache,
		interval:   interval,
		retryDelay: retry,
		debug:      cfg.Debug,
		logger:     logger,
	}
}

// Run is the outer polling loop. It holds no locks shared with the router,
// so the two flows can never deadlock against each other.
func (t *StatusTicker) Run(ctx context.Context) {
	t.logger.Info("status ticker started",
		slog.Duration("interval", t.interval),
		slog.Bool("debug", t.debug),
	)
	for {
		t.logger.Debug("getting new ticker data")
		snap, err := t.market.Ticker(ctx)
		if err != nil {
			// Degraded: fixed retry presence, backoff, poll again.
			t.logger.Warn("ticker fetch failed", slog.String("err", err.Error()))
			t.setPresence(ctx, retryPresence)
			if !t.sleep(ctx, t.retryDelay) {
				return
			}
		} else {
			if t.cache != nil {
				t.cache.Set(snap)
			}
			if !t.cycle(ctx, snap) {
				return
			}
		}
		if t.debug {
			t.logger.Info("status ticker stopping (debug)")
			return
		}
		if ctx.Err() != nil {
			t.logger.Info("status ticker stopped")
			return
		}
	}
}

// cycle is the Cycling state: exactly cycleSteps presence updates drawn
// round-robin from the snapshot's quotes. Returns false when the context
// ended mid-cycle.
func (t *StatusTicker) cycle(ctx context.Context, snap domain.TickerSnapshot) bool {
	messages := presenceMessages(snap)
	for i := 0; i < cycleSteps; i++ {
		t.setPresence(ctx, messages[i%len(messages)])
		if !t.sleep(ctx, t.interval) {
			return false
		}
	}
	return true
}

func (t *StatusTicker) setPresence(ctx context.Context, status string) {
	if err := t.gw.SetPresence(ctx, status); err != nil {
		t.logger.Error("presence update failed", slog.String("err", err.Error()))
	}
}

// sleep waits for d or until the context ends; false means cancelled.
func (t *StatusTicker) sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// SnapshotCache holds the latest successful ticker snapshot for readers
// outside the loop (the ops HTTP surface).
type SnapshotCache struct {
	mu   sync.RWMutex
	snap domain.TickerSnapshot
	at   time.Time
	ok   bool
}

func NewSnapshotCache() *SnapshotCache {
	return &SnapshotCache{}
}

func (c *SnapshotCache) Set(snap domain.TickerSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap = snap
	c.at = time.Now().UTC()
	c.ok = true
}

// Get returns the cached snapshot, its fetch time, and whether a snapshot
// has been stored yet.
func (c *SnapshotCache) Get() (domain.TickerSnapshot, time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap, c.at, c.ok
}
