package bot_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/coinherald/coinherald/internal/bot"
	"github.com/coinherald/coinherald/internal/bot/mocks"
	"github.com/coinherald/coinherald/internal/config"
	"github.com/golang/mock/gomock"
)

func debugTickerConfig() config.TickerConfig {
	return config.TickerConfig{
		Interval:   20 * time.Second,
		RetryDelay: 60 * time.Second,
		Debug:      true,
	}
}

func TestStatusTicker_DebugCyclesExactlyTenTimes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	market := mocks.NewMockMarketData(ctrl)
	gw := mocks.NewMockGateway(ctrl)

	market.EXPECT().Ticker(gomock.Any()).Return(testSnapshot(), nil)

	allowed := map[string]bool{
		"15m: $478.68":  true,
		"Last: $478.68": true,
		"Buy: $478.55":  true,
		"Sell: $478.68": true,
	}
	var got []string
	gw.EXPECT().SetPresence(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, status string) error {
			got = append(got, status)
			return nil
		}).Times(10)

	ticker := bot.NewStatusTicker(debugTickerConfig(), market, gw, bot.NewSnapshotCache(), slog.Default())

	done := make(chan struct{})
	go func() {
		ticker.Run(context.Background())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("debug ticker did not terminate")
	}

	if len(got) != 10 {
		t.Fatalf("expected 10 presence updates, got %d", len(got))
	}
	for _, status := range got {
		if !allowed[status] {
			t.Errorf("unexpected presence %q", status)
		}
	}
}

func TestStatusTicker_DegradedSetsRetryPresence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	market := mocks.NewMockMarketData(ctrl)
	gw := mocks.NewMockGateway(ctrl)

	market.EXPECT().Ticker(gomock.Any()).Return(testSnapshot(), errors.New("503 unavailable"))
	gw.EXPECT().SetPresence(gomock.Any(),
		"Could not retrieve BTC data. Retrying in 60 seconds").Return(nil)

	ticker := bot.NewStatusTicker(debugTickerConfig(), market, gw, nil, slog.Default())

	done := make(chan struct{})
	go func() {
		ticker.Run(context.Background())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("debug ticker did not terminate after degraded poll")
	}
}

func TestStatusTicker_PublishesSnapshotToCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	market := mocks.NewMockMarketData(ctrl)
	gw := mocks.NewMockGateway(ctrl)
	cache := bot.NewSnapshotCache()

	market.EXPECT().Ticker(gomock.Any()).Return(testSnapshot(), nil)
	gw.EXPECT().SetPresence(gomock.Any(), gomock.Any()).Return(nil).Times(10)

	ticker := bot.NewStatusTicker(debugTickerConfig(), market, gw, cache, slog.Default())
	ticker.Run(context.Background())

	snap, at, ok := cache.Get()
	if !ok {
		t.Fatal("cache not populated after successful poll")
	}
	if snap.Last != 478.68 || snap.Symbol != "$" {
		t.Fatalf("unexpected cached snapshot: %+v", snap)
	}
	if at.IsZero() {
		t.Fatal("cache fetch time not set")
	}
}

func TestStatusTicker_CancelStopsCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	market := mocks.NewMockMarketData(ctrl)
	gw := mocks.NewMockGateway(ctrl)

	// Long interval, non-debug: cancellation must break the cycle sleep.
	cfg := config.TickerConfig{Interval: time.Hour, RetryDelay: time.Hour}
	market.EXPECT().Ticker(gomock.Any()).Return(testSnapshot(), nil)
	gw.EXPECT().SetPresence(gomock.Any(), gomock.Any()).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	ticker := bot.NewStatusTicker(cfg, market, gw, nil, slog.Default())

	done := make(chan struct{})
	go func() {
		ticker.Run(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("ticker did not stop on context cancel")
	}
}
