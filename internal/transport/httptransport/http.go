package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/coinherald/coinherald/internal/domain"
	"github.com/labstack/echo/v4"
)

// SnapshotReader exposes the latest ticker snapshot from the status loop.
type SnapshotReader interface {
	Get() (domain.TickerSnapshot, time.Time, bool)
}

// Status is the /status response body.
type Status struct {
	Symbol    string         `json:"symbol"`
	Quotes    []domain.Quote `json:"quotes"`
	FetchedAt time.Time      `json:"fetched_at"`
}

// StatusHandler serves the ops endpoints: liveness and the last ticker
// snapshot.
type StatusHandler struct {
	logger *slog.Logger
	cache  SnapshotReader
}

func NewStatusHandler(logger *slog.Logger, cache SnapshotReader) *StatusHandler {
	return &StatusHandler{logger: logger, cache: cache}
}

func (h *StatusHandler) RegisterRoutes(r interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}) {
	r.GET("/healthz", h.Health)
	r.GET("/status", h.GetStatus)
}

func (h *StatusHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (h *StatusHandler) GetStatus(c echo.Context) error {
	snap, at, ok := h.cache.Get()
	if !ok {
		// Nothing polled yet (or the provider has been down since start).
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no_snapshot_yet"})
	}
	return c.JSON(http.StatusOK, Status{
		Symbol:    snap.Symbol,
		Quotes:    snap.Quotes(),
		FetchedAt: at,
	})
}
