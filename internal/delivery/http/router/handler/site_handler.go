package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "workforce/internal/delivery/context"
	"workforce/internal/delivery/http/response"
	"workforce/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SiteHandler serves the landing and liveness endpoints.
type SiteHandler struct {
	stats     usecase.StatsUsecase
	logger    *slog.Logger
	startedAt time.Time
}

// NewSiteHandler is the constructor for SiteHandler, injected by Fx.
func NewSiteHandler(stats usecase.StatsUsecase, logger *slog.Logger) *SiteHandler {
	return &SiteHandler{
		stats:     stats,
		logger:    logger,
		startedAt: time.Now().UTC(),
	}
}

// Home records a website visit and returns the service status payload.
func (h *SiteHandler) Home(c echo.Context) error {
	ctx := c.Request().Context()

	// A failed visit count never breaks the landing page.
	if err := h.stats.RecordVisit(ctx); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Failed to record visit",
			slog.Any("error", err),
		)
	}

	settings, err := h.stats.Settings(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"service": "workforce",
		"status":  "ok",
		"welcome": settings.WelcomeMessage,
	}, "")
}

// Health returns the liveness payload.
func (h *SiteHandler) Health(c echo.Context) error {
	snap, err := h.stats.Snapshot(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"status":       "ok",
		"uptime":       time.Since(h.startedAt).String(),
		"startupCount": snap.StartupCount,
	}, "")
}
