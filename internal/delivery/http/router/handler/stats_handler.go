package handler

import (
	"net/http"

	"workforce/internal/delivery/http/response"
	"workforce/internal/domain/entity"
	"workforce/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StatsHandler holds dependencies for statistics handlers.
type StatsHandler struct {
	uc usecase.StatsUsecase
}

// NewStatsHandler is the constructor for StatsHandler, injected by Fx.
func NewStatsHandler(uc usecase.StatsUsecase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// Statistics returns the full derived counter snapshot.
func (h *StatsHandler) Statistics(c echo.Context) error {
	snap, err := h.uc.Snapshot(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, snap, "")
}

// States returns the region list riders choose from.
func (h *StatsHandler) States(c echo.Context) error {
	return response.Success(c, http.StatusOK, entity.Regions, "")
}
