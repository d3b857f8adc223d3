package handler

import (
	"net/http"

	"workforce/internal/delivery/http/response"
	"workforce/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WorkerHandler holds dependencies for worker lifecycle handlers.
type WorkerHandler struct {
	uc usecase.WorkerUsecase
}

// NewWorkerHandler is the constructor for WorkerHandler, injected by Fx.
func NewWorkerHandler(uc usecase.WorkerUsecase) *WorkerHandler {
	return &WorkerHandler{uc: uc}
}

// Apply handles a new worker application.
func (h *WorkerHandler) Apply(c echo.Context) error {
	var input usecase.WorkerApplicationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid application input")
	}

	worker, err := h.uc.Apply(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, worker, "Application submitted")
}

// List returns all workers, newest application first.
func (h *WorkerHandler) List(c echo.Context) error {
	workers, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, workers, "")
}

// Approve moves a pending application to approved.
func (h *WorkerHandler) Approve(c echo.Context) error {
	worker, err := h.uc.Approve(c.Request().Context(), c.Param("id"), actorID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, worker, "Worker approved")
}

// Reject removes the application.
func (h *WorkerHandler) Reject(c echo.Context) error {
	if err := h.uc.Reject(c.Request().Context(), c.Param("id"), actorID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Worker rejected")
}

// MakeAdmin promotes an approved worker. Super admin only.
func (h *WorkerHandler) MakeAdmin(c echo.Context) error {
	if err := h.uc.MakeAdmin(c.Request().Context(), c.Param("id"), actorID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Worker promoted to admin")
}

// RemoveAdmin demotes an admin worker. Super admin only.
func (h *WorkerHandler) RemoveAdmin(c echo.Context) error {
	if err := h.uc.RemoveAdmin(c.Request().Context(), c.Param("id"), actorID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Admin role removed")
}

// Delete removes the worker with an audit snapshot.
func (h *WorkerHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id"), actorID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Worker deleted")
}
