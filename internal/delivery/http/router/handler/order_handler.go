package handler

import (
	"net/http"

	"workforce/internal/delivery/http/response"
	"workforce/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order lifecycle handlers.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create handles public order intake.
func (h *OrderHandler) Create(c echo.Context) error {
	var input usecase.OrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	order, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order created")
}

// List returns all orders, newest first.
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

type assignOrderRequest struct {
	WorkerID string `json:"workerId" validate:"required"`
}

// Assign records the responsible worker for an order.
func (h *OrderHandler) Assign(c echo.Context) error {
	var req assignOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assignment input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Assign(c.Request().Context(), c.Param("id"), req.WorkerID, actorID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order assigned")
}

// Process advances the order to processing.
func (h *OrderHandler) Process(c echo.Context) error {
	if err := h.uc.Process(c.Request().Context(), c.Param("id"), actorID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order processing")
}

// Deliver advances the order to delivered.
func (h *OrderHandler) Deliver(c echo.Context) error {
	if err := h.uc.Deliver(c.Request().Context(), c.Param("id"), actorID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order delivered")
}

type orderCommentRequest struct {
	Comment string `json:"comment" validate:"required"`
}

// Comment appends a comment to an order.
func (h *OrderHandler) Comment(c echo.Context) error {
	var req orderCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.AddComment(c.Request().Context(), c.Param("id"), req.Comment, actorID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Comment added")
}
