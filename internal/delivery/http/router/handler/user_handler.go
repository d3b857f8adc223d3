package handler

import (
	"net/http"

	"workforce/internal/delivery/http/response"
	"workforce/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// CreateOrUpdate handles the profile upsert request.
func (h *UserHandler) CreateOrUpdate(c echo.Context) error {
	var input usecase.UserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	user, err := h.uc.CreateOrUpdateUser(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User saved")
}

// Get returns the profile plus authorization snapshot.
func (h *UserHandler) Get(c echo.Context) error {
	snap, err := h.uc.GetUserSnapshot(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, snap, "")
}
