package handler

import (
	"net/http"

	"workforce/internal/delivery/http/response"
	"workforce/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MessageHandler holds dependencies for conversation handlers.
type MessageHandler struct {
	uc usecase.MessageUsecase
}

// NewMessageHandler is the constructor for MessageHandler, injected by Fx.
func NewMessageHandler(uc usecase.MessageUsecase) *MessageHandler {
	return &MessageHandler{uc: uc}
}

// Send appends a message to the shared conversation.
func (h *MessageHandler) Send(c echo.Context) error {
	var input usecase.MessageInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}

	msg, err := h.uc.Send(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, msg, "Message sent")
}

// Conversation returns the shared ordered sequence for the pair.
func (h *MessageHandler) Conversation(c echo.Context) error {
	messages, err := h.uc.Conversation(c.Request().Context(), c.Param("id1"), c.Param("id2"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages, "")
}
