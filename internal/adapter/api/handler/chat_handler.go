package handler

import (
	"github.com/labstack/echo/v4"

	"homeswipe/internal/usecase"
	"homeswipe/pkg/errors"
	"homeswipe/pkg/response"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

type sendMessageRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

// GetMessages handles GET /v1/matches/:id/messages, oldest first.
func (h *ChatHandler) GetMessages(c echo.Context) error {
	uid := c.Get("uid").(string)

	messages, err := h.chatUseCase.GetMessages(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, messages)
}

// SendMessage handles POST /v1/matches/:id/messages. The REST path mirrors
// the WebSocket chat_message event for clients without a socket.
func (h *ChatHandler) SendMessage(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.chatUseCase.SendMessage(c.Request().Context(), uid, usecase.SendMessageInput{
		MatchID: c.Param("id"),
		Content: req.Content,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}
