package handler

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strings"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"homeswipe/internal/infrastructure/firebase"
	ws "homeswipe/internal/infrastructure/websocket"
	"homeswipe/internal/usecase"
	"homeswipe/pkg/errors"
	"homeswipe/pkg/logger"
	"homeswipe/pkg/response"
)

type WebSocketHandler struct {
	wsManager   *ws.Manager
	authClient  *firebase.FirebaseAuthClient
	chatUseCase *usecase.ChatUseCase
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Restrict this in production
	},
}

func NewWebSocketHandler(wsManager *ws.Manager, authClient *firebase.FirebaseAuthClient, chatUseCase *usecase.ChatUseCase) *WebSocketHandler {
	return &WebSocketHandler{
		wsManager:   wsManager,
		authClient:  authClient,
		chatUseCase: chatUseCase,
	}
}

// HandleWebSocket authenticates the caller, upgrades the connection, and
// starts the read/write pumps. The token comes from the Authorization header
// or, for browser clients that cannot set headers on a WebSocket, the
// "token" query parameter.
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	token := bearerToken(c)
	if token == "" {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	userID, err := h.authClient.VerifyToken(c.Request().Context(), token)
	if err != nil {
		return response.Error(c, errors.Unauthorized("Invalid or expired token", err))
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Internal("Failed to upgrade connection", err)
	}

	client := ws.NewClient(userID, conn, h.handleInbound)

	h.wsManager.Register <- client

	go client.ReadPump(h.wsManager)
	go client.WritePump()

	return nil
}

func bearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}

	return c.QueryParam("token")
}

// handleInbound dispatches one inbound frame. A bad frame gets an error
// event back on the sender's connection; the connection stays open.
func (h *WebSocketHandler) handleInbound(userID string, payload []byte) {
	var event ws.Event
	if err := json.Unmarshal(payload, &event); err != nil {
		h.sendError(userID, "INVALID_PAYLOAD", "Malformed event payload")
		return
	}

	switch event.Type {
	case ws.EventChatMessage:
		h.handleChatMessage(userID, event.Payload)
	default:
		h.sendError(userID, "UNKNOWN_EVENT", "Unsupported event type: "+event.Type)
	}
}

func (h *WebSocketHandler) handleChatMessage(userID string, payload json.RawMessage) {
	var msg ws.ChatMessagePayload
	if err := json.Unmarshal(payload, &msg); err != nil {
		h.sendError(userID, "INVALID_PAYLOAD", "Malformed chat_message payload")
		return
	}

	if msg.MatchID == "" || strings.TrimSpace(msg.Content) == "" {
		h.sendError(userID, "VALIDATION_ERROR", "match_id and content are required")
		return
	}

	_, err := h.chatUseCase.SendMessage(context.Background(), userID, usecase.SendMessageInput{
		MatchID: msg.MatchID,
		Content: msg.Content,
	})
	if err != nil {
		code, message := errorCode(err)
		h.sendError(userID, code, message)
	}
}

func (h *WebSocketHandler) sendError(userID, code, message string) {
	frame, err := ws.NewEvent(ws.EventError, ws.ErrorPayload{
		Code:    code,
		Message: message,
	})
	if err != nil {
		logger.Error("Failed to encode error event: %v", err)
		return
	}

	h.wsManager.SendToUser(userID, frame)
}

func errorCode(err error) (string, string) {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code, appErr.Message
	}
	return "INTERNAL_ERROR", "Failed to process message"
}
