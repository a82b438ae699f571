package router

import (
	"github.com/labstack/echo/v4"

	"homeswipe/internal/adapter/api/handler"
	"homeswipe/internal/adapter/api/middleware"
)

func Setup(
	e *echo.Echo,
	authMiddleware *middleware.AuthMiddleware,
	userHandler *handler.UserHandler,
	propertyHandler *handler.PropertyHandler,
	swipeHandler *handler.SwipeHandler,
	matchHandler *handler.MatchHandler,
	chatHandler *handler.ChatHandler,
	wsHandler *handler.WebSocketHandler,
) {
	SetupHealthRouter(e)
	SetupUserRouter(e, userHandler, authMiddleware)
	SetupPropertyRouter(e, propertyHandler, matchHandler, authMiddleware)
	SetupSwipeRouter(e, swipeHandler, authMiddleware)
	SetupMatchRouter(e, matchHandler, chatHandler, authMiddleware)
	SetupWebSocketRouter(e, wsHandler)
}
