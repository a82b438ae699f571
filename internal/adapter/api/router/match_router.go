package router

import (
	"github.com/labstack/echo/v4"

	"homeswipe/internal/adapter/api/handler"
	"homeswipe/internal/adapter/api/middleware"
)

func SetupMatchRouter(e *echo.Echo, matchHandler *handler.MatchHandler, chatHandler *handler.ChatHandler, authMiddleware *middleware.AuthMiddleware) {
	matchGroup := e.Group("/v1/matches")
	matchGroup.Use(authMiddleware.Authenticate)

	matchGroup.GET("", matchHandler.List)
	matchGroup.GET("/:id", matchHandler.GetByID)
	matchGroup.PATCH("/:id/status", matchHandler.UpdateStatus)

	matchGroup.GET("/:id/messages", chatHandler.GetMessages)
	matchGroup.POST("/:id/messages", chatHandler.SendMessage)
}
