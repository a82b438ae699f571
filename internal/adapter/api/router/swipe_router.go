package router

import (
	"github.com/labstack/echo/v4"

	"homeswipe/internal/adapter/api/handler"
	"homeswipe/internal/adapter/api/middleware"
)

func SetupSwipeRouter(e *echo.Echo, swipeHandler *handler.SwipeHandler, authMiddleware *middleware.AuthMiddleware) {
	swipeGroup := e.Group("/v1/swipes")
	swipeGroup.Use(authMiddleware.Authenticate)

	swipeGroup.POST("", swipeHandler.RecordSwipe)
	swipeGroup.GET("", swipeHandler.ListSwipes)
}
