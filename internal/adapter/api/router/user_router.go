package router

import (
	"github.com/labstack/echo/v4"

	"homeswipe/internal/adapter/api/handler"
	"homeswipe/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, userHandler *handler.UserHandler, authMiddleware *middleware.AuthMiddleware) {
	authGroup := e.Group("/v1/auth")
	authGroup.Use(authMiddleware.Authenticate)
	authGroup.GET("/me", userHandler.Me)

	userGroup := e.Group("/v1/users")
	userGroup.Use(authMiddleware.Authenticate)
	userGroup.PATCH("/me", userHandler.UpdateProfile)
	userGroup.GET("/:id", userHandler.GetByID)
}
