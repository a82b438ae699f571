package router

import (
	"github.com/labstack/echo/v4"

	"homeswipe/internal/adapter/api/handler"
	"homeswipe/internal/adapter/api/middleware"
)

func SetupPropertyRouter(e *echo.Echo, propertyHandler *handler.PropertyHandler, matchHandler *handler.MatchHandler, authMiddleware *middleware.AuthMiddleware) {
	propertyGroup := e.Group("/v1/properties")
	propertyGroup.Use(authMiddleware.Authenticate)

	propertyGroup.POST("", propertyHandler.Create)
	propertyGroup.GET("/feed", propertyHandler.Feed)
	propertyGroup.GET("/mine", propertyHandler.ListOwn)
	propertyGroup.GET("/:id", propertyHandler.GetByID)
	propertyGroup.PATCH("/:id", propertyHandler.Update)
	propertyGroup.DELETE("/:id", propertyHandler.Delete)

	propertyGroup.GET("/:id/pending-matches", matchHandler.ListPendingForProperty)
}
