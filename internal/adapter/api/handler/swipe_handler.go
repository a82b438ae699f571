package handler

import (
	"github.com/labstack/echo/v4"

	"homeswipe/internal/usecase"
	"homeswipe/pkg/errors"
	"homeswipe/pkg/response"
)

type SwipeHandler struct {
	swipeUseCase *usecase.SwipeUseCase
}

func NewSwipeHandler(swipeUseCase *usecase.SwipeUseCase) *SwipeHandler {
	return &SwipeHandler{
		swipeUseCase: swipeUseCase,
	}
}

// RecordSwipe handles POST /v1/swipes. A right swipe responds with the
// pending match it created.
func (h *SwipeHandler) RecordSwipe(c echo.Context) error {
	uid := c.Get("uid").(string)

	var input usecase.RecordSwipeInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&input); err != nil {
		return response.Error(c, err)
	}

	result, err := h.swipeUseCase.RecordSwipe(c.Request().Context(), uid, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, result)
}

func (h *SwipeHandler) ListSwipes(c echo.Context) error {
	uid := c.Get("uid").(string)

	swipes, err := h.swipeUseCase.ListSwipes(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, swipes)
}
