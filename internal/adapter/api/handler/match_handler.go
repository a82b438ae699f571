package handler

import (
	"github.com/labstack/echo/v4"

	"homeswipe/internal/usecase"
	"homeswipe/pkg/errors"
	"homeswipe/pkg/response"
)

type MatchHandler struct {
	matchUseCase *usecase.MatchUseCase
}

func NewMatchHandler(matchUseCase *usecase.MatchUseCase) *MatchHandler {
	return &MatchHandler{
		matchUseCase: matchUseCase,
	}
}

func (h *MatchHandler) List(c echo.Context) error {
	uid := c.Get("uid").(string)

	matches, err := h.matchUseCase.ListForUser(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, matches)
}

func (h *MatchHandler) GetByID(c echo.Context) error {
	uid := c.Get("uid").(string)

	match, err := h.matchUseCase.GetMatch(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, match)
}

// UpdateStatus handles PATCH /v1/matches/:id/status. Landlord-only.
func (h *MatchHandler) UpdateStatus(c echo.Context) error {
	uid := c.Get("uid").(string)

	var input usecase.UpdateMatchStatusInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&input); err != nil {
		return response.Error(c, err)
	}

	match, err := h.matchUseCase.SetStatus(c.Request().Context(), uid, c.Param("id"), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, match)
}

// ListPendingForProperty handles GET /v1/properties/:id/pending-matches.
func (h *MatchHandler) ListPendingForProperty(c echo.Context) error {
	uid := c.Get("uid").(string)

	matches, err := h.matchUseCase.ListPendingForProperty(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, matches)
}
