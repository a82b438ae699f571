package handler

import (
	"github.com/labstack/echo/v4"

	"homeswipe/internal/usecase"
	"homeswipe/pkg/errors"
	"homeswipe/pkg/response"
)

type PropertyHandler struct {
	propertyUseCase *usecase.PropertyUseCase
}

func NewPropertyHandler(propertyUseCase *usecase.PropertyUseCase) *PropertyHandler {
	return &PropertyHandler{
		propertyUseCase: propertyUseCase,
	}
}

func (h *PropertyHandler) Create(c echo.Context) error {
	uid := c.Get("uid").(string)

	var input usecase.CreatePropertyInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&input); err != nil {
		return response.Error(c, err)
	}

	property, err := h.propertyUseCase.Create(c.Request().Context(), uid, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, property)
}

func (h *PropertyHandler) GetByID(c echo.Context) error {
	property, err := h.propertyUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, property)
}

// ListOwn returns the landlord's own listings, active or not.
func (h *PropertyHandler) ListOwn(c echo.Context) error {
	uid := c.Get("uid").(string)

	properties, err := h.propertyUseCase.ListOwn(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, properties)
}

// Feed returns the buyer's ranked swipe deck.
func (h *PropertyHandler) Feed(c echo.Context) error {
	uid := c.Get("uid").(string)

	feed, err := h.propertyUseCase.Feed(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, feed)
}

func (h *PropertyHandler) Update(c echo.Context) error {
	uid := c.Get("uid").(string)

	var input usecase.UpdatePropertyInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&input); err != nil {
		return response.Error(c, err)
	}

	property, err := h.propertyUseCase.Update(c.Request().Context(), uid, c.Param("id"), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, property)
}

func (h *PropertyHandler) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.propertyUseCase.Delete(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Property deleted",
	})
}
