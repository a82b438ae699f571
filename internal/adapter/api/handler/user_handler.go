package handler

import (
	"github.com/labstack/echo/v4"

	"homeswipe/internal/infrastructure/firebase"
	"homeswipe/internal/usecase"
	"homeswipe/pkg/errors"
	"homeswipe/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
	authClient  *firebase.FirebaseAuthClient
}

func NewUserHandler(userUseCase *usecase.UserUseCase, authClient *firebase.FirebaseAuthClient) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		authClient:  authClient,
	}
}

// Me returns the caller's profile, creating it on first login.
func (h *UserHandler) Me(c echo.Context) error {
	uid := c.Get("uid").(string)

	email, err := h.authClient.GetUserEmail(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, errors.Internal("Failed to look up account", err))
	}

	user, err := h.userUseCase.EnsureUser(c.Request().Context(), uid, email)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) GetByID(c echo.Context) error {
	user, err := h.userUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	var input usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&input); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), uid, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}
