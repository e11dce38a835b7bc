package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/auction-marketplace/internal/core/domain"
	"github.com/99minutos/auction-marketplace/internal/core/ports"
)

type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Get handles GET /api/users/:userId.
//
// @Summary      Public user profile
// @Description  The user with the products they sell (each with its bids) and the bids they placed (each with its product and that product's bids).
// @Tags         users
// @Produce      json
// @Param        userId  path      int  true  "User ID"
// @Success      200     {object}  userProfileResponse
// @Failure      404     {object}  errorResponse
// @Router       /api/users/{userId} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c, "userId", domain.ErrUserNotFound)
	if err != nil {
		return err
	}

	user, err := h.service.GetProfile(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserProfile(user))
}
