package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ilgaur/auth-service/internal/api/middleware"
	"github.com/ilgaur/auth-service/internal/core/domain"
	"github.com/ilgaur/auth-service/internal/core/ports"
)

// UserHandler serves the protected user endpoints.
type UserHandler struct {
	repo ports.UserRepository
}

func NewUserHandler(repo ports.UserRepository) *UserHandler {
	return &UserHandler{repo: repo}
}

// Me returns the authenticated caller's own account summary.
//
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userSummary
// @Failure      401  {object}  map[string]string
// @Router       /me [get]
func (h *UserHandler) Me(c echo.Context) error {
	principal := middleware.PrincipalFromContext(c)
	if principal == nil {
		return domain.ErrMissingAuthorization
	}
	return c.JSON(http.StatusOK, summarize(principal.User))
}

// GetUser returns any user's account record. Admin only.
//
// @Summary      Look up a user by username
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  userSummary
// @Failure      401       {object}  map[string]string
// @Failure      403       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /admin/users/{username} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.repo.FindByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summarize(user))
}
