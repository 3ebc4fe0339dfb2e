package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ilgaur/auth-service/internal/api/metrics"
	"github.com/ilgaur/auth-service/internal/core/domain"
	"github.com/ilgaur/auth-service/internal/core/ports"
)

type AuthHandler struct {
	credentials ports.CredentialService
}

func NewAuthHandler(credentials ports.CredentialService) *AuthHandler {
	return &AuthHandler{credentials: credentials}
}

type signupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// userSummary is the caller-facing projection of a user; the password hash
// never leaves the service.
type userSummary struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

func summarize(u *domain.User) userSummary {
	return userSummary{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		IsActive:  u.IsActive,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt.UTC(),
	}
}

// Signup registers a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Signup details"
// @Success      201   {object}  userSummary
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.credentials.Signup(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		metrics.SignupsTotal.WithLabelValues(signupResult(err)).Inc()
		return err
	}

	metrics.SignupsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, summarize(user))
}

// Login authenticates a user and returns a signed bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.credentials.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.TokensIssuedTotal.Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Token:    token,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	})
}

func signupResult(err error) string {
	if errors.Is(err, domain.ErrDuplicateCredential) {
		return "duplicate"
	}
	return "error"
}

func loginResult(err error) string {
	if errors.Is(err, domain.ErrInvalidCredentials) {
		return "invalid_credentials"
	}
	return "error"
}
