package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ilgaur/auth-service/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// uniformTokenMessage is the single client-facing message for every token
// verification failure. The specific kind (malformed, bad signature, expired,
// missing subject) stays in logs and metrics only, so responses leak nothing
// about why a token was rejected.
const uniformTokenMessage = "invalid or expired token"

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps the enumerated domain errors to their HTTP status codes.
//   - Collapses all token verification failures into one uniform 401 body.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrDuplicateCredential):
		return http.StatusConflict, "username or email already registered"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrMissingAuthorization):
		return http.StatusUnauthorized, "missing authorization header"
	case errors.Is(err, domain.ErrMalformedAuthorization):
		return http.StatusUnauthorized, "malformed authorization header"
	case errors.Is(err, domain.ErrMalformedToken),
		errors.Is(err, domain.ErrSignatureInvalid),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrMissingSubject):
		return http.StatusUnauthorized, uniformTokenMessage
	case errors.Is(err, domain.ErrPrincipalNotFound):
		return http.StatusUnauthorized, "principal not found"
	case errors.Is(err, domain.ErrInsufficientPrivilege):
		return http.StatusForbidden, "insufficient privilege"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
