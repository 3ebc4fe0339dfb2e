package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/ilgaur/auth-service/internal/api/metrics"
	"github.com/ilgaur/auth-service/internal/core/domain"
	"github.com/ilgaur/auth-service/internal/core/ports"
)

// principalKey is the echo context key under which Authenticate stores the
// resolved principal.
const principalKey = "principal"

// Authenticate runs the authorization chain on every request and injects the
// resulting principal into the context. Failures propagate to the central
// error handler, which renders the appropriate status.
func Authenticate(authorizer ports.Authorizer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)

			principal, err := authorizer.Authenticate(c.Request().Context(), header)
			if err != nil {
				metrics.AuthorizationFailuresTotal.WithLabelValues(failureReason(err)).Inc()
				return err
			}

			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// RequireAdmin gates a route on admin privilege. Must run after Authenticate.
func RequireAdmin(authorizer ports.Authorizer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := PrincipalFromContext(c)
			if principal == nil {
				metrics.AuthorizationFailuresTotal.WithLabelValues("no_principal").Inc()
				return domain.ErrMissingAuthorization
			}

			if _, err := authorizer.RequireAdmin(principal); err != nil {
				metrics.AuthorizationFailuresTotal.WithLabelValues(failureReason(err)).Inc()
				return err
			}
			return next(c)
		}
	}
}

// PrincipalFromContext returns the principal stored by Authenticate, or nil
// when the middleware did not run.
func PrincipalFromContext(c echo.Context) *domain.Principal {
	principal, _ := c.Get(principalKey).(*domain.Principal)
	return principal
}

// failureReason maps a chain error to its metrics label.
func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingAuthorization):
		return "missing_header"
	case errors.Is(err, domain.ErrMalformedAuthorization):
		return "malformed_header"
	case errors.Is(err, domain.ErrMalformedToken):
		return "malformed_token"
	case errors.Is(err, domain.ErrSignatureInvalid):
		return "signature_invalid"
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrMissingSubject):
		return "missing_subject"
	case errors.Is(err, domain.ErrPrincipalNotFound):
		return "principal_not_found"
	case errors.Is(err, domain.ErrInsufficientPrivilege):
		return "insufficient_privilege"
	default:
		return "internal"
	}
}
