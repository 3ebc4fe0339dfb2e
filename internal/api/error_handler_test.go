package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ilgaur/auth-service/internal/core/domain"
)

func testContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestResolveError_DomainMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
		msg  string
	}{
		{domain.ErrDuplicateCredential, http.StatusConflict, "username or email already registered"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{domain.ErrMissingAuthorization, http.StatusUnauthorized, "missing authorization header"},
		{domain.ErrMalformedAuthorization, http.StatusUnauthorized, "malformed authorization header"},
		{domain.ErrPrincipalNotFound, http.StatusUnauthorized, "principal not found"},
		{domain.ErrInsufficientPrivilege, http.StatusForbidden, "insufficient privilege"},
		{domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
	}

	for _, tc := range cases {
		code, msg := resolveError(tc.err, zerolog.Nop(), testContext())
		if code != tc.code || msg != tc.msg {
			t.Fatalf("%v: expected (%d, %q), got (%d, %q)", tc.err, tc.code, tc.msg, code, msg)
		}
	}
}

func TestResolveError_TokenFailuresAreUniform(t *testing.T) {
	// Every verification failure collapses into the same 401 body; only logs
	// and metrics keep the fine-grained reason.
	for _, err := range []error{
		domain.ErrMalformedToken,
		domain.ErrSignatureInvalid,
		domain.ErrTokenExpired,
		domain.ErrMissingSubject,
	} {
		code, msg := resolveError(err, zerolog.Nop(), testContext())
		if code != http.StatusUnauthorized {
			t.Fatalf("%v: expected 401, got %d", err, code)
		}
		if msg != uniformTokenMessage {
			t.Fatalf("%v: expected uniform message, got %q", err, msg)
		}
	}
}

func TestResolveError_WrappedErrors(t *testing.T) {
	wrapped := errors.Join(errors.New("login: lookup"), domain.ErrInvalidCredentials)
	code, _ := resolveError(wrapped, zerolog.Nop(), testContext())
	if code != http.StatusUnauthorized {
		t.Fatalf("expected wrapped domain error to map, got %d", code)
	}
}

func TestResolveError_Unexpected(t *testing.T) {
	code, msg := resolveError(errors.New("boom"), zerolog.Nop(), testContext())
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal detail must not leak, got %q", msg)
	}
}

func TestResolveError_EchoHTTPError(t *testing.T) {
	code, msg := resolveError(echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), zerolog.Nop(), testContext())
	if code != http.StatusBadRequest || msg != "invalid payload" {
		t.Fatalf("expected (400, invalid payload), got (%d, %q)", code, msg)
	}
}
