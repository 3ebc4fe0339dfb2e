package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/ilgaur/auth-service/internal/core/domain"
)

type stubAuthorizer struct {
	principal *domain.Principal
	authErr   error
	adminErr  error
}

func (s *stubAuthorizer) Authenticate(_ context.Context, header string) (*domain.Principal, error) {
	if s.authErr != nil {
		return nil, s.authErr
	}
	return s.principal, nil
}

func (s *stubAuthorizer) RequireAdmin(p *domain.Principal) (*domain.Principal, error) {
	if s.adminErr != nil {
		return nil, s.adminErr
	}
	return p, nil
}

func newTestContext(header string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func TestAuthenticate_InjectsPrincipal(t *testing.T) {
	principal := &domain.Principal{User: &domain.User{Username: "alice"}}
	mw := Authenticate(&stubAuthorizer{principal: principal})

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		if got := PrincipalFromContext(c); got != principal {
			t.Fatalf("principal not injected, got %+v", got)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(newTestContext("Bearer sometoken")); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthenticate_PropagatesFailure(t *testing.T) {
	for _, failure := range []error{
		domain.ErrMissingAuthorization,
		domain.ErrMalformedAuthorization,
		domain.ErrSignatureInvalid,
		domain.ErrTokenExpired,
		domain.ErrPrincipalNotFound,
	} {
		mw := Authenticate(&stubAuthorizer{authErr: failure})
		handler := mw(func(c echo.Context) error {
			t.Fatalf("should not reach next for %v", failure)
			return nil
		})

		if err := handler(newTestContext("")); err != failure {
			t.Fatalf("expected %v to propagate, got %v", failure, err)
		}
	}
}

func TestRequireAdmin_Allows(t *testing.T) {
	principal := &domain.Principal{User: &domain.User{Username: "root", IsAdmin: true}, TokenAdmin: true}
	stub := &stubAuthorizer{}
	mw := RequireAdmin(stub)

	c := newTestContext("")
	c.Set(principalKey, principal)

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestRequireAdmin_Forbids(t *testing.T) {
	principal := &domain.Principal{User: &domain.User{Username: "alice"}}
	mw := RequireAdmin(&stubAuthorizer{adminErr: domain.ErrInsufficientPrivilege})

	c := newTestContext("")
	c.Set(principalKey, principal)

	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != domain.ErrInsufficientPrivilege {
		t.Fatalf("expected ErrInsufficientPrivilege, got %v", err)
	}
}

func TestRequireAdmin_WithoutAuthenticate(t *testing.T) {
	mw := RequireAdmin(&stubAuthorizer{})

	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(newTestContext("")); err != domain.ErrMissingAuthorization {
		t.Fatalf("expected ErrMissingAuthorization, got %v", err)
	}
}
