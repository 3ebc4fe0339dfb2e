package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ilgaur/auth-service/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := r.users[username]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsernameOrEmail(_ context.Context, username, email string) (*domain.User, error) {
	return r.FindByUsername(context.Background(), username)
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	return user, nil
}

func TestUserHandler_Me(t *testing.T) {
	e := newTestEcho()
	handler := NewUserHandler(&stubUserRepo{})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("principal", &domain.Principal{
		User: &domain.User{ID: 7, Username: "alice", Email: "alice@example.com", IsActive: true},
	})

	if err := handler.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["username"] != "alice" || resp["id"] != float64(7) {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestUserHandler_Me_WithoutPrincipal(t *testing.T) {
	e := newTestEcho()
	handler := NewUserHandler(&stubUserRepo{})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	if err := handler.Me(c); err != domain.ErrMissingAuthorization {
		t.Fatalf("expected ErrMissingAuthorization, got %v", err)
	}
}

func TestUserHandler_GetUser(t *testing.T) {
	e := newTestEcho()
	repo := &stubUserRepo{users: map[string]*domain.User{
		"bob": {ID: 2, Username: "bob", Email: "bob@example.com", IsActive: true},
	}}
	handler := NewUserHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/admin/users/bob", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("username")
	c.SetParamValues("bob")

	if err := handler.GetUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_GetUser_NotFound(t *testing.T) {
	e := newTestEcho()
	handler := NewUserHandler(&stubUserRepo{})

	req := httptest.NewRequest(http.MethodGet, "/admin/users/ghost", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("username")
	c.SetParamValues("ghost")

	if err := handler.GetUser(c); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
