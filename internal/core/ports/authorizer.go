package ports

import (
	"context"

	"github.com/ilgaur/auth-service/internal/core/domain"
)

// Authorizer converts a raw Authorization header value into an authenticated
// principal, optionally gated on admin privilege.
type Authorizer interface {
	Authenticate(ctx context.Context, authorizationHeader string) (*domain.Principal, error)
	RequireAdmin(principal *domain.Principal) (*domain.Principal, error)
}
