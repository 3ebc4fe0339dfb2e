package ports

import (
	"context"

	"github.com/ilgaur/auth-service/internal/core/domain"
)

// UserRepository is the persistence boundary for user records. Uniqueness of
// username and email is enforced atomically by the implementation: of two
// concurrent creates with the same username, exactly one succeeds and the
// other fails with domain.ErrDuplicateCredential.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
