package ports

import (
	"context"

	"github.com/ilgaur/auth-service/internal/core/domain"
)

type CredentialService interface {
	Signup(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
