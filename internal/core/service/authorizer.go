package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ilgaur/auth-service/internal/core/auth"
	"github.com/ilgaur/auth-service/internal/core/domain"
	"github.com/ilgaur/auth-service/internal/core/ports"
)

const bearerScheme = "Bearer"

// Authorizer runs the request authorization chain:
// header → token verification → user resolution → optional admin gate.
// Each step short-circuits with its own error kind.
type Authorizer struct {
	verifier *auth.Verifier
	repo     ports.UserRepository
	log      zerolog.Logger
}

func NewAuthorizer(verifier *auth.Verifier, repo ports.UserRepository, log zerolog.Logger) *Authorizer {
	return &Authorizer{verifier: verifier, repo: repo, log: log}
}

// Authenticate resolves the Authorization header value into a Principal.
// Failure kinds: ErrMissingAuthorization, ErrMalformedAuthorization, any of
// the token verification errors, ErrPrincipalNotFound. The specific token
// failure is kept for logs and metrics; the HTTP layer collapses all of them
// into one uniform unauthorized response.
func (a *Authorizer) Authenticate(ctx context.Context, authorizationHeader string) (*domain.Principal, error) {
	if authorizationHeader == "" {
		return nil, domain.ErrMissingAuthorization
	}

	parts := strings.SplitN(authorizationHeader, " ", 2)
	if len(parts) != 2 || parts[0] != bearerScheme || parts[1] == "" {
		return nil, domain.ErrMalformedAuthorization
	}

	now := time.Now().UTC()
	claims, err := a.verifier.Verify(parts[1], now)
	if err != nil {
		a.log.Debug().Err(err).Msg("token rejected")
		return nil, err
	}

	user, err := a.repo.FindByUsername(ctx, claims.Subject)
	if err == domain.ErrUserNotFound {
		// Valid token for a user that no longer exists, e.g. deleted after
		// issuance.
		a.log.Debug().Str("subject", claims.Subject).Msg("token subject has no user record")
		return nil, domain.ErrPrincipalNotFound
	}
	if err != nil {
		return nil, err
	}

	return &domain.Principal{
		User:       user,
		TokenAdmin: claims.Admin,
		CheckedAt:  now,
	}, nil
}

// RequireAdmin gates a principal on admin privilege. Both the token's admin
// claim and the persisted flag must be set; the persisted flag is
// authoritative so a revocation after issuance takes effect immediately.
func (a *Authorizer) RequireAdmin(principal *domain.Principal) (*domain.Principal, error) {
	if principal == nil || principal.User == nil {
		return nil, domain.ErrInsufficientPrivilege
	}
	if !principal.TokenAdmin || !principal.User.IsAdmin {
		a.log.Debug().Str("username", principal.User.Username).
			Bool("token_admin", principal.TokenAdmin).
			Bool("persisted_admin", principal.User.IsAdmin).
			Msg("admin privilege denied")
		return nil, domain.ErrInsufficientPrivilege
	}
	return principal, nil
}
