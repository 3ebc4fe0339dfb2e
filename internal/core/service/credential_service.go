package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ilgaur/auth-service/internal/core/auth"
	"github.com/ilgaur/auth-service/internal/core/domain"
	"github.com/ilgaur/auth-service/internal/core/ports"
)

// LoginAudit records login outcomes for operational diagnostics (Redis).
// Recording is best-effort and never fails a login.
type LoginAudit interface {
	RecordSuccess(ctx context.Context, username string) error
	RecordFailure(ctx context.Context, username string) error
}

// CredentialService implements signup and login on top of the user
// repository, the password hasher, and the token issuer.
type CredentialService struct {
	repo   ports.UserRepository
	hasher auth.PasswordHasher
	issuer *auth.Issuer
	audit  LoginAudit
	log    zerolog.Logger
}

func NewCredentialService(repo ports.UserRepository, issuer *auth.Issuer, audit LoginAudit, log zerolog.Logger) *CredentialService {
	return &CredentialService{
		repo:   repo,
		issuer: issuer,
		audit:  audit,
		log:    log,
	}
}

// Signup registers a new non-admin, active user. A username or email
// collision fails with domain.ErrDuplicateCredential and leaves no partial
// state; the repository's unique constraint is the arbiter for concurrent
// races the pre-check cannot see.
func (s *CredentialService) Signup(ctx context.Context, username, email, password string) (*domain.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if existing, err := s.repo.FindByUsernameOrEmail(ctx, username, email); err != nil && err != domain.ErrUserNotFound {
		return nil, fmt.Errorf("signup: existence check: %w", err)
	} else if existing != nil {
		return nil, domain.ErrDuplicateCredential
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("signup: hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
		IsAdmin:      false,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Int64("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login authenticates username/password and issues a signed bearer token.
// "User not found" and "wrong password" are logged apart but surface as the
// same domain.ErrInvalidCredentials; a dummy hash comparison runs on lookup
// miss so the two paths cost roughly the same time.
func (s *CredentialService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err == domain.ErrUserNotFound {
		s.hasher.DummyVerify()
		s.log.Debug().Str("username", username).Msg("login rejected: unknown user")
		s.recordFailure(ctx, username)
		return "", nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, fmt.Errorf("login: lookup: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.log.Debug().Str("username", username).Msg("login rejected: password mismatch")
		s.recordFailure(ctx, username)
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user.Username, user.IsAdmin, time.Now().UTC())
	if err != nil {
		return "", nil, fmt.Errorf("login: issue token: %w", err)
	}

	s.recordSuccess(ctx, username)
	s.log.Info().Str("username", username).Bool("is_admin", user.IsAdmin).Msg("login succeeded")
	return token, user, nil
}

func (s *CredentialService) recordSuccess(ctx context.Context, username string) {
	if s.audit == nil {
		return
	}
	if err := s.audit.RecordSuccess(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("login audit write failed")
	}
}

func (s *CredentialService) recordFailure(ctx context.Context, username string) {
	if s.audit == nil {
		return
	}
	if err := s.audit.RecordFailure(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("login audit write failed")
	}
}
