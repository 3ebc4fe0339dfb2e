package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ilgaur/auth-service/internal/core/domain"
)

// Claims is the fixed-shape payload carried inside a signed token.
// Wire format: sub (username), admin (bool), iat, iss, exp.
type Claims struct {
	Admin bool `json:"admin"`
	jwt.RegisteredClaims
}

// TokenConfig carries the process-wide signing settings. Built once at
// startup from configuration and treated as immutable.
type TokenConfig struct {
	Secret []byte
	Issuer string
	// TTL is applied as-is: a zero TTL issues tokens that are already
	// expired, which the boundary rule (now >= exp rejects) makes testable.
	TTL time.Duration
}

// Issuer mints signed bearer tokens.
type Issuer struct {
	cfg TokenConfig
}

func NewIssuer(cfg TokenConfig) *Issuer {
	return &Issuer{cfg: cfg}
}

// Issue builds and signs a token for username with HMAC-SHA-256.
// Pure function of its inputs, the secret key, and now.
func (i *Issuer) Issue(username string, isAdmin bool, now time.Time) (string, error) {
	claims := Claims{
		Admin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    i.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.cfg.TTL)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.cfg.Secret)
}

// Verifier validates tokens minted by an Issuer sharing the same TokenConfig.
type Verifier struct {
	cfg TokenConfig
}

func NewVerifier(cfg TokenConfig) *Verifier {
	return &Verifier{cfg: cfg}
}

// Verify parses and validates token at instant now. On success it returns the
// decoded claims; on failure exactly one of the domain token errors:
//
//	ErrMalformedToken    structurally invalid, or exp missing
//	ErrSignatureInvalid  bad signature, foreign algorithm, or foreign issuer
//	ErrTokenExpired      now >= exp
//	ErrMissingSubject    empty sub claim
func (v *Verifier) Verify(token string, now time.Time) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, v.keyFunc,
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(v.cfg.Issuer),
	)
	if err != nil {
		return nil, mapTokenError(err)
	}
	if !parsed.Valid {
		return nil, domain.ErrSignatureInvalid
	}
	if claims.Subject == "" {
		return nil, domain.ErrMissingSubject
	}
	return claims, nil
}

// keyFunc pins the signing method before releasing the key. A token asking
// for any algorithm other than HS256 fails as a signature error, closing the
// algorithm-confusion hole.
func (v *Verifier) keyFunc(token *jwt.Token) (interface{}, error) {
	if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return v.cfg.Secret, nil
}

func mapTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return domain.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return domain.ErrSignatureInvalid
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		// Same key, foreign authority: not a token this service vouches for.
		return domain.ErrSignatureInvalid
	case errors.Is(err, jwt.ErrTokenMalformed),
		errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return domain.ErrMalformedToken
	default:
		return domain.ErrMalformedToken
	}
}
