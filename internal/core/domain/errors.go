package domain

import "errors"

// Credential errors. ErrInvalidCredentials deliberately covers both "user not
// found" and "wrong password" so callers cannot enumerate usernames.
var (
	ErrDuplicateCredential = errors.New("username or email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserNotFound        = errors.New("user not found")
)

// Authorization errors, one per failure state of the request pipeline.
var (
	ErrMissingAuthorization   = errors.New("missing authorization header")
	ErrMalformedAuthorization = errors.New("malformed authorization header")
	ErrMalformedToken         = errors.New("malformed token")
	ErrSignatureInvalid       = errors.New("token signature invalid")
	ErrTokenExpired           = errors.New("token expired")
	ErrMissingSubject         = errors.New("token missing subject")
	ErrPrincipalNotFound      = errors.New("principal not found")
	ErrInsufficientPrivilege  = errors.New("insufficient privilege")
)
