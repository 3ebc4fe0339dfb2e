// Package auth implements the cryptographic building blocks of the identity
// core: bcrypt password hashing and HMAC-SHA-256 signed bearer tokens.
package auth

import "golang.org/x/crypto/bcrypt"

// hashCost is the fixed bcrypt work factor. Raising it invalidates nothing:
// existing hashes carry their own cost and keep verifying.
const hashCost = 12

// dummyHash is a valid bcrypt hash of an unguessable throwaway value, used by
// DummyVerify to equalize timing on user-lookup misses.
const dummyHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// PasswordHasher performs one-way hashing and verification of plaintext
// credentials. The zero value is ready to use; all methods are safe for
// concurrent use.
type PasswordHasher struct{}

// Hash derives a salted bcrypt digest of plaintext. Two calls with the same
// input produce different digests (random salt), both verifying.
func (PasswordHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the bcrypt digest. The comparison
// is constant-time. A structurally invalid digest yields false, never an
// error, so a corrupted stored hash cannot fail the caller.
func (PasswordHasher) Verify(plaintext, opaqueHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(opaqueHash), []byte(plaintext)) == nil
}

// DummyVerify burns one bcrypt comparison against a fixed digest. Called on
// login paths that have no stored hash to compare against, so that "unknown
// user" and "wrong password" cost roughly the same time.
func (PasswordHasher) DummyVerify() {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte("mismatch"))
}
