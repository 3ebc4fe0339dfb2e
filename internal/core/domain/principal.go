package domain

import "time"

// Principal is the authenticated identity resolved for a single request:
// the persisted user plus what the presented token claimed about it.
// Built fresh per request, never cached.
type Principal struct {
	User *User
	// TokenAdmin is the admin flag as carried by the token. Privilege checks
	// still consult the persisted User.IsAdmin, which is authoritative.
	TokenAdmin bool
	CheckedAt  time.Time
}
