package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const auditTTL = 24 * time.Hour

// LoginAudit keeps rolling per-username login outcome counters in Redis.
// Key format: login:<outcome>:<username>, outcome "ok" or "fail".
// Purely diagnostic: nothing reads these counters to gate a request.
type LoginAudit struct {
	client *redis.Client
}

// NewLoginAudit creates a LoginAudit wrapping the given Redis client.
func NewLoginAudit(client *redis.Client) *LoginAudit {
	return &LoginAudit{client: client}
}

// RecordSuccess increments the success counter for username.
func (a *LoginAudit) RecordSuccess(ctx context.Context, username string) error {
	return a.bump(ctx, "ok", username)
}

// RecordFailure increments the failure counter for username.
func (a *LoginAudit) RecordFailure(ctx context.Context, username string) error {
	return a.bump(ctx, "fail", username)
}

// Failures returns the current failure count for username within the TTL
// window. Missing key reads as zero.
func (a *LoginAudit) Failures(ctx context.Context, username string) (int64, error) {
	n, err := a.client.Get(ctx, a.key("fail", username)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("login audit read: %w", err)
	}
	return n, nil
}

func (a *LoginAudit) bump(ctx context.Context, outcome, username string) error {
	key := a.key(outcome, username)
	if err := a.client.Incr(ctx, key).Err(); err != nil {
		return fmt.Errorf("login audit incr: %w", err)
	}
	// Refresh the window on every write; stale counters age out on their own.
	return a.client.Expire(ctx, key, auditTTL).Err()
}

func (a *LoginAudit) key(outcome, username string) string {
	return fmt.Sprintf("login:%s:%s", outcome, username)
}
