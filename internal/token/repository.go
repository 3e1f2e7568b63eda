// Package token owns the bearer-token lifecycle: an in-memory store with
// atomic transitions and a pluggable persistence collaborator so a session
// survives process restarts.
package token

import "context"

// Repository persists at most one token value. Load returns "" when no
// token has been saved; Clear on an empty repository is a no-op.
type Repository interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
