package token

import (
	"context"
	"sync"
)

// Store holds the single bearer token for the session. States are
// Empty ("") and Present; Set and Clear replace the value atomically and
// mirror every transition into the Repository, holding the lock across
// persistence so concurrent transitions reach memory and the Repository
// in the same order. The in-memory value is updated even when
// persistence fails: callers get the error and a consistent token.
type Store struct {
	mu    sync.RWMutex
	token string
	repo  Repository
}

// NewStore builds a Store and primes it with the persisted token, if any.
func NewStore(ctx context.Context, repo Repository) (*Store, error) {
	t, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &Store{token: t, repo: repo}, nil
}

// Token returns the held token and whether one is present.
func (s *Store) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// Set replaces the held token (Empty→Present or Present→Present).
func (s *Store) Set(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return s.repo.Save(ctx, token)
}

// Clear drops the held token (Present→Empty). Safe to call when empty.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return s.repo.Clear(ctx)
}
