package token

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	ctx := context.Background()
	db, err := OpenDatabase(ctx, filepath.Join(t.TempDir(), "auth.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteRepository(db)
}

func TestSQLiteRepository_LoadEmpty(t *testing.T) {
	repo := setupRepo(t)

	tok, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Empty(t, tok)
}

func TestSQLiteRepository_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)

	require.NoError(t, repo.Save(ctx, "tok-1"))
	tok, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok-1", tok)
}

func TestSQLiteRepository_SaveReplaces(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)

	require.NoError(t, repo.Save(ctx, "old"))
	require.NoError(t, repo.Save(ctx, "new"))

	tok, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "new", tok)
}

func TestSQLiteRepository_Clear(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)

	require.NoError(t, repo.Save(ctx, "tok"))
	require.NoError(t, repo.Clear(ctx))

	tok, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, tok)

	// clearing an already-empty repository is fine
	require.NoError(t, repo.Clear(ctx))
}

func TestStore_SQLiteRoundTripAcrossRestarts(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "auth.db")

	db, err := OpenDatabase(ctx, dsn)
	require.NoError(t, err)
	s, err := NewStore(ctx, NewSQLiteRepository(db))
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "persisted"))
	require.NoError(t, db.Close())

	// simulate app relaunch with the same database file
	db2, err := OpenDatabase(ctx, dsn)
	require.NoError(t, err)
	defer db2.Close()

	s2, err := NewStore(ctx, NewSQLiteRepository(db2))
	require.NoError(t, err)
	tok, ok := s2.Token()
	require.True(t, ok)
	require.Equal(t, "persisted", tok)
}
