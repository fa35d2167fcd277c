package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qryptify/qryptify-client/internal/config"
	"github.com/qryptify/qryptify-client/internal/logger"
	"github.com/qryptify/qryptify-client/models"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "client.db")

	db, err := NewConnectSQLite(context.Background(), config.ClientDB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	t.Cleanup(func() { _ = db.Close() })
	return db
}

// ── SessionRepository ───────────────────────────────────────────────────────

func TestSessionRepository_SaveAndLoad(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t), logger.Nop())
	ctx := context.Background()

	want := models.Credential{
		Access:    "header.payload.signature",
		ExpiresAt: time.Now().Add(time.Hour).UTC().Truncate(time.Second),
		SavedAt:   time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, repo.SaveCredential(ctx, want))

	got, err := repo.LoadCredential(ctx)
	require.NoError(t, err)
	assert.Equal(t, want.Access, got.Access)
	assert.True(t, want.ExpiresAt.Equal(got.ExpiresAt))
}

func TestSessionRepository_SaveSupersedesPrevious(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t), logger.Nop())
	ctx := context.Background()

	first := models.Credential{Access: "old.token.value", SavedAt: time.Now().UTC()}
	second := models.Credential{Access: "new.token.value", SavedAt: time.Now().UTC()}

	require.NoError(t, repo.SaveCredential(ctx, first))
	require.NoError(t, repo.SaveCredential(ctx, second))

	got, err := repo.LoadCredential(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new.token.value", got.Access)
}

func TestSessionRepository_LoadEmpty(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t), logger.Nop())

	_, err := repo.LoadCredential(context.Background())
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)
}

func TestSessionRepository_ClearCredential(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t), logger.Nop())
	ctx := context.Background()

	require.NoError(t, repo.SaveCredential(ctx, models.Credential{Access: "tok", SavedAt: time.Now()}))
	require.NoError(t, repo.ClearCredential(ctx))

	_, err := repo.LoadCredential(ctx)
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)
}

func TestSessionRepository_ClearEmptyIsNoError(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t), logger.Nop())
	assert.NoError(t, repo.ClearCredential(context.Background()))
}
