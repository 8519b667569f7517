package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mossholt/cardforge/internal/database"
	"github.com/mossholt/cardforge/internal/database/schema"
	"github.com/mossholt/cardforge/internal/domain"
)

// TestSavesRepository exercises the repository against a real database.
// Set CARDFORGE_TEST_DB to a connection string to run it.
func TestSavesRepository(t *testing.T) {
	connString := os.Getenv("CARDFORGE_TEST_DB")
	if connString == "" {
		t.Skip("CARDFORGE_TEST_DB not set")
	}

	ctx := context.Background()
	pool, err := database.NewPool(connString, 2, 0, 0)
	require.NoError(t, err)
	defer pool.Close()

	_, err = pool.Exec(ctx, schema.SchemaSQL)
	require.NoError(t, err)

	repo := NewSavesRepository(pool)
	t.Cleanup(func() {
		_ = repo.Clear(ctx, "test_ns")
	})

	t.Run("get missing returns sentinel", func(t *testing.T) {
		_, err := repo.Get(ctx, "test_ns", "main")
		assert.ErrorIs(t, err, domain.ErrSaveNotFound)
	})

	t.Run("put then get roundtrips", func(t *testing.T) {
		require.NoError(t, repo.Put(ctx, "test_ns", "main", []byte(`{"gold":100}`)))

		payload, err := repo.Get(ctx, "test_ns", "main")
		require.NoError(t, err)
		assert.JSONEq(t, `{"gold":100}`, string(payload))
	})

	t.Run("put overwrites", func(t *testing.T) {
		require.NoError(t, repo.Put(ctx, "test_ns", "main", []byte(`{"gold":50}`)))

		payload, err := repo.Get(ctx, "test_ns", "main")
		require.NoError(t, err)
		assert.JSONEq(t, `{"gold":50}`, string(payload))
	})

	t.Run("clear removes the namespace", func(t *testing.T) {
		require.NoError(t, repo.Clear(ctx, "test_ns"))
		_, err := repo.Get(ctx, "test_ns", "main")
		assert.ErrorIs(t, err, domain.ErrSaveNotFound)
	})
}
