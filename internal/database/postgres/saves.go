package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mossholt/cardforge/internal/domain"
)

const (
	queryUpsertSave = `
		INSERT INTO saves (namespace, save_key, payload, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (namespace, save_key)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()`

	queryGetSave = `
		SELECT payload FROM saves
		WHERE namespace = $1 AND save_key = $2`

	queryClearNamespace = `
		DELETE FROM saves WHERE namespace = $1`
)

// SavesRepository implements the saves repository for PostgreSQL
type SavesRepository struct {
	db *pgxpool.Pool
}

// NewSavesRepository creates a new SavesRepository
func NewSavesRepository(db *pgxpool.Pool) *SavesRepository {
	return &SavesRepository{db: db}
}

// Put upserts a snapshot payload for (namespace, key)
func (r *SavesRepository) Put(ctx context.Context, namespace, key string, payload []byte) error {
	if _, err := r.db.Exec(ctx, queryUpsertSave, namespace, key, payload); err != nil {
		return fmt.Errorf("failed to upsert save %s/%s: %w", namespace, key, err)
	}
	return nil
}

// Get returns the stored payload, or domain.ErrSaveNotFound
func (r *SavesRepository) Get(ctx context.Context, namespace, key string) ([]byte, error) {
	var payload []byte
	err := r.db.QueryRow(ctx, queryGetSave, namespace, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSaveNotFound
		}
		return nil, fmt.Errorf("failed to get save %s/%s: %w", namespace, key, err)
	}
	return payload, nil
}

// Clear deletes every row in a namespace
func (r *SavesRepository) Clear(ctx context.Context, namespace string) error {
	if _, err := r.db.Exec(ctx, queryClearNamespace, namespace); err != nil {
		return fmt.Errorf("failed to clear namespace %s: %w", namespace, err)
	}
	return nil
}
