package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PostgresBackend persists each collection as one JSONB row in the
// collections table (see migrations/00001_create_collections_table.sql).
type PostgresBackend struct {
	db *sql.DB
}

func NewPostgresBackend(db *sql.DB) *PostgresBackend {
	return &PostgresBackend{db: db}
}

func (p *PostgresBackend) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var raw []byte
	err := p.db.QueryRowContext(ctx,
		`SELECT doc FROM collections WHERE name = $1`, key,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to load collection %s: %w", key, err)
	}
	return raw, true, nil
}

func (p *PostgresBackend) Save(ctx context.Context, key string, value []byte) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO collections (name, doc, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to save collection %s: %w", key, err)
	}
	return nil
}

func (p *PostgresBackend) Delete(ctx context.Context, key string) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM collections WHERE name = $1`, key); err != nil {
		return fmt.Errorf("failed to delete collection %s: %w", key, err)
	}
	return nil
}
