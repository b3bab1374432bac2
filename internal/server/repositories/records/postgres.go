package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/healophile/internal/common"
	"github.com/dmitrijs2005/healophile/internal/dbx"
)

// PostgresSlot keeps the blob in a single row of record_slots, keyed by slot
// name. The upsert serializes concurrent writers at the row level but adds
// no optimistic versioning: last writer wins, like every other backend.
type PostgresSlot struct {
	db   dbx.DBTX
	name string
}

func NewPostgresSlot(db dbx.DBTX, name string) *PostgresSlot {
	return &PostgresSlot{db: db, name: name}
}

func (s *PostgresSlot) Get(ctx context.Context) ([]byte, error) {
	query := `
		SELECT payload FROM record_slots
		WHERE name = $1
	`
	var data []byte
	if err := s.db.QueryRowContext(ctx, query, s.name).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return data, nil
}

func (s *PostgresSlot) Put(ctx context.Context, data []byte) error {
	query := `
		INSERT INTO record_slots (name, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at
	`
	if _, err := s.db.ExecContext(ctx, query, s.name, data); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
