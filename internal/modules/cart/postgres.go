package cart

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a PostgreSQL-backed snapshot repository.
// Each cart occupies one row keyed by cart ID.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Load(ctx context.Context, cartID string) ([]LineItem, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT payload FROM cart_snapshots WHERE cart_id = $1`,
		cartID).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cart snapshot: %w", err)
	}
	return decodeSnapshot(payload)
}

func (r *postgresRepository) Save(ctx context.Context, cartID string, items []LineItem) error {
	payload, err := encodeSnapshot(items)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO cart_snapshots (cart_id, payload, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (cart_id) DO UPDATE SET payload = $2, updated_at = $3`,
		cartID, payload, time.Now())
	if err != nil {
		return fmt.Errorf("write cart snapshot: %w", err)
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, cartID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM cart_snapshots WHERE cart_id = $1`, cartID)
	if err != nil {
		return fmt.Errorf("delete cart snapshot: %w", err)
	}
	return nil
}
