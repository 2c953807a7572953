package wishlist

import (
	"context"
	"database/sql"
	"fmt"
)

type postgresRepository struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL wishlist repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepository{db: db} }

func (r *postgresRepository) Add(ctx context.Context, e *Entry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO wishlist_entries (id, customer_id, product_id, name, image, unit_price)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (customer_id, product_id) DO NOTHING`,
		e.ID, e.CustomerID, e.ProductID, e.Name, e.Image, e.UnitPrice)
	if err != nil {
		return fmt.Errorf("insert wishlist entry: %w", err)
	}
	return nil
}

func (r *postgresRepository) Remove(ctx context.Context, customerID, productID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM wishlist_entries WHERE customer_id = $1 AND product_id = $2`,
		customerID, productID)
	if err != nil {
		return fmt.Errorf("delete wishlist entry: %w", err)
	}
	return nil
}

func (r *postgresRepository) List(ctx context.Context, customerID string) ([]*Entry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, customer_id, product_id, name, image, unit_price, added_at
		FROM wishlist_entries WHERE customer_id = $1 ORDER BY added_at ASC`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		e := &Entry{}
		if err := rows.Scan(&e.ID, &e.CustomerID, &e.ProductID, &e.Name, &e.Image, &e.UnitPrice, &e.AddedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
