package review

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type postgresRepository struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL review repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepository{db: db} }

const reviewColumns = `id, product_id, customer_id, rating, title, body, status, created_at, updated_at`

func (r *postgresRepository) Create(ctx context.Context, rv *Review) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO reviews (id, product_id, customer_id, rating, title, body, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rv.ID, rv.ProductID, rv.CustomerID, rv.Rating, rv.Title, rv.Body, rv.Status)
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id string) (*Review, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	rv := &Review{}
	err = r.db.QueryRowContext(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE id = $1`, uid).
		Scan(&rv.ID, &rv.ProductID, &rv.CustomerID, &rv.Rating, &rv.Title, &rv.Body,
			&rv.Status, &rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return rv, nil
}

func (r *postgresRepository) ListByProduct(ctx context.Context, productID string, status ReviewStatus) ([]*Review, error) {
	return r.query(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE product_id = $1 AND status = $2 ORDER BY created_at DESC`,
		productID, status)
}

func (r *postgresRepository) ListByStatus(ctx context.Context, status ReviewStatus) ([]*Review, error) {
	return r.query(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE status = $1 ORDER BY created_at ASC`,
		status)
}

func (r *postgresRepository) UpdateStatus(ctx context.Context, id string, status ReviewStatus) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE reviews SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now(), id)
	return err
}

func (r *postgresRepository) query(ctx context.Context, query string, args ...interface{}) ([]*Review, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []*Review
	for rows.Next() {
		rv := &Review{}
		if err := rows.Scan(&rv.ID, &rv.ProductID, &rv.CustomerID, &rv.Rating, &rv.Title,
			&rv.Body, &rv.Status, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}
