package design

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL design repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) CreateDesign(ctx context.Context, d *Design) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO designs (id, name, image_url, price, is_active)
		VALUES ($1, $2, $3, $4, $5)`,
		d.ID, d.Name, d.ImageURL, d.Price, d.IsActive)
	if err != nil {
		return fmt.Errorf("insert design: %w", err)
	}
	return nil
}

func (r *postgresRepository) GetDesign(ctx context.Context, id string) (*Design, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	d := &Design{}
	err = r.db.QueryRowContext(ctx, `
		SELECT id, name, image_url, price, is_active, created_at, updated_at
		FROM designs WHERE id = $1`, uid).
		Scan(&d.ID, &d.Name, &d.ImageURL, &d.Price, &d.IsActive, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *postgresRepository) ListDesigns(ctx context.Context, activeOnly bool) ([]*Design, error) {
	query := `SELECT id, name, image_url, price, is_active, created_at, updated_at FROM designs`
	if activeOnly {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var designs []*Design
	for rows.Next() {
		d := &Design{}
		if err := rows.Scan(&d.ID, &d.Name, &d.ImageURL, &d.Price, &d.IsActive, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		designs = append(designs, d)
	}
	return designs, rows.Err()
}

func (r *postgresRepository) ProductPricing(ctx context.Context, productID string) (ProductPricing, error) {
	var pricing ProductPricing
	var locJSON, sizeJSON []byte
	err := r.db.QueryRowContext(ctx, `
		SELECT base_price, customizable, location_surcharges, size_surcharges
		FROM products WHERE id = $1`, productID).
		Scan(&pricing.BasePrice, &pricing.Customizable, &locJSON, &sizeJSON)
	if err != nil {
		return ProductPricing{}, err
	}
	if len(locJSON) > 0 {
		if err := json.Unmarshal(locJSON, &pricing.LocationSurcharges); err != nil {
			return ProductPricing{}, fmt.Errorf("decode location surcharges: %w", err)
		}
	}
	if len(sizeJSON) > 0 {
		if err := json.Unmarshal(sizeJSON, &pricing.SizeSurcharges); err != nil {
			return ProductPricing{}, fmt.Errorf("decode size surcharges: %w", err)
		}
	}
	return pricing, nil
}
