package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL catalog repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

const productColumns = `id, name, description, category, base_price, currency, image_url,
	stock, sizes, colors, customizable, location_surcharges, size_surcharges,
	is_active, created_at, updated_at`

func (r *postgresRepository) Create(ctx context.Context, p *Product) error {
	locJSON, sizeJSON, err := surchargeJSON(p)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO products
		  (id, name, description, category, base_price, currency, image_url,
		   stock, sizes, colors, customizable, location_surcharges, size_surcharges, is_active)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
		p.ID, p.Name, p.Description, p.Category, p.BasePrice, p.Currency, p.ImageURL,
		p.Stock, pq.Array(p.Sizes), pq.Array(p.Colors), p.Customizable, locJSON, sizeJSON, p.IsActive)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id string) (*Product, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	return r.scanProduct(r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, uid))
}

func (r *postgresRepository) List(ctx context.Context, category string, activeOnly bool) ([]*Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	args := []interface{}{}
	if category != "" {
		args = append(args, category)
		query += fmt.Sprintf(` AND category = $%d`, len(args))
	}
	if activeOnly {
		query += ` AND is_active = true`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p, err := r.scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, p *Product) error {
	locJSON, sizeJSON, err := surchargeJSON(p)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		UPDATE products SET
		  name=$1, description=$2, category=$3, base_price=$4, currency=$5, image_url=$6,
		  stock=$7, sizes=$8, colors=$9, customizable=$10,
		  location_surcharges=$11, size_surcharges=$12, is_active=$13, updated_at=$14
		WHERE id=$15`,
		p.Name, p.Description, p.Category, p.BasePrice, p.Currency, p.ImageURL,
		p.Stock, pq.Array(p.Sizes), pq.Array(p.Colors), p.Customizable,
		locJSON, sizeJSON, p.IsActive, time.Now(), p.ID)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

func (r *postgresRepository) Snapshot(ctx context.Context, id string) (ProductSnapshot, error) {
	var snap ProductSnapshot
	err := r.db.QueryRowContext(ctx,
		`SELECT base_price, stock, is_active FROM products WHERE id = $1`, id).
		Scan(&snap.BasePrice, &snap.Stock, &snap.Active)
	if err != nil {
		return ProductSnapshot{}, err
	}
	return snap, nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *postgresRepository) scanProduct(row rowScanner) (*Product, error) {
	p := &Product{}
	var locJSON, sizeJSON []byte
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Category, &p.BasePrice, &p.Currency, &p.ImageURL,
		&p.Stock, pq.Array(&p.Sizes), pq.Array(&p.Colors), &p.Customizable,
		&locJSON, &sizeJSON, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(locJSON) > 0 {
		if err := json.Unmarshal(locJSON, &p.LocationSurcharges); err != nil {
			return nil, fmt.Errorf("decode location surcharges: %w", err)
		}
	}
	if len(sizeJSON) > 0 {
		if err := json.Unmarshal(sizeJSON, &p.SizeSurcharges); err != nil {
			return nil, fmt.Errorf("decode size surcharges: %w", err)
		}
	}
	return p, nil
}

func surchargeJSON(p *Product) ([]byte, []byte, error) {
	var locJSON, sizeJSON []byte
	var err error
	if p.LocationSurcharges != nil {
		if locJSON, err = json.Marshal(p.LocationSurcharges); err != nil {
			return nil, nil, fmt.Errorf("encode location surcharges: %w", err)
		}
	}
	if p.SizeSurcharges != nil {
		if sizeJSON, err = json.Marshal(p.SizeSurcharges); err != nil {
			return nil, nil, fmt.Errorf("encode size surcharges: %w", err)
		}
	}
	return locJSON, sizeJSON, nil
}
