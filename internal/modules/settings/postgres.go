package settings

import (
	"context"
	"database/sql"
	"fmt"
)

type postgresRepository struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL settings repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepository{db: db} }

func (r *postgresRepository) Get(ctx context.Context, key string) (*Setting, error) {
	s := &Setting{}
	var value []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT key, value, updated_at FROM storefront_settings WHERE key = $1`, key).
		Scan(&s.Key, &value, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.Value = value
	return s, nil
}

func (r *postgresRepository) Put(ctx context.Context, s *Setting) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO storefront_settings (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = $2, updated_at = $3`,
		s.Key, []byte(s.Value), s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert setting: %w", err)
	}
	return nil
}

func (r *postgresRepository) List(ctx context.Context) ([]*Setting, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT key, value, updated_at FROM storefront_settings ORDER BY key ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var settings []*Setting
	for rows.Next() {
		s := &Setting{}
		var value []byte
		if err := rows.Scan(&s.Key, &value, &s.UpdatedAt); err != nil {
			return nil, err
		}
		s.Value = value
		settings = append(settings, s)
	}
	return settings, rows.Err()
}
