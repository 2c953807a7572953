package user

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL user repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

const userColumns = `id, email, password_hash, first_name, last_name, role,
	shipping_address, height_cm, weight_kg, created_at, updated_at`

func (r *postgresRepository) CreateUser(ctx context.Context, user *User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, email, password_hash, first_name, last_name, role)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName, user.Role)
	return err
}

func (r *postgresRepository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

func (r *postgresRepository) GetUserByID(ctx context.Context, id string) (*User, error) {
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	return r.scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, parsedID))
}

func (r *postgresRepository) UpdateProfile(ctx context.Context, user *User) error {
	var addr interface{}
	if len(user.ShippingAddress) > 0 {
		addr = []byte(user.ShippingAddress)
	}
	_, err := r.db.ExecContext(ctx, `
		UPDATE users SET first_name=$1, last_name=$2, shipping_address=$3,
		  height_cm=$4, weight_kg=$5, updated_at=$6
		WHERE id=$7`,
		user.FirstName, user.LastName, addr,
		user.HeightCm, user.WeightKg, time.Now(), user.ID)
	return err
}

func (r *postgresRepository) scanUser(row *sql.Row) (*User, error) {
	user := &User{}
	var addr []byte
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.Role,
		&addr,
		&user.HeightCm,
		&user.WeightKg,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	user.ShippingAddress = addr
	return user, nil
}
