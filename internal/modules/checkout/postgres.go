package checkout

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/georgemunganga/printa-storefront/internal/modules/catalog"
	"github.com/google/uuid"
)

type postgresRepository struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL order repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepository{db: db} }

const orderColumns = `id, customer_id, order_number, status, subtotal, tax, total,
	currency, notes, delivery_address, created_at, updated_at`

// CreateOrder inserts the order and all its items inside a single transaction.
func (r *postgresRepository) CreateOrder(ctx context.Context, o *Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders
		  (id, customer_id, order_number, status, subtotal, tax, total, currency, notes, delivery_address)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		o.ID, o.CustomerID, o.OrderNumber, o.Status,
		o.Subtotal, o.Tax, o.Total, o.Currency, o.Notes, nullableJSON(o.DeliveryAddress))
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, item := range o.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items
			  (id, order_id, product_id, name, size, color, quantity, unit_price, line_total,
			   is_custom_order, customization)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
			item.ID, o.ID, item.ProductID, item.Name, item.Size, item.Color,
			item.Quantity, item.UnitPrice, item.LineTotal,
			item.IsCustomOrder, nullableJSON(item.Customization))
		if err != nil {
			return fmt.Errorf("insert order_item: %w", err)
		}
	}

	return tx.Commit()
}

func (r *postgresRepository) GetOrderByID(ctx context.Context, id string) (*Order, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	o, err := r.scanOrder(r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id=$1`, uid))
	if err != nil {
		return nil, err
	}
	o.Items, err = r.listItems(ctx, o.ID)
	return o, err
}

func (r *postgresRepository) GetOrderByNumber(ctx context.Context, orderNumber string) (*Order, error) {
	o, err := r.scanOrder(r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE order_number=$1`, orderNumber))
	if err != nil {
		return nil, err
	}
	o.Items, err = r.listItems(ctx, o.ID)
	return o, err
}

func (r *postgresRepository) ListOrdersByCustomer(ctx context.Context, customerID string) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE customer_id=$1 ORDER BY created_at DESC`,
		customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o, err := r.scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range orders {
		if o.Items, err = r.listItems(ctx, o.ID); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *postgresRepository) UpdateStatus(ctx context.Context, id string, status OrderStatus) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status=$1, updated_at=$2 WHERE id=$3`,
		status, time.Now(), id)
	return err
}

func (r *postgresRepository) ProductSnapshot(ctx context.Context, productID string) (catalog.ProductSnapshot, error) {
	var snap catalog.ProductSnapshot
	err := r.db.QueryRowContext(ctx,
		`SELECT base_price, stock, is_active FROM products WHERE id=$1`,
		productID).Scan(&snap.BasePrice, &snap.Stock, &snap.Active)
	if err != nil {
		return catalog.ProductSnapshot{}, err
	}
	return snap, nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *postgresRepository) scanOrder(row rowScanner) (*Order, error) {
	o := &Order{}
	var customerID sql.NullString
	var deliveryAddr []byte
	err := row.Scan(
		&o.ID, &customerID, &o.OrderNumber, &o.Status,
		&o.Subtotal, &o.Tax, &o.Total, &o.Currency, &o.Notes,
		&deliveryAddr, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if customerID.Valid {
		uid, err := uuid.Parse(customerID.String)
		if err == nil {
			o.CustomerID = &uid
		}
	}
	o.DeliveryAddress = deliveryAddr
	return o, nil
}

func (r *postgresRepository) listItems(ctx context.Context, orderID uuid.UUID) ([]*OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, name, size, color, quantity, unit_price, line_total,
		       is_custom_order, customization, created_at
		FROM order_items WHERE order_id=$1 ORDER BY created_at ASC`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*OrderItem
	for rows.Next() {
		item := &OrderItem{}
		var customization []byte
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Name,
			&item.Size, &item.Color, &item.Quantity, &item.UnitPrice, &item.LineTotal,
			&item.IsCustomOrder, &customization, &item.CreatedAt); err != nil {
			return nil, err
		}
		item.Customization = customization
		items = append(items, item)
	}
	return items, rows.Err()
}

func nullableJSON(b []byte) interface{} {
	if len(b) == 0 {
		return nil
	}
	return b
}
