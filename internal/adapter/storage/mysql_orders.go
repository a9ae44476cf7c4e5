package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rl1809/checkout/internal/core/domain"
)

func (m *MySQLAdapter) CreateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, owner_id, total_cents, status,
			ship_street, ship_city, ship_state, ship_postal_code, ship_country,
			ship_method, ship_cost_cents, ship_estimated_days,
			payment_method, payment_status, payment_transaction_id,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		order.ID, order.OwnerID, order.TotalCents, order.Status,
		order.Shipping.Address.Street, order.Shipping.Address.City,
		order.Shipping.Address.State, order.Shipping.Address.PostalCode,
		order.Shipping.Address.Country,
		order.Shipping.Method, order.Shipping.CostCents, order.Shipping.EstimatedDays,
		order.Payment.Method, order.Payment.Status, order.Payment.TransactionID,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, item := range order.Items {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, unit_price_cents)
			VALUES (?, ?, ?, ?)`,
			order.ID, item.ProductID, item.Quantity, item.UnitPriceCents,
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	return tx.Commit()
}

func (m *MySQLAdapter) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	var o domain.Order
	err := m.db.QueryRowContext(ctx, `
		SELECT id, owner_id, total_cents, status,
			ship_street, ship_city, ship_state, ship_postal_code, ship_country,
			ship_method, ship_cost_cents, ship_estimated_days,
			payment_method, payment_status, payment_transaction_id,
			created_at, updated_at
		FROM orders WHERE id = ?`, orderID,
	).Scan(&o.ID, &o.OwnerID, &o.TotalCents, &o.Status,
		&o.Shipping.Address.Street, &o.Shipping.Address.City,
		&o.Shipping.Address.State, &o.Shipping.Address.PostalCode,
		&o.Shipping.Address.Country,
		&o.Shipping.Method, &o.Shipping.CostCents, &o.Shipping.EstimatedDays,
		&o.Payment.Method, &o.Payment.Status, &o.Payment.TransactionID,
		&o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query order: %w", err)
	}

	items, err := m.orderItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

// UpdateOrder writes only the mutable fields. Items and total are fixed at
// creation and never touched.
func (m *MySQLAdapter) UpdateOrder(ctx context.Context, order *domain.Order) error {
	result, err := m.db.ExecContext(ctx, `
		UPDATE orders
		SET status = ?, payment_status = ?, payment_transaction_id = ?, updated_at = ?
		WHERE id = ?`,
		order.Status, order.Payment.Status, order.Payment.TransactionID,
		order.UpdatedAt, order.ID,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (m *MySQLAdapter) ListOrdersByOwner(ctx context.Context, ownerID string) ([]domain.Order, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT id, owner_id, total_cents, status,
			ship_street, ship_city, ship_state, ship_postal_code, ship_country,
			ship_method, ship_cost_cents, ship_estimated_days,
			payment_method, payment_status, payment_transaction_id,
			created_at, updated_at
		FROM orders WHERE owner_id = ? ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.OwnerID, &o.TotalCents, &o.Status,
			&o.Shipping.Address.Street, &o.Shipping.Address.City,
			&o.Shipping.Address.State, &o.Shipping.Address.PostalCode,
			&o.Shipping.Address.Country,
			&o.Shipping.Method, &o.Shipping.CostCents, &o.Shipping.EstimatedDays,
			&o.Payment.Method, &o.Payment.Status, &o.Payment.TransactionID,
			&o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		items, err := m.orderItems(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Items = items
	}
	return out, nil
}

func (m *MySQLAdapter) orderItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT product_id, quantity, unit_price_cents
		FROM order_items WHERE order_id = ?`, orderID)
	if err != nil {
		return nil, fmt.Errorf("query order items: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ProductID, &item.Quantity, &item.UnitPriceCents); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
