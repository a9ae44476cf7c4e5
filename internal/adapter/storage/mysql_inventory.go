package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/rl1809/checkout/internal/core/domain"
)

// Inventory mutations are single conditional UPDATE statements: MySQL applies
// SET clauses left to right, so reserved must be assigned after any clause
// that reads its old value.

func (m *MySQLAdapter) GetItem(ctx context.Context, productID string) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	err := m.db.QueryRowContext(ctx, `
		SELECT product_id, sku, quantity, reserved, available, low_stock_threshold, updated_at
		FROM inventory WHERE product_id = ?`, productID,
	).Scan(&item.ProductID, &item.SKU, &item.Quantity, &item.Reserved,
		&item.Available, &item.LowStockThreshold, &item.LastUpdated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query inventory: %w", err)
	}
	return &item, nil
}

func (m *MySQLAdapter) GetItems(ctx context.Context, productIDs []string) ([]domain.InventoryItem, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}

	args := make([]any, len(productIDs))
	for i, id := range productIDs {
		args[i] = id
	}
	placeholders := strings.Repeat("?,", len(productIDs)-1) + "?"

	rows, err := m.db.QueryContext(ctx, `
		SELECT product_id, sku, quantity, reserved, available, low_stock_threshold, updated_at
		FROM inventory WHERE product_id IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, fmt.Errorf("query inventory batch: %w", err)
	}
	defer rows.Close()

	var out []domain.InventoryItem
	for rows.Next() {
		var item domain.InventoryItem
		if err := rows.Scan(&item.ProductID, &item.SKU, &item.Quantity, &item.Reserved,
			&item.Available, &item.LowStockThreshold, &item.LastUpdated); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// AdjustQuantity clamps quantity at zero, caps reserved at the new quantity
// and recomputes available, creating the row lazily with the default
// threshold on first adjustment.
func (m *MySQLAdapter) AdjustQuantity(ctx context.Context, productID string, delta int) (*domain.InventoryItem, error) {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO inventory (product_id, sku, quantity, reserved, available, low_stock_threshold)
		VALUES (?, '', 0, 0, 0, ?)
		ON DUPLICATE KEY UPDATE product_id = product_id`,
		productID, m.defaultThreshold,
	)
	if err != nil {
		return nil, fmt.Errorf("ensure inventory row: %w", err)
	}

	_, err = m.db.ExecContext(ctx, `
		UPDATE inventory
		SET quantity = GREATEST(0, quantity + ?),
			reserved = LEAST(reserved, quantity),
			available = quantity - reserved,
			updated_at = NOW()
		WHERE product_id = ?`,
		delta, productID,
	)
	if err != nil {
		return nil, fmt.Errorf("adjust inventory: %w", err)
	}

	return m.GetItem(ctx, productID)
}

// Reserve is the durable check-and-increment: the condition and the counter
// moves happen in one statement, so concurrent reservations can never jointly
// exceed available.
func (m *MySQLAdapter) Reserve(ctx context.Context, productID string, qty int) (bool, error) {
	result, err := m.db.ExecContext(ctx, `
		UPDATE inventory
		SET available = available - ?,
			reserved = reserved + ?,
			updated_at = NOW()
		WHERE product_id = ? AND available >= ?`,
		qty, qty, productID, qty,
	)
	if err != nil {
		return false, fmt.Errorf("reserve inventory: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

func (m *MySQLAdapter) Release(ctx context.Context, productID string, qty int) error {
	_, err := m.db.ExecContext(ctx, `
		UPDATE inventory
		SET available = available + LEAST(?, reserved),
			reserved = reserved - LEAST(?, reserved),
			updated_at = NOW()
		WHERE product_id = ?`,
		qty, qty, productID,
	)
	if err != nil {
		return fmt.Errorf("release inventory: %w", err)
	}
	return nil
}

// CommitReservation drops quantity and reserved together; available stays
// untouched, which keeps concurrent holds intact.
func (m *MySQLAdapter) CommitReservation(ctx context.Context, productID string, qty int) (*domain.InventoryItem, error) {
	_, err := m.db.ExecContext(ctx, `
		UPDATE inventory
		SET quantity = quantity - LEAST(?, reserved),
			reserved = reserved - LEAST(?, reserved),
			updated_at = NOW()
		WHERE product_id = ?`,
		qty, qty, productID,
	)
	if err != nil {
		return nil, fmt.Errorf("commit reservation: %w", err)
	}
	return m.GetItem(ctx, productID)
}

func (m *MySQLAdapter) SetThreshold(ctx context.Context, productID string, threshold int) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO inventory (product_id, sku, quantity, reserved, available, low_stock_threshold)
		VALUES (?, '', 0, 0, 0, ?)
		ON DUPLICATE KEY UPDATE low_stock_threshold = VALUES(low_stock_threshold)`,
		productID, threshold,
	)
	if err != nil {
		return fmt.Errorf("set threshold: %w", err)
	}
	return nil
}

func (m *MySQLAdapter) ListLowStock(ctx context.Context) ([]domain.InventoryItem, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT product_id, sku, quantity, reserved, available, low_stock_threshold, updated_at
		FROM inventory WHERE quantity <= low_stock_threshold
		ORDER BY quantity ASC`)
	if err != nil {
		return nil, fmt.Errorf("query low stock: %w", err)
	}
	defer rows.Close()

	var out []domain.InventoryItem
	for rows.Next() {
		var item domain.InventoryItem
		if err := rows.Scan(&item.ProductID, &item.SKU, &item.Quantity, &item.Reserved,
			&item.Available, &item.LowStockThreshold, &item.LastUpdated); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (m *MySQLAdapter) AppendAudit(ctx context.Context, entry domain.AuditEntry) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO inventory_audit (product_id, delta, quantity_after, reason, reference, actor, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ProductID, entry.Delta, entry.QuantityAfter,
		entry.Reason, entry.Reference, entry.Actor, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append audit: %w", err)
	}
	return nil
}
