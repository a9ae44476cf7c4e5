package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/rl1809/checkout/internal/core/domain"
)

// MySQLAdapter is the durable store behind the cart, order and inventory
// repositories and the read-only product catalog.
type MySQLAdapter struct {
	db               *sql.DB
	defaultThreshold int
}

func NewMySQLAdapter(db *sql.DB, defaultLowStockThreshold int) *MySQLAdapter {
	return &MySQLAdapter{db: db, defaultThreshold: defaultLowStockThreshold}
}

func (m *MySQLAdapter) GetCart(ctx context.Context, ownerID string) (*domain.Cart, error) {
	cart := &domain.Cart{OwnerID: ownerID, Items: []domain.CartItem{}}
	err := m.db.QueryRowContext(ctx, `
		SELECT updated_at FROM carts WHERE owner_id = ?`, ownerID,
	).Scan(&cart.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query cart: %w", err)
	}

	rows, err := m.db.QueryContext(ctx, `
		SELECT product_id, quantity FROM cart_items WHERE owner_id = ?`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query cart items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(&item.ProductID, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		cart.Items = append(cart.Items, item)
	}
	return cart, rows.Err()
}

// SaveCart replaces the owner's cart wholesale. Concurrent sessions for the
// same owner resolve last-write-wins on updated_at.
func (m *MySQLAdapter) SaveCart(ctx context.Context, cart *domain.Cart) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO carts (owner_id, updated_at) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE updated_at = VALUES(updated_at)`,
		cart.OwnerID, cart.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert cart: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM cart_items WHERE owner_id = ?`, cart.OwnerID); err != nil {
		return fmt.Errorf("clear cart items: %w", err)
	}
	for _, item := range cart.Items {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO cart_items (owner_id, product_id, quantity) VALUES (?, ?, ?)`,
			cart.OwnerID, item.ProductID, item.Quantity,
		)
		if err != nil {
			return fmt.Errorf("insert cart item: %w", err)
		}
	}

	return tx.Commit()
}

func (m *MySQLAdapter) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	var p domain.Product
	err := m.db.QueryRowContext(ctx, `
		SELECT id, sku, name, price_cents, weight_grams, active
		FROM products WHERE id = ?`, productID,
	).Scan(&p.ID, &p.SKU, &p.Name, &p.PriceCents, &p.WeightGrams, &p.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query product: %w", err)
	}
	return &p, nil
}

func (m *MySQLAdapter) GetProducts(ctx context.Context, productIDs []string) ([]domain.Product, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}

	args := make([]any, len(productIDs))
	for i, id := range productIDs {
		args[i] = id
	}
	placeholders := strings.Repeat("?,", len(productIDs)-1) + "?"

	rows, err := m.db.QueryContext(ctx, `
		SELECT id, sku, name, price_cents, weight_grams, active
		FROM products WHERE id IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.PriceCents, &p.WeightGrams, &p.Active); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
