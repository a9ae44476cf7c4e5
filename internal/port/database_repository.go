package port

import (
	"context"

	"github.com/rl1809/checkout/internal/core/domain"
)

// CartRepository persists one cart per owner. GetCart returns (nil, nil) when
// the owner has no cart yet.
type CartRepository interface {
	GetCart(ctx context.Context, ownerID string) (*domain.Cart, error)
	SaveCart(ctx context.Context, cart *domain.Cart) error
}

// OrderRepository persists orders. Orders are never deleted; only status and
// payment fields mutate after creation.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error

	// GetOrder returns (nil, nil) when the order does not exist.
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)

	// UpdateOrder persists status, payment and updated_at. Items and total
	// are immutable and not written.
	UpdateOrder(ctx context.Context, order *domain.Order) error

	ListOrdersByOwner(ctx context.Context, ownerID string) ([]domain.Order, error)
}

// InventoryRepository is the durable source of truth for the per-product
// stock triple. Every mutation is a single atomic conditional update keyed by
// product; a read-then-write sequence is a lost-update bug.
type InventoryRepository interface {
	// GetItem returns (nil, nil) when no inventory row exists.
	GetItem(ctx context.Context, productID string) (*domain.InventoryItem, error)

	// GetItems fetches one batch; callers chunk IDs to respect backend
	// query limits.
	GetItems(ctx context.Context, productIDs []string) ([]domain.InventoryItem, error)

	// AdjustQuantity applies quantity = max(0, quantity+delta), clamps
	// reserved to the new quantity and recomputes available, creating the
	// row lazily with the default threshold. Returns the post-update item.
	AdjustQuantity(ctx context.Context, productID string, delta int) (*domain.InventoryItem, error)

	// Reserve atomically checks available >= qty and moves qty from
	// available to reserved; false on shortfall, never an error.
	Reserve(ctx context.Context, productID string, qty int) (bool, error)

	// Release moves up to qty units from reserved back to available.
	Release(ctx context.Context, productID string, qty int) error

	// CommitReservation converts up to qty reserved units into a permanent
	// debit: quantity and reserved both drop, available is unchanged.
	CommitReservation(ctx context.Context, productID string, qty int) (*domain.InventoryItem, error)

	SetThreshold(ctx context.Context, productID string, threshold int) error

	// ListLowStock returns items with quantity <= threshold, including
	// out-of-stock items.
	ListLowStock(ctx context.Context) ([]domain.InventoryItem, error)

	// AppendAudit adds one row to the append-only stock audit log.
	AppendAudit(ctx context.Context, entry domain.AuditEntry) error
}

// ProductCatalog is a read-only view of the product table; checkout only
// needs existence checks and current prices.
type ProductCatalog interface {
	// GetProduct returns (nil, nil) when the product does not exist.
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
	GetProducts(ctx context.Context, productIDs []string) ([]domain.Product, error)
}
