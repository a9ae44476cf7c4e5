package storage

import (
	"context"
	"sync"
	"time"

	"github.com/rl1809/checkout/internal/core/domain"
)

// In-memory implementations of the storage ports. They honor the same
// atomicity contracts as the MySQL and Redis adapters (every stock mutation
// is serialized behind the mutex) and back the unit tests and the stress
// driver.

type MemoryCartRepository struct {
	mu    sync.Mutex
	carts map[string]domain.Cart
}

func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{carts: make(map[string]domain.Cart)}
}

func (r *MemoryCartRepository) GetCart(ctx context.Context, ownerID string) (*domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cart, ok := r.carts[ownerID]
	if !ok {
		return nil, nil
	}
	copied := cart
	copied.Items = append([]domain.CartItem(nil), cart.Items...)
	return &copied, nil
}

func (r *MemoryCartRepository) SaveCart(ctx context.Context, cart *domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.carts[cart.OwnerID]
	// Last write wins between concurrent sessions of the same owner.
	if ok && stored.UpdatedAt.After(cart.UpdatedAt) {
		return nil
	}
	copied := *cart
	copied.Items = append([]domain.CartItem(nil), cart.Items...)
	r.carts[cart.OwnerID] = copied
	return nil
}

type MemoryOrderRepository struct {
	mu     sync.Mutex
	orders map[string]domain.Order
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{orders: make(map[string]domain.Order)}
}

func (r *MemoryOrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *order
	copied.Items = append([]domain.OrderItem(nil), order.Items...)
	r.orders[order.ID] = copied
	return nil
}

func (r *MemoryOrderRepository) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return nil, nil
	}
	copied := order
	copied.Items = append([]domain.OrderItem(nil), order.Items...)
	return &copied, nil
}

func (r *MemoryOrderRepository) UpdateOrder(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.orders[order.ID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	stored.Status = order.Status
	stored.Payment = order.Payment
	stored.UpdatedAt = order.UpdatedAt
	r.orders[order.ID] = stored
	return nil
}

func (r *MemoryOrderRepository) ListOrdersByOwner(ctx context.Context, ownerID string) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Order
	for _, order := range r.orders {
		if order.OwnerID == ownerID {
			copied := order
			copied.Items = append([]domain.OrderItem(nil), order.Items...)
			out = append(out, copied)
		}
	}
	return out, nil
}

type MemoryInventoryRepository struct {
	mu               sync.Mutex
	items            map[string]domain.InventoryItem
	audit            []domain.AuditEntry
	defaultThreshold int
}

func NewMemoryInventoryRepository(defaultLowStockThreshold int) *MemoryInventoryRepository {
	return &MemoryInventoryRepository{
		items:            make(map[string]domain.InventoryItem),
		defaultThreshold: defaultLowStockThreshold,
	}
}

func (r *MemoryInventoryRepository) GetItem(ctx context.Context, productID string) (*domain.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[productID]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (r *MemoryInventoryRepository) GetItems(ctx context.Context, productIDs []string) ([]domain.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.InventoryItem
	for _, id := range productIDs {
		if item, ok := r.items[id]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *MemoryInventoryRepository) AdjustQuantity(ctx context.Context, productID string, delta int) (*domain.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item := r.ensureLocked(productID)
	item.Quantity += delta
	if item.Quantity < 0 {
		item.Quantity = 0
	}
	if item.Reserved > item.Quantity {
		item.Reserved = item.Quantity
	}
	item.Available = item.Quantity - item.Reserved
	item.LastUpdated = time.Now().UTC()
	r.items[productID] = item
	return &item, nil
}

func (r *MemoryInventoryRepository) Reserve(ctx context.Context, productID string, qty int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[productID]
	if !ok || item.Available < qty {
		return false, nil
	}
	item.Available -= qty
	item.Reserved += qty
	item.LastUpdated = time.Now().UTC()
	r.items[productID] = item
	return true, nil
}

func (r *MemoryInventoryRepository) Release(ctx context.Context, productID string, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[productID]
	if !ok {
		return nil
	}
	back := qty
	if back > item.Reserved {
		back = item.Reserved
	}
	item.Reserved -= back
	item.Available += back
	item.LastUpdated = time.Now().UTC()
	r.items[productID] = item
	return nil
}

func (r *MemoryInventoryRepository) CommitReservation(ctx context.Context, productID string, qty int) (*domain.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item := r.ensureLocked(productID)
	done := qty
	if done > item.Reserved {
		done = item.Reserved
	}
	item.Reserved -= done
	item.Quantity -= done
	item.LastUpdated = time.Now().UTC()
	r.items[productID] = item
	return &item, nil
}

func (r *MemoryInventoryRepository) SetThreshold(ctx context.Context, productID string, threshold int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item := r.ensureLocked(productID)
	item.LowStockThreshold = threshold
	r.items[productID] = item
	return nil
}

func (r *MemoryInventoryRepository) ListLowStock(ctx context.Context) ([]domain.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.InventoryItem
	for _, item := range r.items {
		if item.Quantity <= item.LowStockThreshold {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *MemoryInventoryRepository) AppendAudit(ctx context.Context, entry domain.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.audit = append(r.audit, entry)
	return nil
}

// AuditLog returns a copy of the audit entries, oldest first.
func (r *MemoryInventoryRepository) AuditLog() []domain.AuditEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.AuditEntry(nil), r.audit...)
}

func (r *MemoryInventoryRepository) ensureLocked(productID string) domain.InventoryItem {
	item, ok := r.items[productID]
	if !ok {
		item = domain.InventoryItem{
			ProductID:         productID,
			LowStockThreshold: r.defaultThreshold,
			LastUpdated:       time.Now().UTC(),
		}
	}
	return item
}

type MemoryProductCatalog struct {
	mu       sync.Mutex
	products map[string]domain.Product
}

func NewMemoryProductCatalog() *MemoryProductCatalog {
	return &MemoryProductCatalog{products: make(map[string]domain.Product)}
}

func (c *MemoryProductCatalog) PutProduct(p domain.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products[p.ID] = p
}

func (c *MemoryProductCatalog) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.products[productID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (c *MemoryProductCatalog) GetProducts(ctx context.Context, productIDs []string) ([]domain.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []domain.Product
	for _, id := range productIDs {
		if p, ok := c.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// MemoryStockCache mirrors the Redis gate semantics for tests and local runs.
type MemoryStockCache struct {
	mu          sync.Mutex
	available   map[string]int
	reserved    map[string]int
	idempotency map[string]bool
}

func NewMemoryStockCache() *MemoryStockCache {
	return &MemoryStockCache{
		available:   make(map[string]int),
		reserved:    make(map[string]int),
		idempotency: make(map[string]bool),
	}
}

func (c *MemoryStockCache) Reserve(ctx context.Context, productID string, qty int) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.available[productID] < qty {
		return false, nil
	}
	c.available[productID] -= qty
	c.reserved[productID] += qty
	return true, nil
}

func (c *MemoryStockCache) Release(ctx context.Context, productID string, qty int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	back := qty
	if back > c.reserved[productID] {
		back = c.reserved[productID]
	}
	c.reserved[productID] -= back
	c.available[productID] += back
	return nil
}

func (c *MemoryStockCache) Commit(ctx context.Context, productID string, qty int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	done := qty
	if done > c.reserved[productID] {
		done = c.reserved[productID]
	}
	c.reserved[productID] -= done
	return nil
}

func (c *MemoryStockCache) SetAvailable(ctx context.Context, productID string, available int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.available[productID] = available
	return nil
}

func (c *MemoryStockCache) SetIdempotency(ctx context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.idempotency[key] {
		return false, nil
	}
	c.idempotency[key] = true
	return true, nil
}
