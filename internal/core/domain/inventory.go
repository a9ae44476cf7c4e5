package domain

import "time"

type StockStatus string

const (
	StockStatusInStock    StockStatus = "in_stock"
	StockStatusLowStock   StockStatus = "low_stock"
	StockStatusOutOfStock StockStatus = "out_of_stock"
)

// InventoryItem is the per-product stock triple. At all times
// 0 <= Reserved <= Quantity and Available == Quantity - Reserved.
type InventoryItem struct {
	ProductID         string
	SKU               string
	Quantity          int
	Reserved          int
	Available         int
	LowStockThreshold int
	LastUpdated       time.Time
}

func (i InventoryItem) StockStatus() StockStatus {
	switch {
	case i.Quantity == 0:
		return StockStatusOutOfStock
	case i.Quantity <= i.LowStockThreshold:
		return StockStatusLowStock
	default:
		return StockStatusInStock
	}
}

// AuditEntry records a single durable stock mutation. The audit log is
// append-only and keyed by (product, timestamp).
type AuditEntry struct {
	ProductID     string
	Delta         int
	QuantityAfter int
	Reason        string
	Reference     string
	Actor         string
	CreatedAt     time.Time
}
