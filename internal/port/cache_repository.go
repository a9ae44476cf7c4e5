package port

import "context"

// StockCache is the hot-path reservation gate in front of the durable
// inventory store. All mutations are atomic on the cache side.
type StockCache interface {
	// Reserve atomically moves qty from available to reserved, returning
	// false (not an error) when available < qty.
	Reserve(ctx context.Context, productID string, qty int) (bool, error)

	// Release returns up to qty units from reserved back to available.
	Release(ctx context.Context, productID string, qty int) error

	// Commit drops up to qty units from reserved without touching available;
	// the durable quantity has already been debited.
	Commit(ctx context.Context, productID string, qty int) error

	// SetAvailable overwrites the gate counter from the durable store.
	SetAvailable(ctx context.Context, productID string, available int) error

	// SetIdempotency sets a key for idempotency check, returns false if already exists.
	SetIdempotency(ctx context.Context, key string) (bool, error)
}
