package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rl1809/checkout/internal/core/domain"
	"github.com/rl1809/checkout/internal/port"
)

// stockBatchSize caps one repository lookup; larger requests are chunked.
const stockBatchSize = 10

// InventoryService is the ledger for per-product stock counters. The durable
// repository is authoritative; the cache mirrors the available counter as the
// fast reservation gate and is resynced after every durable adjustment.
type InventoryService struct {
	repo  port.InventoryRepository
	cache port.StockCache
}

func NewInventoryService(repo port.InventoryRepository, cache port.StockCache) *InventoryService {
	return &InventoryService{repo: repo, cache: cache}
}

// GetStock returns the stock triple for one product, or (nil, nil) when the
// product has no inventory row yet.
func (s *InventoryService) GetStock(ctx context.Context, productID string) (*domain.InventoryItem, error) {
	return s.repo.GetItem(ctx, productID)
}

// GetStockBatch fetches stock for many products, chunked to respect the
// backend query limit. Chunks are fetched concurrently; input order is
// preserved and unknown products are omitted.
func (s *InventoryService) GetStockBatch(ctx context.Context, productIDs []string) ([]domain.InventoryItem, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}

	byID := make(map[string]domain.InventoryItem, len(productIDs))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < len(productIDs); start += stockBatchSize {
		end := start + stockBatchSize
		if end > len(productIDs) {
			end = len(productIDs)
		}
		chunk := productIDs[start:end]
		g.Go(func() error {
			items, err := s.repo.GetItems(gctx, chunk)
			if err != nil {
				return err
			}
			mu.Lock()
			for _, item := range items {
				byID[item.ProductID] = item
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch stock lookup: %w", err)
	}

	out := make([]domain.InventoryItem, 0, len(byID))
	for _, id := range productIDs {
		if item, ok := byID[id]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

// AdjustStock applies a durable quantity delta (clamped at zero), resyncs the
// cache gate and appends an audit entry. Audit or cache failures are logged
// and never fail the stock mutation.
func (s *InventoryService) AdjustStock(ctx context.Context, productID string, delta int, reason, reference, actor string) (*domain.InventoryItem, error) {
	item, err := s.repo.AdjustQuantity(ctx, productID, delta)
	if err != nil {
		return nil, fmt.Errorf("adjust stock %s: %w", productID, err)
	}

	if err := s.cache.SetAvailable(ctx, productID, item.Available); err != nil {
		log.Printf("inventory: cache resync failed for %s: %v", productID, err)
	}

	s.appendAudit(ctx, domain.AuditEntry{
		ProductID:     productID,
		Delta:         delta,
		QuantityAfter: item.Quantity,
		Reason:        reason,
		Reference:     reference,
		Actor:         actor,
		CreatedAt:     time.Now().UTC(),
	})

	return item, nil
}

// Reserve places a temporary hold on stock. The cache gate absorbs the
// contention; the durable reservation is the authority, and a durable refusal
// rolls the cache hold back.
func (s *InventoryService) Reserve(ctx context.Context, productID string, qty int) (bool, error) {
	ok, err := s.cache.Reserve(ctx, productID, qty)
	if err != nil {
		return false, fmt.Errorf("cache reserve %s: %w", productID, err)
	}
	if !ok {
		return false, nil
	}

	ok, err = s.repo.Reserve(ctx, productID, qty)
	if err != nil || !ok {
		if rbErr := s.cache.Release(ctx, productID, qty); rbErr != nil {
			log.Printf("inventory: cache release rollback failed for %s: %v", productID, rbErr)
		}
	}
	if err != nil {
		return false, fmt.Errorf("reserve %s: %w", productID, err)
	}
	return ok, nil
}

// Release cancels a hold, returning units from reserved back to available.
func (s *InventoryService) Release(ctx context.Context, productID string, qty int) error {
	if err := s.repo.Release(ctx, productID, qty); err != nil {
		return fmt.Errorf("release %s: %w", productID, err)
	}
	if err := s.cache.Release(ctx, productID, qty); err != nil {
		log.Printf("inventory: cache release failed for %s: %v", productID, err)
	}
	return nil
}

// CommitReservation converts a confirmed hold into a permanent debit in one
// atomic step: quantity and reserved drop together so available never dips
// below what concurrent reservations are entitled to. The debit is audited.
func (s *InventoryService) CommitReservation(ctx context.Context, productID string, qty int, reference, actor string) error {
	item, err := s.repo.CommitReservation(ctx, productID, qty)
	if err != nil {
		return fmt.Errorf("commit reservation %s: %w", productID, err)
	}
	if err := s.cache.Commit(ctx, productID, qty); err != nil {
		log.Printf("inventory: cache commit failed for %s: %v", productID, err)
	}

	s.appendAudit(ctx, domain.AuditEntry{
		ProductID:     productID,
		Delta:         -qty,
		QuantityAfter: item.Quantity,
		Reason:        "order_debit",
		Reference:     reference,
		Actor:         actor,
		CreatedAt:     time.Now().UTC(),
	})
	return nil
}

// RestoreStock adds cancelled-order quantities back, durable first, then the
// cache gate.
func (s *InventoryService) RestoreStock(ctx context.Context, productID string, qty int, reference, actor string) error {
	if _, err := s.AdjustStock(ctx, productID, qty, "order_cancelled", reference, actor); err != nil {
		return err
	}
	return nil
}

// ListLowStock returns items at or below their threshold, out-of-stock items
// included.
func (s *InventoryService) ListLowStock(ctx context.Context) ([]domain.InventoryItem, error) {
	return s.repo.ListLowStock(ctx)
}

func (s *InventoryService) SetThreshold(ctx context.Context, productID string, threshold int) error {
	if threshold < 0 {
		return &domain.ValidationError{Field: "threshold", Reason: "must not be negative"}
	}
	return s.repo.SetThreshold(ctx, productID, threshold)
}

func (s *InventoryService) appendAudit(ctx context.Context, entry domain.AuditEntry) {
	if err := s.repo.AppendAudit(ctx, entry); err != nil {
		log.Printf("inventory: audit append failed for %s (%s): %v", entry.ProductID, entry.Reason, err)
	}
}
