package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/rl1809/checkout/internal/core/domain"
	"github.com/rl1809/checkout/internal/metrics"
	"github.com/rl1809/checkout/internal/port"
)

// CheckoutConfig carries the shared defaults the orchestrator needs; nothing
// here hides in a global.
type CheckoutConfig struct {
	DefaultShippingCostCents int64
	FromPostalCode           string
	PreferredCarriers        []string
	PackageWidthCm           int
	PackageHeightCm          int
	PackageLengthCm          int
	UnitWeightGrams          int
	ShippingTimeout          time.Duration
	NotifyQueueSize          int
}

// CheckoutService coordinates cart, inventory and order ledgers with the
// external shipping and notification collaborators. The multi-step workflow
// either fully commits (order + debited stock + cleared cart) or fully aborts
// before any durable write; the reserve-then-debit sequence is what keeps
// concurrent checkouts from overselling.
type CheckoutService struct {
	carts     *CartService
	inventory *InventoryService
	orders    *OrderService
	catalog   port.ProductCatalog
	shipping  port.ShippingQuoteProvider
	cache     port.StockCache
	cfg       CheckoutConfig
	m         *metrics.CheckoutMetrics

	notifyQueue chan port.Notification
}

func NewCheckoutService(
	carts *CartService,
	inventory *InventoryService,
	orders *OrderService,
	catalog port.ProductCatalog,
	shipping port.ShippingQuoteProvider,
	cache port.StockCache,
	cfg CheckoutConfig,
	m *metrics.CheckoutMetrics,
) *CheckoutService {
	queueSize := cfg.NotifyQueueSize
	if queueSize <= 0 {
		queueSize = 1024
	}
	return &CheckoutService{
		carts:       carts,
		inventory:   inventory,
		orders:      orders,
		catalog:     catalog,
		shipping:    shipping,
		cache:       cache,
		cfg:         cfg,
		m:           m,
		notifyQueue: make(chan port.Notification, queueSize),
	}
}

// Notifications exposes the pending confirmation queue; a worker pool drains
// it and dispatches best-effort.
func (s *CheckoutService) Notifications() <-chan port.Notification {
	return s.notifyQueue
}

func (s *CheckoutService) Close() {
	close(s.notifyQueue)
}

// CreateOrderFromCart turns the owner's cart into a committed pending order.
// requestID, when set, deduplicates retries of the same checkout attempt.
func (s *CheckoutService) CreateOrderFromCart(ctx context.Context, requestID, ownerID string, address domain.Address, paymentMethod string) (*domain.Order, error) {
	start := time.Now()
	order, err := s.createOrderFromCart(ctx, requestID, ownerID, address, paymentMethod)
	s.observe(start, err)
	return order, err
}

func (s *CheckoutService) createOrderFromCart(ctx context.Context, requestID, ownerID string, address domain.Address, paymentMethod string) (*domain.Order, error) {
	if requestID != "" {
		ok, err := s.cache.SetIdempotency(ctx, "checkout:"+requestID)
		if err != nil {
			return nil, fmt.Errorf("idempotency check: %w", err)
		}
		if !ok {
			return nil, domain.ErrDuplicateRequest
		}
	}

	cart, err := s.carts.GetCart(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}

	items, err := s.buildOrderItems(ctx, cart)
	if err != nil {
		return nil, err
	}

	shipping := s.quoteShipping(ctx, address, cart.TotalItemCount())

	// Reservation is the sole gate that can fail under contention. On any
	// shortfall, holds already taken for this attempt are released and the
	// workflow aborts before a single durable write.
	reserved := make([]domain.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		ok, err := s.inventory.Reserve(ctx, item.ProductID, item.Quantity)
		if err != nil {
			s.releaseAll(ctx, reserved)
			return nil, err
		}
		if !ok {
			s.releaseAll(ctx, reserved)
			if s.m != nil {
				s.m.ReservationConflicts.Inc()
			}
			return nil, fmt.Errorf("%w: product %s", domain.ErrInsufficientStock, item.ProductID)
		}
		reserved = append(reserved, item)
	}

	order, err := s.orders.Create(ctx, ownerID, items, shipping, paymentMethod)
	if err != nil {
		s.releaseAll(ctx, reserved)
		return nil, err
	}

	// Convert each hold into a permanent debit. The order record exists, so
	// failures here are logged and retried out of band rather than unwound.
	for _, item := range reserved {
		if err := s.inventory.CommitReservation(ctx, item.ProductID, item.Quantity, order.ID, ownerID); err != nil {
			log.Printf("checkout: debit failed for order %s product %s: %v", order.ID, item.ProductID, err)
		}
	}

	if err := s.carts.Clear(ctx, ownerID); err != nil {
		log.Printf("checkout: cart clear failed for %s: %v", ownerID, err)
	}

	s.enqueueNotification(port.Notification{
		Recipient:  ownerID,
		TemplateID: "order_confirmation",
		Payload: map[string]any{
			"order_id":    order.ID,
			"total_cents": order.TotalCents,
			"status":      string(order.Status),
		},
	})

	return order, nil
}

// buildOrderItems validates every cart line against catalog and stock and
// snapshots current prices. All violations are collected, not just the first.
func (s *CheckoutService) buildOrderItems(ctx context.Context, cart *domain.Cart) ([]domain.OrderItem, error) {
	ids := make([]string, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.ProductID)
	}

	products, err := s.catalog.GetProducts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("catalog lookup: %w", err)
	}
	productByID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}

	stock, err := s.inventory.GetStockBatch(ctx, ids)
	if err != nil {
		return nil, err
	}
	stockByID := make(map[string]domain.InventoryItem, len(stock))
	for _, item := range stock {
		stockByID[item.ProductID] = item
	}

	var violations []domain.StockViolation
	items := make([]domain.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		product, ok := productByID[line.ProductID]
		if !ok || !product.Active {
			violations = append(violations, domain.StockViolation{
				ProductID: line.ProductID,
				Requested: line.Quantity,
				Reason:    "product not available",
			})
			continue
		}
		inv, ok := stockByID[line.ProductID]
		if !ok || inv.Available < line.Quantity {
			violations = append(violations, domain.StockViolation{
				ProductID: line.ProductID,
				Requested: line.Quantity,
				Available: inv.Available,
				Reason:    "insufficient stock",
			})
			continue
		}
		items = append(items, domain.OrderItem{
			ProductID:      line.ProductID,
			Quantity:       line.Quantity,
			UnitPriceCents: product.PriceCents,
		})
	}
	if len(violations) > 0 {
		return nil, &domain.CartValidationError{Violations: violations}
	}
	return items, nil
}

// quoteShipping asks the provider under a bounded timeout and degrades to the
// configured default cost on error or an empty quote list. Shipping never
// aborts checkout.
func (s *CheckoutService) quoteShipping(ctx context.Context, address domain.Address, totalQty int) domain.ShippingInfo {
	info := domain.ShippingInfo{
		Address:   address,
		Method:    "standard",
		CostCents: s.cfg.DefaultShippingCostCents,
	}

	timeout := s.cfg.ShippingTimeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	qctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	quotes, err := s.shipping.GetQuotes(qctx, port.QuoteRequest{
		FromPostalCode: s.cfg.FromPostalCode,
		ToPostalCode:   address.PostalCode,
		Package: port.PackageSpec{
			WeightGrams: totalQty * s.cfg.UnitWeightGrams,
			WidthCm:     s.cfg.PackageWidthCm,
			HeightCm:    s.cfg.PackageHeightCm,
			LengthCm:    s.cfg.PackageLengthCm,
		},
		PreferredCarriers: s.cfg.PreferredCarriers,
	})
	if err != nil {
		log.Printf("checkout: shipping quote failed, using default cost: %v", err)
		return info
	}
	if len(quotes) == 0 {
		log.Printf("checkout: no shipping quotes, using default cost")
		return info
	}

	best := quotes[0]
	info.Method = best.CarrierName
	info.CostCents = best.PriceCents
	info.EstimatedDays = best.EstimatedDays
	return info
}

// CancelOrder restores the debited stock and moves the order to cancelled.
// Only pending and paid orders may be cancelled here; anything else is
// rejected with no side effects.
func (s *CheckoutService) CancelOrder(ctx context.Context, ownerID, orderID string, admin bool) (*domain.Order, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !admin && order.OwnerID != ownerID {
		return nil, domain.ErrNotOrderOwner
	}
	if order.Status != domain.OrderStatusPending && order.Status != domain.OrderStatusPaid {
		return nil, &domain.InvalidStateError{From: order.Status, To: domain.OrderStatusCancelled}
	}

	// Transition first: UpdateStatus revalidates against the stored state,
	// so a cancel that loses a race to shipment is rejected before any
	// restock lands.
	cancelled, err := s.orders.UpdateStatus(ctx, orderID, domain.OrderStatusCancelled)
	if err != nil {
		return nil, err
	}

	for _, item := range cancelled.Items {
		if err := s.inventory.RestoreStock(ctx, item.ProductID, item.Quantity, cancelled.ID, ownerID); err != nil {
			log.Printf("cancel order %s: restore %dx %s failed: %v", cancelled.ID, item.Quantity, item.ProductID, err)
		}
	}

	return cancelled, nil
}

// UpdateOrderStatus is the administrative pass-through to the order ledger;
// it performs no inventory side effects.
func (s *CheckoutService) UpdateOrderStatus(ctx context.Context, orderID string, next domain.OrderStatus) (*domain.Order, error) {
	return s.orders.UpdateStatus(ctx, orderID, next)
}

func (s *CheckoutService) releaseAll(ctx context.Context, reserved []domain.CartItem) {
	for _, item := range reserved {
		if err := s.inventory.Release(ctx, item.ProductID, item.Quantity); err != nil {
			log.Printf("checkout: release failed for %s: %v", item.ProductID, err)
		}
	}
}

func (s *CheckoutService) enqueueNotification(n port.Notification) {
	select {
	case s.notifyQueue <- n:
	default:
		log.Printf("checkout: notification queue full, dropping confirmation for %s", n.Recipient)
		if s.m != nil {
			s.m.NotificationFailures.Inc()
		}
	}
}

func (s *CheckoutService) observe(start time.Time, err error) {
	if s.m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "failure"
	}
	s.m.Checkouts.WithLabelValues(result).Inc()
	s.m.CheckoutDurationMS.Observe(float64(time.Since(start).Milliseconds()))
}
