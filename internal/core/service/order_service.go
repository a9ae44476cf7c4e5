package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rl1809/checkout/internal/core/domain"
	"github.com/rl1809/checkout/internal/port"
)

// OrderService is the order ledger: it creates immutable order records and
// enforces the status state machine. It never mutates inventory; stock moves
// only through the checkout workflows.
type OrderService struct {
	orders  port.OrderRepository
	gateway port.PaymentGateway
}

func NewOrderService(orders port.OrderRepository, gateway port.PaymentGateway) *OrderService {
	return &OrderService{orders: orders, gateway: gateway}
}

func (s *OrderService) Create(ctx context.Context, ownerID string, items []domain.OrderItem, shipping domain.ShippingInfo, paymentMethod string) (*domain.Order, error) {
	order := domain.NewOrder(ownerID, items, shipping, paymentMethod)
	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order: %w", err)
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, ownerID string) ([]domain.Order, error) {
	return s.orders.ListOrdersByOwner(ctx, ownerID)
}

// UpdateStatus validates the edge against the transition table and stamps
// UpdatedAt. Illegal edges are rejected with InvalidStateError and nothing is
// written.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, next domain.OrderStatus) (*domain.Order, error) {
	if !next.IsValid() {
		return nil, &domain.ValidationError{Field: "status", Reason: "unknown status " + string(next)}
	}
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := order.Transition(next); err != nil {
		return nil, err
	}
	if err := s.orders.UpdateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}
	return order, nil
}

// ProcessPayment charges a pending order through the gateway. A completed
// result moves the order to paid; a failed result leaves it pending with
// payment.status=failed.
func (s *OrderService) ProcessPayment(ctx context.Context, orderID string, payload map[string]any) (*domain.Order, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.OrderStatusPending {
		return nil, &domain.InvalidStateError{From: order.Status, To: domain.OrderStatusPaid}
	}

	result, err := s.gateway.ProcessPayment(ctx, orderID, payload)
	if err != nil {
		return nil, fmt.Errorf("payment gateway: %w", err)
	}

	switch result.Status {
	case port.PaymentResultCompleted:
		order.Payment.Status = domain.PaymentStatusCompleted
		order.Payment.TransactionID = result.TransactionID
		if err := order.Transition(domain.OrderStatusPaid); err != nil {
			return nil, err
		}
	case port.PaymentResultFailed:
		order.Payment.Status = domain.PaymentStatusFailed
		order.UpdatedAt = time.Now().UTC()
	default:
		return nil, fmt.Errorf("payment gateway: unexpected status %q", result.Status)
	}

	if err := s.orders.UpdateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}
	return order, nil
}
