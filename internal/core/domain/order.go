package domain

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// orderTransitions is the full set of legal status edges. delivered and
// cancelled are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusPaid, OrderStatusCancelled},
	OrderStatusPaid:      {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:   {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered: {},
	OrderStatusCancelled: {},
}

func (s OrderStatus) IsValid() bool {
	_, ok := orderTransitions[s]
	return ok
}

func (s OrderStatus) IsTerminal() bool {
	return s.IsValid() && len(orderTransitions[s]) == 0
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

type Address struct {
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
}

type ShippingInfo struct {
	Address       Address
	Method        string
	CostCents     int64
	EstimatedDays int
}

type PaymentInfo struct {
	Method        string
	Status        PaymentStatus
	TransactionID string
}

// OrderItem snapshots the unit price at purchase time. Later catalog price
// changes must never alter an existing order.
type OrderItem struct {
	ProductID      string
	Quantity       int
	UnitPriceCents int64
}

func (i OrderItem) SubtotalCents() int64 {
	return int64(i.Quantity) * i.UnitPriceCents
}

type Order struct {
	ID         string
	OwnerID    string
	Items      []OrderItem
	TotalCents int64
	Status     OrderStatus
	Shipping   ShippingInfo
	Payment    PaymentInfo
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewOrder creates a pending order and fixes its total: the sum of item
// subtotals plus the shipping cost.
func NewOrder(ownerID string, items []OrderItem, shipping ShippingInfo, paymentMethod string) *Order {
	now := time.Now().UTC()
	o := &Order{
		ID:       uuid.New().String(),
		OwnerID:  ownerID,
		Items:    items,
		Status:   OrderStatusPending,
		Shipping: shipping,
		Payment: PaymentInfo{
			Method: paymentMethod,
			Status: PaymentStatusPending,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	o.TotalCents = o.ItemsTotalCents() + shipping.CostCents
	return o
}

func (o *Order) ItemsTotalCents() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.SubtotalCents()
	}
	return total
}

// Transition moves the order along a legal status edge and stamps UpdatedAt.
// It never touches inventory.
func (o *Order) Transition(next OrderStatus) error {
	if !o.Status.CanTransitionTo(next) {
		return &InvalidStateError{From: o.Status, To: next}
	}
	o.Status = next
	o.UpdatedAt = time.Now().UTC()
	return nil
}
