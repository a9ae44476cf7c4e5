package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusPending, OrderStatusPaid, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusShipped, false},
		{OrderStatusPending, OrderStatusDelivered, false},
		{OrderStatusPaid, OrderStatusShipped, true},
		{OrderStatusPaid, OrderStatusCancelled, true},
		{OrderStatusPaid, OrderStatusPending, false},
		{OrderStatusPaid, OrderStatusDelivered, false},
		{OrderStatusShipped, OrderStatusDelivered, true},
		{OrderStatusShipped, OrderStatusCancelled, true},
		{OrderStatusShipped, OrderStatusPaid, false},
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusDelivered, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusPaid, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatusIsTerminal(t *testing.T) {
	assert.True(t, OrderStatusDelivered.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
	assert.False(t, OrderStatusPending.IsTerminal())
	assert.False(t, OrderStatusPaid.IsTerminal())
	assert.False(t, OrderStatusShipped.IsTerminal())
}

func TestOrderStatusIsValid(t *testing.T) {
	assert.True(t, OrderStatusPending.IsValid())
	assert.False(t, OrderStatus("refunded").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}

func TestNewOrder(t *testing.T) {
	items := []OrderItem{
		{ProductID: "a", Quantity: 2, UnitPriceCents: 1500},
		{ProductID: "b", Quantity: 1, UnitPriceCents: 750},
	}
	shipping := ShippingInfo{Method: "standard", CostCents: 500}

	order := NewOrder("user-1", items, shipping, "card")

	require.NotEmpty(t, order.ID)
	assert.Equal(t, "user-1", order.OwnerID)
	assert.Equal(t, OrderStatusPending, order.Status)
	assert.Equal(t, PaymentStatusPending, order.Payment.Status)
	assert.Equal(t, "card", order.Payment.Method)
	// 2*1500 + 750 + 500
	assert.Equal(t, int64(4250), order.TotalCents)
}

func TestOrderTransition(t *testing.T) {
	order := NewOrder("user-1", nil, ShippingInfo{}, "card")

	require.NoError(t, order.Transition(OrderStatusPaid))
	assert.Equal(t, OrderStatusPaid, order.Status)

	err := order.Transition(OrderStatusPending)
	var stateErr *InvalidStateError
	require.True(t, errors.As(err, &stateErr))
	assert.Equal(t, OrderStatusPaid, stateErr.From)
	assert.Equal(t, OrderStatusPending, stateErr.To)
	// Failed transition leaves the order untouched
	assert.Equal(t, OrderStatusPaid, order.Status)
}

func TestOrderItemSubtotal(t *testing.T) {
	item := OrderItem{ProductID: "a", Quantity: 3, UnitPriceCents: 333}
	assert.Equal(t, int64(999), item.SubtotalCents())
}
