package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrDuplicateRequest  = errors.New("duplicate request")
	ErrOrderNotFound     = errors.New("order not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrNotOrderOwner     = errors.New("order belongs to another customer")
)

// ValidationError reports a single malformed input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// StockViolation describes one cart line that cannot be fulfilled.
type StockViolation struct {
	ProductID string `json:"product_id"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
	Reason    string `json:"reason"`
}

// CartValidationError aggregates every offending cart line, not just the first.
type CartValidationError struct {
	Violations []StockViolation
}

func (e *CartValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s (requested %d, available %d)",
			v.ProductID, v.Reason, v.Requested, v.Available))
	}
	return "cart validation failed: " + strings.Join(parts, "; ")
}

// InvalidStateError reports an order-status edge outside the transition table.
type InvalidStateError struct {
	From OrderStatus
	To   OrderStatus
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid order transition %s -> %s", e.From, e.To)
}
