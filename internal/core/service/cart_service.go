package service

import (
	"context"
	"fmt"

	"github.com/rl1809/checkout/internal/core/domain"
	"github.com/rl1809/checkout/internal/port"
)

// CartService owns each customer's in-progress selection. Mutations are
// scoped per owner; concurrent sessions for the same owner resolve
// last-write-wins on the cart's UpdatedAt.
type CartService struct {
	carts port.CartRepository
}

func NewCartService(carts port.CartRepository) *CartService {
	return &CartService{carts: carts}
}

// GetCart returns the owner's cart, or a fresh empty one if none exists yet.
func (s *CartService) GetCart(ctx context.Context, ownerID string) (*domain.Cart, error) {
	cart, err := s.carts.GetCart(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if cart == nil {
		cart = domain.NewCart(ownerID)
	}
	return cart, nil
}

func (s *CartService) AddItem(ctx context.Context, ownerID, productID string, quantity int) (*domain.Cart, error) {
	cart, err := s.GetCart(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if err := cart.AddItem(productID, quantity); err != nil {
		return nil, err
	}
	if err := s.carts.SaveCart(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return cart, nil
}

func (s *CartService) RemoveItem(ctx context.Context, ownerID, productID string) (*domain.Cart, error) {
	cart, err := s.GetCart(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	cart.RemoveItem(productID)
	if err := s.carts.SaveCart(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return cart, nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, ownerID, productID string, quantity int) (*domain.Cart, error) {
	cart, err := s.GetCart(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	cart.UpdateQuantity(productID, quantity)
	if err := s.carts.SaveCart(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return cart, nil
}

// Clear empties the cart but keeps the record.
func (s *CartService) Clear(ctx context.Context, ownerID string) error {
	cart, err := s.GetCart(ctx, ownerID)
	if err != nil {
		return err
	}
	cart.Clear()
	if err := s.carts.SaveCart(ctx, cart); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}
