package handler

import (
	"context"
	"errors"

	"github.com/rl1809/checkout/internal/adapter/handler/pb"
	"github.com/rl1809/checkout/internal/core/domain"
	"github.com/rl1809/checkout/internal/core/service"
)

type GRPCHandler struct {
	pb.UnimplementedCheckoutServiceServer
	checkout  *service.CheckoutService
	inventory *service.InventoryService
}

func NewGRPCHandler(checkout *service.CheckoutService, inventory *service.InventoryService) *GRPCHandler {
	return &GRPCHandler{checkout: checkout, inventory: inventory}
}

func (h *GRPCHandler) Checkout(ctx context.Context, req *pb.CheckoutRequest) (*pb.CheckoutResponse, error) {
	address := domain.Address{}
	if a := req.GetAddress(); a != nil {
		address = domain.Address{
			Street:     a.GetStreet(),
			City:       a.GetCity(),
			State:      a.GetState(),
			PostalCode: a.GetPostalCode(),
			Country:    a.GetCountry(),
		}
	}

	order, err := h.checkout.CreateOrderFromCart(ctx, req.GetRequestId(), req.GetOwnerId(), address, req.GetPaymentMethod())
	if err != nil {
		return &pb.CheckoutResponse{
			Success: false,
			Message: checkoutFailureMessage(err),
		}, nil
	}

	return &pb.CheckoutResponse{
		Success:    true,
		Message:    "order created",
		OrderId:    order.ID,
		TotalCents: order.TotalCents,
	}, nil
}

func (h *GRPCHandler) CancelOrder(ctx context.Context, req *pb.CancelOrderRequest) (*pb.CancelOrderResponse, error) {
	_, err := h.checkout.CancelOrder(ctx, req.GetOwnerId(), req.GetOrderId(), req.GetAdmin())
	if err != nil {
		return &pb.CancelOrderResponse{
			Success: false,
			Message: checkoutFailureMessage(err),
		}, nil
	}
	return &pb.CancelOrderResponse{
		Success: true,
		Message: "order cancelled",
	}, nil
}

func (h *GRPCHandler) GetStock(ctx context.Context, req *pb.GetStockRequest) (*pb.GetStockResponse, error) {
	item, err := h.inventory.GetStock(ctx, req.GetProductId())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return &pb.GetStockResponse{
			ProductId: req.GetProductId(),
			Status:    string(domain.StockStatusOutOfStock),
		}, nil
	}
	return &pb.GetStockResponse{
		ProductId: item.ProductID,
		Quantity:  int64(item.Quantity),
		Reserved:  int64(item.Reserved),
		Available: int64(item.Available),
		Status:    string(item.StockStatus()),
	}, nil
}

func checkoutFailureMessage(err error) string {
	var stateErr *domain.InvalidStateError
	var cartErr *domain.CartValidationError

	switch {
	case errors.Is(err, domain.ErrDuplicateRequest):
		return "duplicate request"
	case errors.Is(err, domain.ErrInsufficientStock):
		return "sold out"
	case errors.Is(err, domain.ErrEmptyCart):
		return "cart is empty"
	case errors.Is(err, domain.ErrOrderNotFound):
		return "order not found"
	case errors.Is(err, domain.ErrNotOrderOwner):
		return "forbidden"
	case errors.As(err, &stateErr):
		return stateErr.Error()
	case errors.As(err, &cartErr):
		return cartErr.Error()
	default:
		return "internal error"
	}
}
