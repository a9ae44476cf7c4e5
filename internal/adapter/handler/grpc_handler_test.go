package handler

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/protobuf/proto"

	"github.com/rl1809/checkout/internal/adapter/handler/pb"
	"github.com/rl1809/checkout/internal/adapter/storage"
	"github.com/rl1809/checkout/internal/core/domain"
	"github.com/rl1809/checkout/internal/core/service"
	"github.com/rl1809/checkout/internal/metrics"
	"github.com/rl1809/checkout/internal/port"
)

type grpcFixture struct {
	handler   *GRPCHandler
	carts     *service.CartService
	inventory *service.InventoryService
	catalog   *storage.MemoryProductCatalog
}

func newGRPCFixture(t *testing.T) *grpcFixture {
	t.Helper()

	invRepo := storage.NewMemoryInventoryRepository(5)
	cache := storage.NewMemoryStockCache()
	catalog := storage.NewMemoryProductCatalog()

	carts := service.NewCartService(storage.NewMemoryCartRepository())
	inventory := service.NewInventoryService(invRepo, cache)
	orders := service.NewOrderService(storage.NewMemoryOrderRepository(), stubPayments{status: port.PaymentResultCompleted})
	checkout := service.NewCheckoutService(carts, inventory, orders,
		catalog, stubQuotes{}, cache,
		service.CheckoutConfig{DefaultShippingCostCents: 500, NotifyQueueSize: 100},
		metrics.NewCheckoutMetrics(prometheus.NewRegistry()))
	t.Cleanup(checkout.Close)

	return &grpcFixture{
		handler:   NewGRPCHandler(checkout, inventory),
		carts:     carts,
		inventory: inventory,
		catalog:   catalog,
	}
}

func (f *grpcFixture) seedProduct(t *testing.T, id string, priceCents int64, stock int) {
	t.Helper()
	f.catalog.PutProduct(domain.Product{ID: id, SKU: "SKU-" + id, Name: id, PriceCents: priceCents, Active: true})
	if _, err := f.inventory.AdjustStock(context.Background(), id, stock, "restock", "", "test"); err != nil {
		t.Fatalf("seed stock failed: %v", err)
	}
}

var grpcTestAddress = &pb.Address{
	Street:     "1 Main St",
	City:       "Springfield",
	State:      "IL",
	PostalCode: "62701",
	Country:    "US",
}

// The file descriptor is parsed lazily at package init; marshalling a
// message with a nested field goes through it end to end.
func TestCheckoutProtoWireRoundTrip(t *testing.T) {
	in := &pb.CheckoutRequest{
		RequestId:     "req-1",
		OwnerId:       "user-1",
		Address:       grpcTestAddress,
		PaymentMethod: "card",
	}

	raw, err := proto.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	out := &pb.CheckoutRequest{}
	if err := proto.Unmarshal(raw, out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.GetOwnerId() != "user-1" || out.GetPaymentMethod() != "card" {
		t.Errorf("round trip lost fields: %+v", out)
	}
	if out.GetAddress().GetPostalCode() != "62701" {
		t.Errorf("round trip lost nested address: %+v", out.GetAddress())
	}

	svc := pb.File_checkout_proto.Services()
	if svc.Len() != 1 {
		t.Fatalf("expected 1 service in descriptor, got %d", svc.Len())
	}
	methods := svc.Get(0).Methods()
	want := map[string]bool{"Checkout": false, "CancelOrder": false, "GetStock": false}
	for i := 0; i < methods.Len(); i++ {
		want[string(methods.Get(i).Name())] = true
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("method %s missing from descriptor", name)
		}
	}
}

func TestGRPCCheckout(t *testing.T) {
	f := newGRPCFixture(t)
	ctx := context.Background()
	f.seedProduct(t, "widget", 1000, 10)
	if _, err := f.carts.AddItem(ctx, "user-1", "widget", 2); err != nil {
		t.Fatalf("add item: %v", err)
	}

	resp, err := f.handler.Checkout(ctx, &pb.CheckoutRequest{
		OwnerId:       "user-1",
		Address:       grpcTestAddress,
		PaymentMethod: "card",
	})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if !resp.GetSuccess() {
		t.Fatalf("expected success, got: %s", resp.GetMessage())
	}
	if resp.GetOrderId() == "" {
		t.Error("expected an order id")
	}
	if resp.GetTotalCents() != 2500 {
		t.Errorf("expected total 2500, got %d", resp.GetTotalCents())
	}
}

func TestGRPCCheckout_EmptyCart(t *testing.T) {
	f := newGRPCFixture(t)

	resp, err := f.handler.Checkout(context.Background(), &pb.CheckoutRequest{
		OwnerId:       "user-1",
		Address:       grpcTestAddress,
		PaymentMethod: "card",
	})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if resp.GetSuccess() {
		t.Fatal("expected failure for empty cart")
	}
	if resp.GetMessage() != "cart is empty" {
		t.Errorf("unexpected message: %s", resp.GetMessage())
	}
}

func TestGRPCCancelOrder(t *testing.T) {
	f := newGRPCFixture(t)
	ctx := context.Background()
	f.seedProduct(t, "widget", 1000, 10)
	if _, err := f.carts.AddItem(ctx, "user-1", "widget", 1); err != nil {
		t.Fatalf("add item: %v", err)
	}
	checkoutResp, err := f.handler.Checkout(ctx, &pb.CheckoutRequest{
		OwnerId: "user-1", Address: grpcTestAddress, PaymentMethod: "card",
	})
	if err != nil || !checkoutResp.GetSuccess() {
		t.Fatalf("checkout failed: %v %s", err, checkoutResp.GetMessage())
	}

	resp, err := f.handler.CancelOrder(ctx, &pb.CancelOrderRequest{
		OwnerId: "user-2", OrderId: checkoutResp.GetOrderId(),
	})
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if resp.GetSuccess() || resp.GetMessage() != "forbidden" {
		t.Errorf("expected forbidden for non-owner, got %v %s", resp.GetSuccess(), resp.GetMessage())
	}

	resp, err = f.handler.CancelOrder(ctx, &pb.CancelOrderRequest{
		OwnerId: "user-1", OrderId: checkoutResp.GetOrderId(),
	})
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if !resp.GetSuccess() {
		t.Errorf("expected cancel to succeed: %s", resp.GetMessage())
	}
}

func TestGRPCGetStock(t *testing.T) {
	f := newGRPCFixture(t)
	ctx := context.Background()
	f.seedProduct(t, "widget", 1000, 7)

	resp, err := f.handler.GetStock(ctx, &pb.GetStockRequest{ProductId: "widget"})
	if err != nil {
		t.Fatalf("get stock: %v", err)
	}
	if resp.GetQuantity() != 7 || resp.GetAvailable() != 7 {
		t.Errorf("unexpected stock: %+v", resp)
	}

	resp, err = f.handler.GetStock(ctx, &pb.GetStockRequest{ProductId: "ghost"})
	if err != nil {
		t.Fatalf("get stock unknown: %v", err)
	}
	if resp.GetStatus() != string(domain.StockStatusOutOfStock) {
		t.Errorf("expected out_of_stock for unknown product, got %s", resp.GetStatus())
	}
}
