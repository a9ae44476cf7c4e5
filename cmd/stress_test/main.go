package main

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/rl1809/checkout/internal/adapter/storage"
	"github.com/rl1809/checkout/internal/core/domain"
	"github.com/rl1809/checkout/internal/core/service"
	"github.com/rl1809/checkout/internal/metrics"
	"github.com/rl1809/checkout/internal/port"
)

const (
	redisAddr     = "localhost:6379"
	productID     = "hot-item"
	initialStock  = 20
	totalRequests = 50
	queueSize     = 100
)

// noQuotes forces the default shipping cost so the run never depends on an
// external quote service.
type noQuotes struct{}

func (noQuotes) GetQuotes(ctx context.Context, req port.QuoteRequest) ([]port.Quote, error) {
	return nil, nil
}

type noPayments struct{}

func (noPayments) ProcessPayment(ctx context.Context, orderID string, payload map[string]any) (*port.PaymentResult, error) {
	return &port.PaymentResult{Status: port.PaymentResultCompleted}, nil
}

func main() {
	ctx := context.Background()

	// Initialize Redis
	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}
	defer rdb.Close()

	// Clear previous test data
	rdb.Del(ctx, "stock:"+productID)

	// In-memory durable stores keep the run self-contained; Redis stays in the
	// loop as the hot-path reservation gate, same as production.
	cartRepo := storage.NewMemoryCartRepository()
	orderRepo := storage.NewMemoryOrderRepository()
	inventoryRepo := storage.NewMemoryInventoryRepository(5)
	catalog := storage.NewMemoryProductCatalog()
	redisAdapter := storage.NewRedisAdapter(rdb)

	catalog.PutProduct(domain.Product{
		ID:         productID,
		SKU:        "HOT-001",
		Name:       "Hot Item",
		PriceCents: 1999,
		Active:     true,
	})

	cartService := service.NewCartService(cartRepo)
	inventoryService := service.NewInventoryService(inventoryRepo, redisAdapter)
	orderService := service.NewOrderService(orderRepo, noPayments{})
	checkoutService := service.NewCheckoutService(
		cartService, inventoryService, orderService,
		catalog, noQuotes{}, redisAdapter,
		service.CheckoutConfig{
			DefaultShippingCostCents: 500,
			NotifyQueueSize:          queueSize,
		},
		metrics.NewCheckoutMetrics(prometheus.NewRegistry()),
	)
	defer checkoutService.Close()

	// Drain the notification queue in background
	go func() {
		for range checkoutService.Notifications() {
		}
	}()

	// Seed stock and one-item carts
	if _, err := inventoryService.AdjustStock(ctx, productID, initialStock, "stress_seed", "", "stress"); err != nil {
		log.Fatalf("failed to seed stock: %v", err)
	}
	address := domain.Address{
		Street:     "1 Stress St",
		City:       "Loadville",
		PostalCode: "94100",
		Country:    "US",
	}
	for i := 0; i < totalRequests; i++ {
		owner := fmt.Sprintf("user-%d", i)
		if _, err := cartService.AddItem(ctx, owner, productID, 1); err != nil {
			log.Fatalf("failed to seed cart for %s: %v", owner, err)
		}
	}

	// Counters
	var successCount atomic.Int32
	var failCount atomic.Int32

	// Spawn concurrent requests
	var wg sync.WaitGroup
	start := time.Now()

	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func(userID int) {
			defer wg.Done()

			owner := fmt.Sprintf("user-%d", userID)
			_, err := checkoutService.CreateOrderFromCart(ctx, "", owner, address, "card")
			if err == nil {
				successCount.Add(1)
			} else {
				failCount.Add(1)
			}
		}(i)
	}

	wg.Wait()
	elapsed := time.Since(start)

	// Results
	success := successCount.Load()
	fail := failCount.Load()

	fmt.Println("========== STRESS TEST RESULTS ==========")
	fmt.Printf("Initial Stock:    %d\n", initialStock)
	fmt.Printf("Total Requests:   %d\n", totalRequests)
	fmt.Printf("Successful:       %d\n", success)
	fmt.Printf("Failed:           %d\n", fail)
	fmt.Printf("Duration:         %v\n", elapsed)
	fmt.Println("==========================================")

	// Assertions
	if success == int32(initialStock) && fail == int32(totalRequests-initialStock) {
		fmt.Printf("PASS: Exactly %d orders succeeded, %d failed\n", initialStock, totalRequests-initialStock)
	} else {
		fmt.Printf("FAIL: Expected %d success/%d fail, got %d/%d\n",
			initialStock, totalRequests-initialStock, success, fail)
	}

	// Verify final durable stock
	item, err := inventoryRepo.GetItem(ctx, productID)
	if err != nil {
		log.Fatalf("failed to read final stock: %v", err)
	}
	fmt.Printf("Final Stock: quantity=%d reserved=%d available=%d\n", item.Quantity, item.Reserved, item.Available)

	if item.Quantity == 0 && item.Reserved == 0 {
		fmt.Println("PASS: Stock depleted to 0 with no stranded holds")
	} else {
		fmt.Printf("FAIL: Expected 0/0, got %d/%d\n", item.Quantity, item.Reserved)
	}
}
