package storage

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/rl1809/checkout/internal/core/domain"
)

// Tables come from schema.sql at the repo root.
func getMySQLDB(t *testing.T) *sql.DB {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = "root:root@tcp(localhost:3306)/checkout?parseTime=true"
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Skipf("MySQL not available: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("MySQL not available: %v", err)
	}

	return db
}

func resetInventoryRow(t *testing.T, db *sql.DB, productID string, quantity, reserved int) {
	t.Helper()
	ctx := context.Background()
	_, err := db.ExecContext(ctx, `
		INSERT INTO inventory (product_id, sku, quantity, reserved, available, low_stock_threshold)
		VALUES (?, '', ?, ?, ?, 5)
		ON DUPLICATE KEY UPDATE quantity = VALUES(quantity), reserved = VALUES(reserved),
			available = VALUES(available), low_stock_threshold = 5`,
		productID, quantity, reserved, quantity-reserved)
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}
}

func TestReserveMySQL_Success(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db, 5)

	resetInventoryRow(t, db, "test-item", 10, 0)

	ok, err := adapter.Reserve(ctx, "test-item", 3)
	if err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}
	if !ok {
		t.Error("expected success")
	}

	item, err := adapter.GetItem(ctx, "test-item")
	if err != nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	if item.Quantity != 10 || item.Reserved != 3 || item.Available != 7 {
		t.Errorf("expected 10/3/7, got %d/%d/%d", item.Quantity, item.Reserved, item.Available)
	}
}

func TestReserveMySQL_InsufficientStock(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db, 5)

	resetInventoryRow(t, db, "test-item", 5, 3)

	// Only 2 units available
	ok, err := adapter.Reserve(ctx, "test-item", 3)
	if err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}
	if ok {
		t.Error("expected failure due to insufficient stock")
	}

	item, _ := adapter.GetItem(ctx, "test-item")
	if item.Reserved != 3 || item.Available != 2 {
		t.Errorf("expected counters unchanged, got reserved=%d available=%d", item.Reserved, item.Available)
	}
}

func TestReserveMySQL_Concurrent(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db, 5)

	initialStock := 20
	totalRequests := 50

	resetInventoryRow(t, db, "concurrent-item", initialStock, 0)

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := adapter.Reserve(ctx, "concurrent-item", 1)
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if ok {
				successCount.Add(1)
			}
		}()
	}

	wg.Wait()

	if successCount.Load() != int32(initialStock) {
		t.Errorf("expected %d successes, got %d", initialStock, successCount.Load())
	}

	item, _ := adapter.GetItem(ctx, "concurrent-item")
	if item.Available != 0 || item.Reserved != initialStock {
		t.Errorf("expected available=0 reserved=%d, got %d/%d",
			initialStock, item.Available, item.Reserved)
	}
}

func TestCommitReservationMySQL(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db, 5)

	resetInventoryRow(t, db, "test-item", 10, 4)

	item, err := adapter.CommitReservation(ctx, "test-item", 4)
	if err != nil {
		t.Fatalf("CommitReservation failed: %v", err)
	}

	// Quantity and reserved drop together; available is untouched
	if item.Quantity != 6 || item.Reserved != 0 || item.Available != 6 {
		t.Errorf("expected 6/0/6, got %d/%d/%d", item.Quantity, item.Reserved, item.Available)
	}
}

func TestReleaseMySQL_ClampedToReserved(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db, 5)

	resetInventoryRow(t, db, "test-item", 10, 2)

	// Release more than is held
	if err := adapter.Release(ctx, "test-item", 5); err != nil {
		t.Fatalf("Release failed: %v", err)
	}

	item, _ := adapter.GetItem(ctx, "test-item")
	if item.Reserved != 0 || item.Available != 10 {
		t.Errorf("expected reserved=0 available=10, got %d/%d", item.Reserved, item.Available)
	}
}

func TestAdjustQuantity_LazyCreate(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db, 5)

	db.ExecContext(ctx, `DELETE FROM inventory WHERE product_id = 'fresh-item'`)

	item, err := adapter.AdjustQuantity(ctx, "fresh-item", 15)
	if err != nil {
		t.Fatalf("AdjustQuantity failed: %v", err)
	}

	if item.Quantity != 15 || item.Available != 15 {
		t.Errorf("expected quantity 15, got %d/%d", item.Quantity, item.Available)
	}
	if item.LowStockThreshold != 5 {
		t.Errorf("expected default threshold 5, got %d", item.LowStockThreshold)
	}
}

func TestAdjustQuantity_ClampsAtZero(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db, 5)

	resetInventoryRow(t, db, "test-item", 3, 0)

	item, err := adapter.AdjustQuantity(ctx, "test-item", -10)
	if err != nil {
		t.Fatalf("AdjustQuantity failed: %v", err)
	}

	if item.Quantity != 0 || item.Reserved != 0 || item.Available != 0 {
		t.Errorf("expected 0/0/0, got %d/%d/%d", item.Quantity, item.Reserved, item.Available)
	}
}

func TestGetItem_NotFound(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db, 5)

	db.ExecContext(ctx, `DELETE FROM inventory WHERE product_id = 'nonexistent-item'`)

	item, err := adapter.GetItem(ctx, "nonexistent-item")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item != nil {
		t.Error("expected nil for nonexistent item")
	}
}

func TestSaveCart_Roundtrip(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db, 5)

	owner := "cart-test-user"
	db.ExecContext(ctx, `DELETE FROM cart_items WHERE owner_id = ?`, owner)
	db.ExecContext(ctx, `DELETE FROM carts WHERE owner_id = ?`, owner)

	cart := domain.NewCart(owner)
	cart.AddItem("prod-1", 2)
	cart.AddItem("prod-2", 1)

	if err := adapter.SaveCart(ctx, cart); err != nil {
		t.Fatalf("SaveCart failed: %v", err)
	}

	loaded, err := adapter.GetCart(ctx, owner)
	if err != nil {
		t.Fatalf("GetCart failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected cart, got nil")
	}
	if len(loaded.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(loaded.Items))
	}

	// Replacement write drops removed lines
	cart.RemoveItem("prod-1")
	if err := adapter.SaveCart(ctx, cart); err != nil {
		t.Fatalf("SaveCart failed: %v", err)
	}
	loaded, _ = adapter.GetCart(ctx, owner)
	if len(loaded.Items) != 1 || loaded.Items[0].ProductID != "prod-2" {
		t.Errorf("expected only prod-2, got %+v", loaded.Items)
	}

	// Cleanup
	db.ExecContext(ctx, `DELETE FROM cart_items WHERE owner_id = ?`, owner)
	db.ExecContext(ctx, `DELETE FROM carts WHERE owner_id = ?`, owner)
}

func TestGetCart_NotFound(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db, 5)

	cart, err := adapter.GetCart(ctx, "nonexistent-user")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart != nil {
		t.Error("expected nil for nonexistent cart")
	}
}

func TestOrderMySQL_Roundtrip(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db, 5)

	order := domain.NewOrder("order-test-user",
		[]domain.OrderItem{
			{ProductID: "prod-1", Quantity: 2, UnitPriceCents: 1500},
		},
		domain.ShippingInfo{
			Address: domain.Address{
				Street:     "1 Test St",
				City:       "Testville",
				PostalCode: "94100",
				Country:    "US",
			},
			Method:    "standard",
			CostCents: 500,
		},
		"card")

	if err := adapter.CreateOrder(ctx, order); err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}

	loaded, err := adapter.GetOrder(ctx, order.ID)
	if err != nil {
		t.Fatalf("GetOrder failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected order, got nil")
	}
	if loaded.TotalCents != 3500 {
		t.Errorf("expected total 3500, got %d", loaded.TotalCents)
	}
	if len(loaded.Items) != 1 || loaded.Items[0].Quantity != 2 {
		t.Errorf("unexpected items: %+v", loaded.Items)
	}
	if loaded.Status != domain.OrderStatusPending {
		t.Errorf("expected pending, got %s", loaded.Status)
	}

	// Status update writes through
	loaded.Status = domain.OrderStatusPaid
	loaded.Payment.Status = domain.PaymentStatusCompleted
	loaded.Payment.TransactionID = "txn-123"
	loaded.UpdatedAt = time.Now().UTC()
	if err := adapter.UpdateOrder(ctx, loaded); err != nil {
		t.Fatalf("UpdateOrder failed: %v", err)
	}

	again, _ := adapter.GetOrder(ctx, order.ID)
	if again.Status != domain.OrderStatusPaid || again.Payment.TransactionID != "txn-123" {
		t.Errorf("update not persisted: %s / %s", again.Status, again.Payment.TransactionID)
	}

	// Cleanup
	db.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = ?`, order.ID)
	db.ExecContext(ctx, `DELETE FROM orders WHERE id = ?`, order.ID)
}

func TestUpdateOrder_NotFound(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db, 5)

	order := domain.NewOrder("ghost", nil, domain.ShippingInfo{}, "card")
	err := adapter.UpdateOrder(ctx, order)
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got: %v", err)
	}
}
