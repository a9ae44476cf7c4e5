package storage

import (
	"context"
	"os"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/redis/go-redis/v9"
)

func getRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	return client
}

func stockField(t *testing.T, client *redis.Client, productID, field string) int {
	t.Helper()
	v, err := client.HGet(context.Background(), "stock:"+productID, field).Int()
	if err == redis.Nil {
		return 0
	}
	if err != nil {
		t.Fatalf("failed to read %s: %v", field, err)
	}
	return v
}

func TestReserve_Success(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisAdapter(client)

	// Setup
	client.Del(ctx, "stock:test-item")
	adapter.SetAvailable(ctx, "test-item", 10)

	// Test
	ok, err := adapter.Reserve(ctx, "test-item", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected success")
	}

	// Verify
	if got := stockField(t, client, "test-item", "available"); got != 7 {
		t.Errorf("expected available 7, got %d", got)
	}
	if got := stockField(t, client, "test-item", "reserved"); got != 3 {
		t.Errorf("expected reserved 3, got %d", got)
	}
}

func TestReserve_InsufficientStock(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisAdapter(client)

	// Setup
	client.Del(ctx, "stock:test-item")
	adapter.SetAvailable(ctx, "test-item", 5)

	// Test - try to reserve more than available
	ok, err := adapter.Reserve(ctx, "test-item", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected failure due to insufficient stock")
	}

	// Verify counters unchanged
	if got := stockField(t, client, "test-item", "available"); got != 5 {
		t.Errorf("expected available 5, got %d", got)
	}
	if got := stockField(t, client, "test-item", "reserved"); got != 0 {
		t.Errorf("expected reserved 0, got %d", got)
	}
}

func TestReserve_KeyNotExists(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisAdapter(client)

	// Setup - ensure key doesn't exist
	client.Del(ctx, "stock:nonexistent")

	// Test
	ok, err := adapter.Reserve(ctx, "nonexistent", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected failure for nonexistent key")
	}
}

func TestReserve_Concurrent(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisAdapter(client)

	initialStock := 20
	totalRequests := 50

	// Setup
	client.Del(ctx, "stock:concurrent-test")
	adapter.SetAvailable(ctx, "concurrent-test", initialStock)

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := adapter.Reserve(ctx, "concurrent-test", 1)
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

	if got := stockField(t, client, "concurrent-test", "available"); got != 0 {
		t.Errorf("expected available 0, got %d", got)
	}
	if got := stockField(t, client, "concurrent-test", "reserved"); got != initialStock {
		t.Errorf("expected reserved %d, got %d", initialStock, got)
	}
}

func TestRelease(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisAdapter(client)

	// Setup
	client.Del(ctx, "stock:test-item")
	adapter.SetAvailable(ctx, "test-item", 10)
	adapter.Reserve(ctx, "test-item", 4)

	// Test
	if err := adapter.Release(ctx, "test-item", 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Verify
	if got := stockField(t, client, "test-item", "available"); got != 9 {
		t.Errorf("expected available 9, got %d", got)
	}
	if got := stockField(t, client, "test-item", "reserved"); got != 1 {
		t.Errorf("expected reserved 1, got %d", got)
	}
}

func TestRelease_ClampedToReserved(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisAdapter(client)

	// Setup - only 2 units held
	client.Del(ctx, "stock:test-item")
	adapter.SetAvailable(ctx, "test-item", 10)
	adapter.Reserve(ctx, "test-item", 2)

	// Test - release more than is held
	if err := adapter.Release(ctx, "test-item", 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Verify release never mints stock
	if got := stockField(t, client, "test-item", "available"); got != 10 {
		t.Errorf("expected available 10, got %d", got)
	}
	if got := stockField(t, client, "test-item", "reserved"); got != 0 {
		t.Errorf("expected reserved 0, got %d", got)
	}
}

func TestCommit(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisAdapter(client)

	// Setup
	client.Del(ctx, "stock:test-item")
	adapter.SetAvailable(ctx, "test-item", 10)
	adapter.Reserve(ctx, "test-item", 4)

	// Test - commit consumes the hold without touching available
	if err := adapter.Commit(ctx, "test-item", 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Verify
	if got := stockField(t, client, "test-item", "available"); got != 6 {
		t.Errorf("expected available 6, got %d", got)
	}
	if got := stockField(t, client, "test-item", "reserved"); got != 0 {
		t.Errorf("expected reserved 0, got %d", got)
	}
}

func TestSetIdempotency_Success(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisAdapter(client)

	// Setup
	client.Del(ctx, "test-idem-key")

	// First call should succeed
	ok, err := adapter.SetIdempotency(ctx, "test-idem-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected first call to succeed")
	}

	// Second call should fail (key exists)
	ok, err = adapter.SetIdempotency(ctx, "test-idem-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected second call to fail")
	}
}

func TestSetIdempotency_Concurrent(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisAdapter(client)

	// Setup
	client.Del(ctx, "concurrent-idem-key")

	var successCount atomic.Int32
	var wg sync.WaitGroup
	concurrency := 100

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := adapter.SetIdempotency(ctx, "concurrent-idem-key")
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

	// Only one should succeed
	if successCount.Load() != 1 {
		t.Errorf("expected exactly 1 success, got %d", successCount.Load())
	}
}
