package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"

	"github.com/rl1809/checkout/internal/adapter/handler"
	"github.com/rl1809/checkout/internal/adapter/handler/pb"
	"github.com/rl1809/checkout/internal/adapter/notification"
	"github.com/rl1809/checkout/internal/adapter/payment"
	"github.com/rl1809/checkout/internal/adapter/shipping"
	"github.com/rl1809/checkout/internal/adapter/storage"
	"github.com/rl1809/checkout/internal/config"
	"github.com/rl1809/checkout/internal/core/service"
	"github.com/rl1809/checkout/internal/metrics"
	"github.com/rl1809/checkout/internal/port"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize MySQL
	db, err := sql.Open("mysql", cfg.MySQL.DSN)
	if err != nil {
		log.Fatalf("failed to connect mysql: %v", err)
	}
	db.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.MySQL.ConnMaxLifetime.Std())

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping mysql: %v", err)
	}
	log.Println("connected to mysql")

	// Initialize Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}
	log.Println("connected to redis")

	// Initialize adapters
	mysqlAdapter := storage.NewMySQLAdapter(db, cfg.Inventory.DefaultLowStockThreshold)
	redisAdapter := storage.NewRedisAdapter(rdb)
	quoteProvider := shipping.NewHTTPProvider(cfg.Shipping.BaseURL, cfg.Shipping.Timeout.Std())
	gateway := payment.NewHTTPGateway(cfg.Payment.BaseURL, cfg.Payment.Timeout.Std())
	dispatcher := notification.NewKafkaDispatcher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	defer dispatcher.Close()
	if !dispatcher.Enabled() {
		log.Println("kafka disabled, notifications will be dropped")
	}

	// Initialize services
	m := metrics.NewCheckoutMetrics(prometheus.DefaultRegisterer)
	cartService := service.NewCartService(mysqlAdapter)
	inventoryService := service.NewInventoryService(mysqlAdapter, redisAdapter)
	orderService := service.NewOrderService(mysqlAdapter, gateway)
	checkoutService := service.NewCheckoutService(
		cartService, inventoryService, orderService,
		mysqlAdapter, quoteProvider, redisAdapter,
		service.CheckoutConfig{
			DefaultShippingCostCents: cfg.Shipping.DefaultCostCents,
			FromPostalCode:           cfg.Shipping.FromPostalCode,
			PreferredCarriers:        cfg.Shipping.PreferredCarriers,
			PackageWidthCm:           cfg.Shipping.PackageWidthCm,
			PackageHeightCm:          cfg.Shipping.PackageHeightCm,
			PackageLengthCm:          cfg.Shipping.PackageLengthCm,
			UnitWeightGrams:          cfg.Shipping.UnitWeightGrams,
			ShippingTimeout:          cfg.Shipping.Timeout.Std(),
			NotifyQueueSize:          cfg.Checkout.NotifyQueueSize,
		},
		m,
	)

	// Start notification workers
	var wg sync.WaitGroup
	for i := 0; i < cfg.Checkout.WorkerCount; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			notifyLoop(id, checkoutService.Notifications(), dispatcher, m)
		}(i)
	}
	log.Printf("started %d notification workers", cfg.Checkout.WorkerCount)

	// Initialize gRPC server
	grpcServer := grpc.NewServer()
	grpcHandler := handler.NewGRPCHandler(checkoutService, inventoryService)
	pb.RegisterCheckoutServiceServer(grpcServer, grpcHandler)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	go func() {
		log.Printf("gRPC server listening on %s", cfg.Server.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			log.Printf("gRPC server error: %v", err)
		}
	}()

	// Initialize HTTP server
	httpHandler := handler.NewHTTPHandler(checkoutService, cartService, orderService, inventoryService)
	mux := http.NewServeMux()
	httpHandler.Register(mux)
	mux.Handle("/metrics", metrics.Handler())

	httpServer := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: mux,
	}

	go func() {
		log.Printf("HTTP server listening on %s", cfg.Server.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("HTTP server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	log.Println("HTTP server stopped")

	grpcServer.GracefulStop()
	log.Println("gRPC server stopped")

	// Close notification queue and wait for workers
	checkoutService.Close()
	wg.Wait()
	log.Println("workers stopped")

	rdb.Close()
	db.Close()
	log.Println("connections closed")
}

// notifyLoop drains the confirmation queue. Dispatch is best effort: failures
// are logged and counted, never retried into the checkout path.
func notifyLoop(id int, queue <-chan port.Notification, dispatcher port.NotificationDispatcher, m *metrics.CheckoutMetrics) {
	for n := range queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

		if err := dispatcher.Dispatch(ctx, n); err != nil {
			log.Printf("worker %d: failed to dispatch %s to %s: %v", id, n.TemplateID, n.Recipient, err)
			m.NotificationFailures.Inc()
		}

		cancel()
	}
}
