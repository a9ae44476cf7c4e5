// Package config loads service configuration from an optional YAML file with
// environment-variable overrides. Shared defaults live here, never in hidden
// globals.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration accepts "3s" style values in YAML, which yaml.v3 does not do for
// time.Duration directly.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	MySQL     MySQLConfig     `yaml:"mysql"`
	Redis     RedisConfig     `yaml:"redis"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Shipping  ShippingConfig  `yaml:"shipping"`
	Payment   PaymentConfig   `yaml:"payment"`
	Checkout  CheckoutConfig  `yaml:"checkout"`
	Inventory InventoryConfig `yaml:"inventory"`
}

type ServerConfig struct {
	HTTPAddr string `yaml:"http_addr"`
	GRPCAddr string `yaml:"grpc_addr"`
}

type MySQLConfig struct {
	DSN             string   `yaml:"dsn"`
	MaxOpenConns    int      `yaml:"max_open_conns"`
	MaxIdleConns    int      `yaml:"max_idle_conns"`
	ConnMaxLifetime Duration `yaml:"conn_max_lifetime"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	PoolSize int    `yaml:"pool_size"`
}

type KafkaConfig struct {
	Brokers string `yaml:"brokers"`
	Topic   string `yaml:"topic"`
}

type ShippingConfig struct {
	BaseURL           string   `yaml:"base_url"`
	Timeout           Duration `yaml:"timeout"`
	DefaultCostCents  int64    `yaml:"default_cost_cents"`
	FromPostalCode    string   `yaml:"from_postal_code"`
	PreferredCarriers []string `yaml:"preferred_carriers"`
	PackageWidthCm    int      `yaml:"package_width_cm"`
	PackageHeightCm   int      `yaml:"package_height_cm"`
	PackageLengthCm   int      `yaml:"package_length_cm"`
	UnitWeightGrams   int      `yaml:"unit_weight_grams"`
}

type PaymentConfig struct {
	BaseURL string   `yaml:"base_url"`
	Timeout Duration `yaml:"timeout"`
}

type CheckoutConfig struct {
	WorkerCount     int `yaml:"worker_count"`
	NotifyQueueSize int `yaml:"notify_queue_size"`
}

type InventoryConfig struct {
	DefaultLowStockThreshold int `yaml:"default_low_stock_threshold"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			HTTPAddr: ":8080",
			GRPCAddr: ":50051",
		},
		MySQL: MySQLConfig{
			DSN:             "root:root@tcp(localhost:3306)/checkout?parseTime=true",
			MaxOpenConns:    50,
			MaxIdleConns:    25,
			ConnMaxLifetime: Duration(5 * time.Minute),
		},
		Redis: RedisConfig{
			Addr:     "localhost:6379",
			PoolSize: 100,
		},
		Kafka: KafkaConfig{
			Topic: "checkout.notifications",
		},
		Shipping: ShippingConfig{
			Timeout:          Duration(3 * time.Second),
			DefaultCostCents: 500,
			FromPostalCode:   "00000",
			PackageWidthCm:   30,
			PackageHeightCm:  15,
			PackageLengthCm:  30,
			UnitWeightGrams:  500,
		},
		Payment: PaymentConfig{
			Timeout: Duration(5 * time.Second),
		},
		Checkout: CheckoutConfig{
			WorkerCount:     10,
			NotifyQueueSize: 10000,
		},
		Inventory: InventoryConfig{
			DefaultLowStockThreshold: 5,
		},
	}
}

// Load reads path (when non-empty and present) over the defaults, then
// applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("read config: %w", err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.Server.HTTPAddr = getenv("HTTP_ADDR", cfg.Server.HTTPAddr)
	cfg.Server.GRPCAddr = getenv("GRPC_ADDR", cfg.Server.GRPCAddr)
	cfg.MySQL.DSN = getenv("MYSQL_DSN", cfg.MySQL.DSN)
	cfg.Redis.Addr = getenv("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Kafka.Brokers = getenv("KAFKA_BROKERS", cfg.Kafka.Brokers)
	cfg.Kafka.Topic = getenv("KAFKA_TOPIC", cfg.Kafka.Topic)
	cfg.Shipping.BaseURL = getenv("SHIPPING_BASE_URL", cfg.Shipping.BaseURL)
	cfg.Payment.BaseURL = getenv("PAYMENT_BASE_URL", cfg.Payment.BaseURL)
	cfg.Shipping.DefaultCostCents = getenvInt64("SHIPPING_DEFAULT_COST_CENTS", cfg.Shipping.DefaultCostCents)
	return cfg, nil
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getenvInt64(key string, def int64) int64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}
