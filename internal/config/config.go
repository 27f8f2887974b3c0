package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	MaxConns int32
}

// DSN builds a libpq keyword/value connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.Name)
}

type KafkaConfig struct {
	Brokers     []string
	StatusTopic string
	GroupID     string
}

type DispatcherConfig struct {
	PollInterval time.Duration
	BatchSize    int
	Workers      int
	Lease        time.Duration
	BackoffBase  time.Duration
	BackoffMax   time.Duration
}

type LabelConfig struct {
	MaxAttempts    int
	CarrierDelay   time.Duration
	CarrierTimeout time.Duration
	Storage        string
	Dir            string
	PublicPrefix   string
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type Config struct {
	DB           DBConfig
	HTTPPort     string
	LogLevel     string
	RuleCacheTTL time.Duration
	Kafka        KafkaConfig
	Dispatcher   DispatcherConfig
	Labels       LabelConfig
	Minio        MinioConfig
}

// Load reads .env (if any) and then the process environment.
func Load() (*Config, error) {
	loadEnv()

	cfg := &Config{
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			User:     getEnv("POSTGRES_USER", "postgres"),
			Password: getEnv("POSTGRES_PASSWORD", "postgres"),
			Name:     getEnv("POSTGRES_DB", "returns"),
		},
		HTTPPort: getEnv("HTTP_PORT", "9000"),
		LogLevel: getEnv("LOG_LEVEL", "debug"),
		Kafka: KafkaConfig{
			StatusTopic: getEnv("KAFKA_STATUS_TOPIC", "return_request.status_changed"),
			GroupID:     getEnv("KAFKA_GROUP_ID", "returns-status-consumer"),
		},
		Labels: LabelConfig{
			Storage:      getEnv("LABEL_STORAGE", "local"),
			Dir:          getEnv("LABEL_DIR", "./labels"),
			PublicPrefix: getEnv("LABEL_PUBLIC_PREFIX", "/labels"),
		},
		Minio: MinioConfig{
			Endpoint:  os.Getenv("MINIO_ENDPOINT"),
			AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
			SecretKey: os.Getenv("MINIO_SECRET_KEY"),
			Bucket:    getEnv("MINIO_BUCKET", "return-labels"),
			UseSSL:    os.Getenv("MINIO_USE_SSL") == "true",
		},
	}

	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		cfg.Kafka.Brokers = strings.Split(brokers, ",")
	}

	var err error
	if cfg.DB.Port, err = getInt("DB_PORT", 5432); err != nil {
		return nil, err
	}
	maxConns, err := getInt("DB_MAX_CONNS", 10)
	if err != nil {
		return nil, err
	}
	cfg.DB.MaxConns = int32(maxConns)

	if cfg.RuleCacheTTL, err = getDuration("RULE_CACHE_TTL", time.Minute); err != nil {
		return nil, err
	}
	if cfg.Dispatcher.PollInterval, err = getDuration("DISPATCH_POLL_INTERVAL", time.Second); err != nil {
		return nil, err
	}
	if cfg.Dispatcher.BatchSize, err = getInt("DISPATCH_BATCH_SIZE", 10); err != nil {
		return nil, err
	}
	if cfg.Dispatcher.Workers, err = getInt("DISPATCH_WORKERS", 4); err != nil {
		return nil, err
	}
	if cfg.Dispatcher.Lease, err = getDuration("DISPATCH_LEASE", 2*time.Minute); err != nil {
		return nil, err
	}
	if cfg.Dispatcher.BackoffBase, err = getDuration("DISPATCH_BACKOFF_BASE", 3*time.Second); err != nil {
		return nil, err
	}
	if cfg.Dispatcher.BackoffMax, err = getDuration("DISPATCH_BACKOFF_MAX", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.Labels.MaxAttempts, err = getInt("LABEL_MAX_ATTEMPTS", 3); err != nil {
		return nil, err
	}
	if cfg.Labels.CarrierDelay, err = getDuration("CARRIER_DELAY", 5*time.Second); err != nil {
		return nil, err
	}
	if cfg.Labels.CarrierTimeout, err = getDuration("CARRIER_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadEnv() {
	wd, err := os.Getwd()
	if err != nil {
		log.Printf("Error getting working directory: %v", err)
		return
	}

	possiblePaths := []string{
		filepath.Join(wd, ".env"),
		filepath.Join(wd, "..", ".env"),
		filepath.Join(wd, "..", "..", ".env"),
	}

	for _, envPath := range possiblePaths {
		if err := godotenv.Load(envPath); err == nil {
			log.Printf("Loaded environment variables from %s", envPath)
			return
		}
	}

	for _, envPath := range possiblePaths {
		examplePath := filepath.Join(filepath.Dir(envPath), ".example.env")
		if err := godotenv.Load(examplePath); err == nil {
			log.Printf("Loaded environment variables from %s", examplePath)
			return
		}
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
