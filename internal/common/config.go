package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Mailbox  MailboxConfig
	Engine   EngineConfig
	Scan     ScanConfig
	Adapter  AdapterConfig
	Storage  StorageConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// MailboxConfig holds mailbox connection configuration
type MailboxConfig struct {
	Addr        string // host:port, implicit TLS
	Username    string
	Password    string
	Folder      string
	DialTimeout time.Duration
}

// EngineConfig holds recognition-engine configuration
type EngineConfig struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	MaxRetries int
	RetryBase  time.Duration
}

// ScanConfig holds time-boxing and batching parameters for ingestion jobs.
type ScanConfig struct {
	// InvocationBudget must leave safety margin under the runtime's
	// hard execution ceiling.
	InvocationBudget time.Duration
	// BudgetReserve is the fraction of the budget kept in reserve;
	// scanning stops admitting messages below it.
	BudgetReserve float64
	BatchSize     int
	BatchWorkers  int
}

// AdapterConfig holds field-normalization parameters.
type AdapterConfig struct {
	// AmountEpsilon is the tolerance for cross-field amount consistency
	// (amount_without_tax + tax_amount vs total_amount).
	AmountEpsilon float64
	MappingPath   string // detector type-mapping YAML
}

// StorageConfig holds blob-storage configuration
type StorageConfig struct {
	BlobDir      string
	RetentionTTL time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Mailbox: MailboxConfig{
			Addr:        getEnv("MAILBOX_ADDR", ""),
			Username:    getEnv("MAILBOX_USER", ""),
			Password:    getEnv("MAILBOX_PASSWORD", ""),
			Folder:      getEnv("MAILBOX_FOLDER", "INBOX"),
			DialTimeout: getEnvAsDuration("MAILBOX_DIAL_TIMEOUT", 10*time.Second),
		},
		Engine: EngineConfig{
			BaseURL:    getEnv("ENGINE_BASE_URL", ""),
			APIKey:     getEnv("ENGINE_API_KEY", ""),
			Timeout:    getEnvAsDuration("ENGINE_TIMEOUT", 45*time.Second),
			MaxRetries: getEnvAsInt("ENGINE_MAX_RETRIES", 3),
			RetryBase:  getEnvAsDuration("ENGINE_RETRY_BASE", 500*time.Millisecond),
		},
		Scan: ScanConfig{
			InvocationBudget: getEnvAsDuration("SCAN_INVOCATION_BUDGET", 50*time.Second),
			BudgetReserve:    getEnvAsFloat64("SCAN_BUDGET_RESERVE", 0.2),
			BatchSize:        getEnvAsInt("EXTRACT_BATCH_SIZE", 10),
			BatchWorkers:     getEnvAsInt("EXTRACT_BATCH_WORKERS", 4),
		},
		Adapter: AdapterConfig{
			AmountEpsilon: getEnvAsFloat64("AMOUNT_EPSILON", 0.01),
			MappingPath:   getEnv("TYPE_MAPPING_PATH", "configs/type_mappings.yaml"),
		},
		Storage: StorageConfig{
			BlobDir:      getEnv("BLOB_DIR", "./blobs"),
			RetentionTTL: getEnvAsDuration("RETENTION_TTL", 90*24*time.Hour),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Engine.BaseURL == "" {
		return NewAppError("CONFIG_ERROR", "ENGINE_BASE_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Scan.BudgetReserve <= 0 || c.Scan.BudgetReserve >= 1 {
		return NewAppError("CONFIG_ERROR", "SCAN_BUDGET_RESERVE must be in (0,1)", ErrInvalidInput)
	}
	return nil
}
