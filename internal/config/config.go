package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/feral-file/namada-indexer/internal/domain"
)

const envPrefix = "NAMADA_INDEXER"

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	URL             string        `mapstructure:"url"` // Full connection URL, takes precedence over the discrete fields
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadHost        string        `mapstructure:"read_host"`
	ReadPort        int           `mapstructure:"read_port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// ChainConfig holds consensus RPC configuration
type ChainConfig struct {
	RPCURL                string        `mapstructure:"rpc_url"`
	RequestTimeout        time.Duration `mapstructure:"request_timeout"`
	InitialQueryRetryTime time.Duration `mapstructure:"initial_query_retry_time"` // First backoff interval
	MaxQueryRetryTime     time.Duration `mapstructure:"max_query_retry_time"`     // Backoff ceiling
	QueryRetryBudget      time.Duration `mapstructure:"query_retry_budget"`       // Total time spent retrying one RPC call
	TipPollInterval       time.Duration `mapstructure:"tip_poll_interval"`
	RequestsPerSecond     float64       `mapstructure:"requests_per_second"` // 0 disables rate limiting
	HeadTTL               time.Duration `mapstructure:"head_ttl"`
	HeadStaleWindow       time.Duration `mapstructure:"head_stale_window"`
	MissingHeightRetries  int           `mapstructure:"missing_height_retries"` // Retries of a height below the tip the node cannot serve
}

// CacheConfig holds cache configuration
type CacheConfig struct {
	URL                 string        `mapstructure:"url"` // Empty disables caching
	TTL                 time.Duration `mapstructure:"ttl"`
	InvalidationTimeout time.Duration `mapstructure:"invalidation_timeout"`
	Worker              WorkerConfig  `mapstructure:"worker"`
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"` // Empty disables commit notifications
	StreamName     string        `mapstructure:"stream_name"`
	SubjectPrefix  string        `mapstructure:"subject_prefix"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
	PublishTimeout time.Duration `mapstructure:"publish_timeout"`
	QueueSize      int           `mapstructure:"queue_size"` // Notifications beyond it are dropped
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     int           `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout    int           `mapstructure:"write_timeout"` // in seconds
	IdleTimeout     int           `mapstructure:"idle_timeout"`  // in seconds
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// WorkerConfig holds worker pool configuration
type WorkerConfig struct {
	WorkerPoolSize  int `mapstructure:"pool_size"`
	WorkerQueueSize int `mapstructure:"queue_size"`
}

// IndexerConfig holds configuration shared by every domain indexer
type IndexerConfig struct {
	BaseConfig          `mapstructure:",squash"`
	Database            DatabaseConfig    `mapstructure:"database"`
	Chain               ChainConfig       `mapstructure:"chain"`
	Cache               CacheConfig       `mapstructure:"cache"`
	NATS                NATSConfig        `mapstructure:"nats"`
	Server              ServerConfig      `mapstructure:"server"`
	StartHeight         uint64            `mapstructure:"start_height"`
	StartHeights        map[string]uint64 `mapstructure:"start_heights"` // Per-domain overrides of start_height
	SkipMalformedBlocks bool              `mapstructure:"skip_malformed_blocks"`
	ExitOnHalt          bool              `mapstructure:"exit_on_halt"` // Stop the process when a loop halts
}

// WebserverConfig holds configuration for the read API
type WebserverConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	Cache      CacheConfig    `mapstructure:"cache"`
	Server     ServerConfig   `mapstructure:"server"`
	GitSHA     string         `mapstructure:"git_sha"`
}

// StartHeightFor returns the configured first height of a domain
func (c *IndexerConfig) StartHeightFor(d domain.Domain) uint64 {
	if h, ok := c.StartHeights[string(d)]; ok && h > 0 {
		return h
	}
	return c.StartHeight
}

// Validate checks the fields an indexer cannot run without
func (c *IndexerConfig) Validate() error {
	if c.Chain.RPCURL == "" {
		return errors.New("chain.rpc_url is required")
	}
	if c.StartHeight == 0 {
		return errors.New("start_height must be at least 1")
	}
	if c.Chain.InitialQueryRetryTime <= 0 {
		return errors.New("chain.initial_query_retry_time must be positive")
	}
	if c.Chain.MaxQueryRetryTime < c.Chain.InitialQueryRetryTime {
		return errors.New("chain.max_query_retry_time must not be lower than chain.initial_query_retry_time")
	}
	for name := range c.StartHeights {
		if _, err := domain.ParseDomain(name); err != nil {
			return fmt.Errorf("start_heights: %w", err)
		}
	}
	return nil
}

// LoadIndexerConfig loads configuration for a domain indexer
func LoadIndexerConfig(service string, configFile string, envPath string) (*IndexerConfig, error) {
	v := configureViper(service, configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("chain.request_timeout", "10s")
	v.SetDefault("chain.initial_query_retry_time", "1s")
	v.SetDefault("chain.max_query_retry_time", "30s")
	v.SetDefault("chain.query_retry_budget", "2m")
	v.SetDefault("chain.tip_poll_interval", "1s")
	v.SetDefault("chain.requests_per_second", 0)
	v.SetDefault("chain.head_ttl", "1s")
	v.SetDefault("chain.head_stale_window", "30s")
	v.SetDefault("chain.missing_height_retries", 10)
	v.SetDefault("cache.ttl", "30s")
	v.SetDefault("cache.invalidation_timeout", "2s")
	v.SetDefault("cache.worker.pool_size", 4)
	v.SetDefault("cache.worker.queue_size", 256)
	v.SetDefault("nats.stream_name", "NAMADA_INDEXER")
	v.SetDefault("nats.subject_prefix", "indexer")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.publish_timeout", "5s")
	v.SetDefault("nats.queue_size", 1024)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 9090)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("start_height", 1)
	v.SetDefault("skip_malformed_blocks", false)
	v.SetDefault("exit_on_halt", false)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config IndexerConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadWebserverConfig loads configuration for the webserver
func LoadWebserverConfig(configFile string, envPath string) (*WebserverConfig, error) {
	v := configureViper("webserver", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("server.request_timeout", "10s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("cache.ttl", "30s")
	v.SetDefault("git_sha", "unknown")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config WebserverConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// readConfig reads the config file, falling back to environment variables when it does not exist
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/governance/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		"git_sha",
		"start_height",
		"skip_malformed_blocks",
		"exit_on_halt",
		// Database
		"database.url",
		"database.host",
		"database.port",
		"database.read_host",
		"database.read_port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Chain
		"chain.rpc_url",
		"chain.request_timeout",
		"chain.initial_query_retry_time",
		"chain.max_query_retry_time",
		"chain.query_retry_budget",
		"chain.tip_poll_interval",
		"chain.requests_per_second",
		"chain.head_ttl",
		"chain.head_stale_window",
		"chain.missing_height_retries",
		// Cache
		"cache.url",
		"cache.ttl",
		"cache.invalidation_timeout",
		"cache.worker.pool_size",
		"cache.worker.queue_size",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.subject_prefix",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		"nats.publish_timeout",
		"nats.queue_size",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.request_timeout",
		"server.shutdown_timeout",
	}
	for _, d := range domain.AllDomains {
		keys = append(keys, "start_heights."+string(d))
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// ReadDSN returns the read-replica connection string.
// Without a configured read host it falls back to DSN.
func (c *DatabaseConfig) ReadDSN() string {
	if c.ReadHost == "" {
		return c.DSN()
	}
	port := c.ReadPort
	if port == 0 {
		port = c.Port
	}

	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.ReadHost, port, c.User, c.Password, c.DBName, c.SSLMode)
}
