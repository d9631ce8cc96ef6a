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

	"github.com/feral-file/ff-journal/internal/domain"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// NATSConfig holds NATS JetStream configuration.
// Publishing is disabled when URL is empty.
type NATSConfig struct {
	URL             string        `mapstructure:"url"`
	StreamName      string        `mapstructure:"stream_name"`
	MaxReconnects   int           `mapstructure:"max_reconnects"`
	ReconnectWait   time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName  string        `mapstructure:"connection_name"`
	DuplicateWindow time.Duration `mapstructure:"duplicate_window"`
}

// SuiConfig holds chain connection configuration
type SuiConfig struct {
	Network        domain.Network `mapstructure:"network"`
	RPCURL         string         `mapstructure:"rpc_url"` // Overrides the network's public fullnode
	PackageID      string         `mapstructure:"package_id"`
	RequestTimeout time.Duration  `mapstructure:"request_timeout"`
	RateLimit      float64        `mapstructure:"rate_limit"` // JSON-RPC requests per second, 0 disables limiting
	RateBurst      int            `mapstructure:"rate_burst"`
}

// GasStationConfig holds sponsor configuration
type GasStationConfig struct {
	// SponsorPrivateKey is a suiprivkey bech32 string or base64 flag||seed.
	// The gas station runs offline when it is empty.
	SponsorPrivateKey string `mapstructure:"sponsor_private_key"`
	CoinSelection     string `mapstructure:"coin_selection"` // random or best_fit
}

// PollerConfig holds event polling configuration
type PollerConfig struct {
	PollInterval time.Duration `mapstructure:"poll_interval"`
	PageSize     int           `mapstructure:"page_size"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string   `mapstructure:"host"`
	Port         int      `mapstructure:"port"`
	ReadTimeout  int      `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int      `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int      `mapstructure:"idle_timeout"`  // in seconds
	CORSOrigins  []string `mapstructure:"cors_origins"`
}

// AuthConfig holds operator authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Sui        SuiConfig        `mapstructure:"sui"`
	GasStation GasStationConfig `mapstructure:"gas_station"`
}

// IndexerConfig holds configuration for the event indexer
type IndexerConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	Sui        SuiConfig      `mapstructure:"sui"`
	Indexer    PollerConfig   `mapstructure:"indexer"`
	NATS       NATSConfig     `mapstructure:"nats"`
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.idle_timeout", 120)
	setDatabaseDefaults(v)
	setSuiDefaults(v)
	v.SetDefault("gas_station.coin_selection", "random")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Sui.normalize(); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadIndexerConfig loads configuration for the event indexer
func LoadIndexerConfig(configFile string, envPath string) (*IndexerConfig, error) {
	v := configureViper("indexer", configFile, envPath)

	// Set defaults
	setDatabaseDefaults(v)
	setSuiDefaults(v)
	v.SetDefault("indexer.poll_interval", "5s")
	v.SetDefault("indexer.page_size", 50)
	v.SetDefault("nats.stream_name", "JOURNAL_EVENTS")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.connection_name", "ff-journal-indexer")
	v.SetDefault("nats.duplicate_window", "24h")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config IndexerConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Sui.normalize(); err != nil {
		return nil, err
	}
	if config.Indexer.PageSize <= 0 {
		return nil, fmt.Errorf("indexer.page_size must be positive, got %d", config.Indexer.PageSize)
	}
	if config.Indexer.PollInterval <= 0 {
		return nil, fmt.Errorf("indexer.poll_interval must be positive, got %s", config.Indexer.PollInterval)
	}

	return &config, nil
}

func setDatabaseDefaults(v *viper.Viper) {
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
}

func setSuiDefaults(v *viper.Viper) {
	v.SetDefault("sui.network", string(domain.NetworkTestnet))
	v.SetDefault("sui.request_timeout", "30s")
	v.SetDefault("sui.rate_limit", 0)
	v.SetDefault("sui.rate_burst", 10)
}

// readConfig reads the config file, falling back to environment variables when there is none
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			// Config file not found, use environment variables
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// normalize validates the network and canonicalizes the package id
func (c *SuiConfig) normalize() error {
	if !domain.IsValidNetwork(c.Network) {
		return fmt.Errorf("unknown sui.network %q", c.Network)
	}

	if c.PackageID != "" {
		packageID, err := domain.NormalizeAddress(c.PackageID)
		if err != nil {
			return fmt.Errorf("invalid sui.package_id: %w", err)
		}
		c.PackageID = packageID
	}

	return nil
}

// RPCEndpoint returns the JSON-RPC URL to use, the override when set, the network's fullnode otherwise
func (c *SuiConfig) RPCEndpoint() string {
	if c.RPCURL != "" {
		return c.RPCURL
	}
	return c.Network.FullnodeURL()
}

// configureViper creates a viper instance for a service
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables from .env files
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/api/, cmd/indexer/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("FF_JOURNAL")
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
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.cors_origins",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// Sui
		"sui.network",
		"sui.rpc_url",
		"sui.package_id",
		"sui.request_timeout",
		"sui.rate_limit",
		"sui.rate_burst",
		// Gas station
		"gas_station.sponsor_private_key",
		"gas_station.coin_selection",
		// Indexer
		"indexer.poll_interval",
		"indexer.page_size",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		"nats.duplicate_window",
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

	// Default to config directory
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
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
