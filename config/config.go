package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Catalog specifics
	Database  DatabaseConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// DatabaseConfig selects and configures the catalog store. Driver is either
// "postgres" or "memory".
type DatabaseConfig struct {
	Driver   string
	Postgres PostgresConfig
}

type PostgresConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxIdleTime string
}

// AuthConfig maps API keys to the user they act as. Keys are configured as
// "key:user" pairs, comma separated, so they can also be supplied through a
// single environment variable.
type AuthConfig struct {
	APIKeys map[string]string
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
	MaxKeys           int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Database
	cfg.Database.Driver = viper.GetString("database.driver")
	cfg.Database.Postgres.URL = viper.GetString("database.postgres.url")
	cfg.Database.Postgres.MaxOpenConns = viper.GetInt("database.postgres.max_open_conns")
	cfg.Database.Postgres.MaxIdleConns = viper.GetInt("database.postgres.max_idle_conns")
	cfg.Database.Postgres.ConnMaxIdleTime = viper.GetString("database.postgres.conn_max_idle_time")
	if dbURL := viper.GetString("database_url"); dbURL != "" {
		cfg.Database.Postgres.URL = dbURL
	}
	if cfg.Database.Driver == "postgres" && cfg.Database.Postgres.URL == "" {
		return nil, fmt.Errorf("database.postgres.url is required when database.driver is postgres")
	}

	// Auth
	apiKeys, err := parseAPIKeys(viper.GetString("auth.api_keys"))
	if err != nil {
		return nil, err
	}
	cfg.Auth.APIKeys = apiKeys

	// Rate limit
	cfg.RateLimit.RequestsPerSecond = viper.GetFloat64("rate_limit.requests_per_second")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")
	cfg.RateLimit.MaxKeys = viper.GetInt("rate_limit.max_keys")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("database.driver", "memory")
	viper.SetDefault("database.postgres.max_open_conns", 20)
	viper.SetDefault("database.postgres.max_idle_conns", 10)
	viper.SetDefault("database.postgres.conn_max_idle_time", "5m")
	viper.SetDefault("rate_limit.requests_per_second", 20)
	viper.SetDefault("rate_limit.burst", 40)
	viper.SetDefault("rate_limit.max_keys", 1024)
}

// parseAPIKeys parses "key:user" pairs, comma separated.
func parseAPIKeys(raw string) (map[string]string, error) {
	keys := make(map[string]string)
	if raw == "" {
		return keys, nil
	}
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, user, ok := strings.Cut(pair, ":")
		if !ok || key == "" || user == "" {
			return nil, fmt.Errorf("invalid auth.api_keys entry %q, want key:user", pair)
		}
		keys[strings.TrimSpace(key)] = strings.TrimSpace(user)
	}
	return keys, nil
}
