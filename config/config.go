package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultBodyLimit = 50 << 20
)

// Config holds all configuration for the application
type Config struct {
	Environment Environment

	// Server configuration
	ServerPort string
	ServerHost string
	BodyLimit  int64
	LogLevel   string

	// Database configuration
	DBDriver      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	AutoMigrate   bool
	MigrationsDir string

	// Redis configuration. Redis is optional; without it rate limiting is
	// disabled and generated tips are cached in process.
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string

	// Generative model configuration
	GeminiAPIKey string
	GeminiModel  string
	AIRateLimit  int

	// Profile image storage
	S3Bucket  string
	AWSRegion string
}

// lookupFunc resolves a setting by its secret file name (e.g. "db_password").
type lookupFunc func(name string) string

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()

	if env != Production {
		// A missing .env file is normal outside local development.
		_ = godotenv.Load()
	}

	var lookup lookupFunc
	switch env {
	case CI:
		lookup = fromEnv
	case Development, Test:
		lookup = firstOf(fromEnv, readSecret)
	case Production:
		lookup = firstOf(readSecret, fromEnv)
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	cfg, err := load(lookup)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s configuration: %w", env, err)
	}
	cfg.Environment = env

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func load(get lookupFunc) (*Config, error) {
	cfg := &Config{
		ServerPort:    withDefault(get("server_port"), "3000"),
		ServerHost:    get("server_host"),
		LogLevel:      withDefault(get("log_level"), "info"),
		DBDriver:      withDefault(strings.ToLower(get("db_driver")), DriverPostgres),
		DBHost:        get("db_host"),
		DBPort:        withDefault(get("db_port"), "5432"),
		DBUser:        get("db_user"),
		DBPassword:    get("db_password"),
		DBName:        get("db_name"),
		DBSSLMode:     withDefault(get("db_ssl_mode"), "disable"),
		MigrationsDir: withDefault(get("migrations_dir"), "migrations"),
		RedisHost:     get("redis_host"),
		RedisPort:     withDefault(get("redis_port"), "6379"),
		RedisPassword: get("redis_password"),
		RedisURL:      get("redis_url"),
		JWTSecret:     get("jwt_secret"),
		GeminiAPIKey:  get("gemini_api_key"),
		GeminiModel:   withDefault(get("gemini_model"), "gemini-2.0-flash"),
		S3Bucket:      get("s3_bucket_name"),
		AWSRegion:     get("aws_region"),
		BodyLimit:     defaultBodyLimit,
		AIRateLimit:   30,
	}

	var err error
	if cfg.AutoMigrate, err = parseBool(get("auto_migrate")); err != nil {
		return nil, fmt.Errorf("auto_migrate: %w", err)
	}
	if cfg.RedisDB, err = parseInt(get("redis_db"), 0); err != nil {
		return nil, fmt.Errorf("redis_db: %w", err)
	}
	if cfg.AIRateLimit, err = parseInt(get("ai_rate_limit"), cfg.AIRateLimit); err != nil {
		return nil, fmt.Errorf("ai_rate_limit: %w", err)
	}
	limit, err := parseInt(get("body_limit_mb"), 0)
	if err != nil {
		return nil, fmt.Errorf("body_limit_mb: %w", err)
	}
	if limit > 0 {
		cfg.BodyLimit = int64(limit) << 20
	}
	return cfg, nil
}

// DSN returns the postgres connection string, or the database file for sqlite.
func (c *Config) DSN() string {
	if c.DBDriver == DriverSQLite {
		return c.DBName
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// RedisEnabled reports whether a redis server was configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

// fromEnv maps a secret name to its environment variable (db_password -> DB_PASSWORD).
func fromEnv(name string) string {
	return strings.TrimSpace(os.Getenv(strings.ToUpper(name)))
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func firstOf(sources ...lookupFunc) lookupFunc {
	return func(name string) string {
		for _, src := range sources {
			if v := src(name); v != "" {
				return v
			}
		}
		return ""
	}
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func parseInt(v string, def int) (int, error) {
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}

func parseBool(v string) (bool, error) {
	if v == "" {
		return false, nil
	}
	return strconv.ParseBool(v)
}
