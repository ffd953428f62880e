package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment Environment
	LogLevel    string

	// Server configuration
	ServerHost         string
	ServerPort         string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration
	CORSAllowedOrigins []string

	// Database configuration
	DBDriver      string
	DatabaseURL   string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	SQLitePath    string
	MigrationsDir string

	// Redis configuration
	RedisURL      string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// JWT configuration
	JWTSecret string
	JWTExpiry time.Duration

	LLM       LLMConfig
	RateLimit RateLimitConfig

	RecipesListLimit int
}

// LLMConfig configures the chat-completions provider used for recipe generation
type LLMConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// RateLimitConfig configures the redis-backed generation limiter
type RateLimitConfig struct {
	Enabled  bool
	Requests int
	Window   time.Duration
}

// HasDatabase reports whether enough settings are present to attempt a durable connection.
func (c *Config) HasDatabase() bool {
	switch c.DBDriver {
	case "sqlite":
		return c.SQLitePath != ""
	default:
		return c.DatabaseURL != "" || c.DBHost != ""
	}
}

// HasRedis reports whether a redis endpoint is configured.
func (c *Config) HasRedis() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// LoadConfig builds a Config from the .env file (if any), environment variables and
// Docker secrets, then validates it.
func LoadConfig() (*Config, error) {
	cfg := Load()
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load builds a Config without validating it. Tools that only touch the database use it
// so they do not need API credentials.
func Load() *Config {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	bindAliases(v)

	cfg := &Config{
		Environment:        GetEnvironment(),
		LogLevel:           v.GetString("LOG_LEVEL"),
		ServerHost:         v.GetString("SERVER_HOST"),
		ServerPort:         v.GetString("SERVER_PORT"),
		ServerReadTimeout:  v.GetDuration("SERVER_READ_TIMEOUT"),
		ServerWriteTimeout: v.GetDuration("SERVER_WRITE_TIMEOUT"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		DBDriver:           strings.ToLower(v.GetString("DB_DRIVER")),
		DatabaseURL:        v.GetString("DATABASE_URL"),
		DBHost:             v.GetString("DB_HOST"),
		DBPort:             v.GetString("DB_PORT"),
		DBUser:             v.GetString("DB_USER"),
		DBPassword:         v.GetString("DB_PASSWORD"),
		DBName:             v.GetString("DB_NAME"),
		DBSSLMode:          v.GetString("DB_SSL_MODE"),
		SQLitePath:         v.GetString("SQLITE_PATH"),
		MigrationsDir:      v.GetString("MIGRATIONS_DIR"),
		RedisURL:           v.GetString("REDIS_URL"),
		RedisHost:          v.GetString("REDIS_HOST"),
		RedisPort:          v.GetString("REDIS_PORT"),
		RedisPassword:      v.GetString("REDIS_PASSWORD"),
		RedisDB:            v.GetInt("REDIS_DB"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		JWTExpiry:          v.GetDuration("JWT_EXPIRY"),
		LLM: LLMConfig{
			APIKey:      v.GetString("LLM_API_KEY"),
			BaseURL:     v.GetString("LLM_BASE_URL"),
			Model:       v.GetString("LLM_MODEL"),
			MaxTokens:   v.GetInt("LLM_MAX_TOKENS"),
			Temperature: v.GetFloat64("LLM_TEMPERATURE"),
			Timeout:     v.GetDuration("LLM_TIMEOUT"),
		},
		RateLimit: RateLimitConfig{
			Enabled:  v.GetBool("RATE_LIMIT_ENABLED"),
			Requests: v.GetInt("RATE_LIMIT_REQUESTS"),
			Window:   v.GetDuration("RATE_LIMIT_WINDOW"),
		},
		RecipesListLimit: v.GetInt("RECIPES_LIST_LIMIT"),
	}

	loadSecrets(cfg)

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("SERVER_HOST", "")
	v.SetDefault("SERVER_PORT", "5000")
	v.SetDefault("SERVER_READ_TIMEOUT", "30s")
	v.SetDefault("SERVER_WRITE_TIMEOUT", "90s")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("SQLITE_PATH", "cooking.db")
	v.SetDefault("MIGRATIONS_DIR", "migrations")

	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_EXPIRY", "24h")

	v.SetDefault("LLM_BASE_URL", "https://api.cerebras.ai/v1")
	v.SetDefault("LLM_MODEL", "llama3.1-8b")
	v.SetDefault("LLM_MAX_TOKENS", 800)
	v.SetDefault("LLM_TEMPERATURE", 0.8)
	v.SetDefault("LLM_TIMEOUT", "60s")

	v.SetDefault("RATE_LIMIT_ENABLED", true)
	v.SetDefault("RATE_LIMIT_REQUESTS", 20)
	v.SetDefault("RATE_LIMIT_WINDOW", "1h")

	v.SetDefault("RECIPES_LIST_LIMIT", 20)
}

// bindAliases keeps the variable names used by earlier deployments working.
func bindAliases(v *viper.Viper) {
	_ = v.BindEnv("LLM_API_KEY", "LLM_API_KEY", "CEREBRAS_API_KEY")
	_ = v.BindEnv("SERVER_PORT", "SERVER_PORT", "PORT")
	_ = v.BindEnv("DATABASE_URL", "DATABASE_URL", "DB_URL")
}

// loadSecrets fills sensitive values that were not provided through the environment
// from Docker secrets.
func loadSecrets(cfg *Config) {
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = readSecret("jwt_secret")
	}
	if cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = readSecret("llm_api_key")
	}
	if cfg.DBPassword == "" {
		cfg.DBPassword = readSecret("db_password")
	}
	if cfg.RedisPassword == "" {
		cfg.RedisPassword = readSecret("redis_password")
	}
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

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
