package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// ⭐ SSOT: 모든 환경변수는 여기서만 읽음
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// Redis (shared rate limiter only, nothing is cached)
	Redis RedisConfig

	// Market data provider
	Yahoo YahooConfig

	// Analysis defaults (CLI/API inputs override these)
	Analysis AnalysisConfig

	// Logging
	LogLevel  string
	LogFormat string
	LogFile   string // optional rotating file sink, empty = stdout only

	// Monitoring
	MetricsEnabled bool
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Enabled  bool
}

// YahooConfig holds Yahoo Finance endpoint configuration
type YahooConfig struct {
	BaseURL   string // chart + fundamentals-timeseries host
	QuoteURL  string // quoteSummary host
	Timeout   time.Duration
	RateLimit float64 // requests per second, 0 = unlimited
}

// AnalysisConfig holds the default analysis inputs
type AnalysisConfig struct {
	RiskFreeRate float64
	HorizonYears float64
	FetchTimeout time.Duration
	PolicyFile   string // optional YAML with decision thresholds
}

// Load reads configuration from environment variables
// ⭐ SSOT: 이 함수만 os.Getenv()를 호출함
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		Port: getEnv("PORT", "8089"),
		Env:  getEnv("ENV", "development"),

		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
		},

		Yahoo: YahooConfig{
			BaseURL:   getEnv("YAHOO_BASE_URL", "https://query2.finance.yahoo.com"),
			QuoteURL:  getEnv("YAHOO_QUOTE_URL", "https://query1.finance.yahoo.com"),
			Timeout:   getEnvAsDuration("YAHOO_TIMEOUT", "30s"),
			RateLimit: getEnvAsFloat("YAHOO_RATE_LIMIT", 2),
		},

		Analysis: AnalysisConfig{
			RiskFreeRate: getEnvAsFloat("RISK_FREE_RATE", 0.05),
			HorizonYears: getEnvAsFloat("HORIZON_YEARS", 1.0),
			FetchTimeout: getEnvAsDuration("FETCH_TIMEOUT", "45s"),
			PolicyFile:   getEnv("POLICY_FILE", ""),
		},

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
		LogFile:   getEnv("LOG_FILE", ""),

		MetricsEnabled: getEnvAsBool("METRICS_ENABLED", true),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if required configuration values are set
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.Yahoo.BaseURL == "" || c.Yahoo.QuoteURL == "" {
		return fmt.Errorf("YAHOO_BASE_URL and YAHOO_QUOTE_URL are required")
	}

	if c.Yahoo.RateLimit < 0 {
		return fmt.Errorf("YAHOO_RATE_LIMIT must be >= 0")
	}

	if c.Analysis.HorizonYears <= 0 {
		return fmt.Errorf("HORIZON_YEARS must be > 0")
	}

	if c.Analysis.FetchTimeout <= 0 {
		return fmt.Errorf("FETCH_TIMEOUT must be > 0")
	}

	return nil
}

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{".env"}

	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
