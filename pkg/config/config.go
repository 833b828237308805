package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/primrose-mcp/primrose-mcp-zoho/pkg/zoho"
)

type Config struct {
	BaseURL      string
	AccessToken  string
	ClientID     string
	ClientSecret string
	RefreshToken string

	CharacterLimit  int
	DefaultPageSize int
	MaxPageSize     int
	LogLevel        string

	RetryMaxTries        int
	RetryInitialInterval time.Duration
	RetryMaxInterval     time.Duration
	RetryMaxElapsed      time.Duration

	AuditEnabled bool
}

func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		BaseURL:      getEnv("ZOHO_BASE_URL", zoho.DefaultBaseURL),
		AccessToken:  os.Getenv("ZOHO_ACCESS_TOKEN"),
		ClientID:     os.Getenv("ZOHO_CLIENT_ID"),
		ClientSecret: os.Getenv("ZOHO_CLIENT_SECRET"),
		RefreshToken: os.Getenv("ZOHO_REFRESH_TOKEN"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.CharacterLimit, err = getInt("CHARACTER_LIMIT", 50000); err != nil {
		return nil, err
	}
	if cfg.DefaultPageSize, err = getInt("DEFAULT_PAGE_SIZE", 20); err != nil {
		return nil, err
	}
	if cfg.MaxPageSize, err = getInt("MAX_PAGE_SIZE", 100); err != nil {
		return nil, err
	}
	if cfg.RetryMaxTries, err = getInt("RETRY_MAX_TRIES", 0); err != nil {
		return nil, err
	}
	if cfg.RetryInitialInterval, err = getDuration("RETRY_INITIAL_INTERVAL", 500*time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.RetryMaxInterval, err = getDuration("RETRY_MAX_INTERVAL", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.RetryMaxElapsed, err = getDuration("RETRY_MAX_ELAPSED", time.Minute); err != nil {
		return nil, err
	}
	if cfg.AuditEnabled, err = getBool("AUDIT_ENABLED", false); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks limits and retry settings. Credentials are checked when a
// client is built, so commands that never call the CRM run without them.
func (c *Config) Validate() error {
	if c.CharacterLimit <= 0 {
		return fmt.Errorf("CHARACTER_LIMIT must be positive")
	}
	if c.DefaultPageSize <= 0 {
		return fmt.Errorf("DEFAULT_PAGE_SIZE must be positive")
	}
	if c.MaxPageSize <= 0 {
		return fmt.Errorf("MAX_PAGE_SIZE must be positive")
	}
	if c.DefaultPageSize > c.MaxPageSize {
		return fmt.Errorf("DEFAULT_PAGE_SIZE (%d) exceeds MAX_PAGE_SIZE (%d)", c.DefaultPageSize, c.MaxPageSize)
	}
	if c.RetryMaxTries < 0 {
		return fmt.Errorf("RETRY_MAX_TRIES must not be negative")
	}
	return nil
}

// Credentials returns the tenant credentials configured for this process.
func (c *Config) Credentials() zoho.Credentials {
	return zoho.Credentials{
		BaseURL:      c.BaseURL,
		AccessToken:  c.AccessToken,
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		RefreshToken: c.RefreshToken,
	}
}

// RetryPolicy reports whether retries are enabled and with which policy.
func (c *Config) RetryPolicy() (zoho.RetryPolicy, bool) {
	if c.RetryMaxTries <= 0 {
		return zoho.RetryPolicy{}, false
	}
	return zoho.RetryPolicy{
		MaxTries:        uint(c.RetryMaxTries),
		InitialInterval: c.RetryInitialInterval,
		MaxInterval:     c.RetryMaxInterval,
		MaxElapsed:      c.RetryMaxElapsed,
	}, true
}

// ClampLimit bounds a requested page size, falling back to DefaultPageSize.
func (c *Config) ClampLimit(limit int) int {
	if limit <= 0 {
		return c.DefaultPageSize
	}
	if limit > c.MaxPageSize {
		return c.MaxPageSize
	}
	return limit
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return d, nil
}

func getBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return b, nil
}
