package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"animated-nav/pkg/lang"
)

type Config struct {
	// Server
	Port        string
	Environment string
	LogLevel    string

	// CORS
	CORSOrigins []string

	// Site
	SiteName     string
	SiteLanguage string

	// Paths
	StaticDir    string
	TemplatesDir string
	NavDataDir   string
	NavStrict    bool

	// Menu
	StylePrefix   string
	NavAriaLabel  string
	BrandMark     string
	BrandText     string
	CharDelayStep time.Duration

	// Cache
	EnableCache bool
	RedisURL    string
	CacheTTL    time.Duration

	// Rate Limiting
	RateLimitRequests int
	RateLimitWindow   int
	RateLimitBurst    int

	// Features
	EnableMetrics bool
}

func New() *Config {
	c := &Config{
		// Server
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		// CORS
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:8080")),

		// Site
		SiteName:     getEnv("SITE_NAME", "Animated Navigation"),
		SiteLanguage: lang.OrDefault(getEnv("SITE_LANGUAGE", lang.Default)),

		// Paths
		StaticDir:    getEnv("STATIC_DIR", "./static"),
		TemplatesDir: getEnv("TEMPLATES_DIR", ""),
		NavDataDir:   getEnv("NAV_DATA_DIR", ""),
		NavStrict:    getEnvAsBool("NAV_STRICT", false),

		// Menu
		StylePrefix:   getEnv("STYLE_PREFIX", ""),
		NavAriaLabel:  getEnv("NAV_ARIA_LABEL", "Primary"),
		BrandMark:     getEnv("BRAND_MARK", "⚭"),
		BrandText:     getEnv("BRAND_TEXT", "Hover animation menu"),
		CharDelayStep: getEnvAsDuration("CHAR_DELAY_STEP", 50*time.Millisecond),

		// Cache
		EnableCache: getEnvAsBool("ENABLE_CACHE", false),
		RedisURL:    getEnv("REDIS_URL", "localhost:6379"),
		CacheTTL:    getEnvAsDuration("CACHE_TTL", 10*time.Minute),

		// Rate Limiting
		RateLimitRequests: getEnvAsInt("RATE_LIMIT_REQUESTS", 300),
		RateLimitWindow:   getEnvAsInt("RATE_LIMIT_WINDOW", 60),
		RateLimitBurst:    getEnvAsInt("RATE_LIMIT_BURST", 0),

		// Features
		EnableMetrics: getEnvAsBool("ENABLE_METRICS", true),
	}

	defaultLevel := "info"
	if c.IsDevelopment() {
		defaultLevel = "debug"
	}
	c.LogLevel = getEnv("LOG_LEVEL", defaultLevel)

	return c
}

// Validate reports configuration values the application cannot start with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("port is required")
	}
	if c.CharDelayStep <= 0 {
		return fmt.Errorf("char delay step must be positive, got %s", c.CharDelayStep)
	}
	if c.EnableCache && strings.TrimSpace(c.RedisURL) == "" {
		return fmt.Errorf("redis url is required when cache is enabled")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	var value int
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	return valueStr == "true" || valueStr == "1"
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
