package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// ErrMissingAPIKey 未配置 Brave Search API 密钥
var ErrMissingAPIKey = errors.New("BRAVE_API_KEY not found in config")

const defaultBraveEndpoint = "https://api.search.brave.com/res/v1/web/search"

// Config 应用配置
type Config struct {
	Env             string
	Port            string
	SiteName        string
	BraveAPIKey     string
	BraveEndpoint   string
	ResultCount     int
	RequestTimeout  time.Duration
	CastErrorsFatal bool
}

// Load 加载配置，缺少 API 密钥时返回 ErrMissingAPIKey
func Load() (*Config, error) {
	cfg := &Config{
		Env:             getEnv("APP_ENV", "development"),
		Port:            getEnv("PORT", "5005"),
		SiteName:        getEnv("SITE_NAME", "Moovie Scraper"),
		BraveAPIKey:     strings.TrimSpace(os.Getenv("BRAVE_API_KEY")),
		BraveEndpoint:   getEnv("BRAVE_ENDPOINT", defaultBraveEndpoint),
		ResultCount:     getEnvInt("SEARCH_RESULT_COUNT", 5),
		RequestTimeout:  time.Duration(getEnvInt("SEARCH_TIMEOUT_SECONDS", 15)) * time.Second,
		CastErrorsFatal: getEnvBool("CAST_ERRORS_FATAL", false),
	}

	if cfg.BraveAPIKey == "" {
		return nil, ErrMissingAPIKey
	}
	return cfg, nil
}

// APIKeyPreview 返回脱敏后的密钥，仅用于日志
func (c *Config) APIKeyPreview() string {
	if len(c.BraveAPIKey) <= 5 {
		return "***"
	}
	return c.BraveAPIKey[:5] + "..."
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return defaultValue
	}
	return parsed
}

func getEnvBool(key string, defaultValue bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return defaultValue
	}
}
