package config

import (
	"fmt"
	"os"
	"time"

	"gemini2api/internal/core"
	"gemini2api/internal/util"
)

// ServerConfig server configuration
type ServerConfig struct {
	Port               string
	GinMode            string
	GeminiAPIKey       string
	GeminiBaseURL      string
	ClientAPIKeys      []string
	RateLimit          int
	HTTPClientSettings HTTPClientSettings
	Storage            core.StorageInterface
	Logger             core.Logger
}

// HTTPClientSettings HTTP client configuration
type HTTPClientSettings struct {
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	MaxConnsPerHost     int
	IdleConnTimeout     time.Duration
	TLSHandshakeTimeout time.Duration
	RequestTimeout      time.Duration
}

// DefaultHTTPClientSettings default HTTP client settings
func DefaultHTTPClientSettings() HTTPClientSettings {
	return HTTPClientSettings{
		MaxIdleConns:        core.HTTPMaxIdleConns,
		MaxIdleConnsPerHost: core.HTTPMaxIdleConnsPerHost,
		MaxConnsPerHost:     core.HTTPMaxConnsPerHost,
		IdleConnTimeout:     core.HTTPIdleConnTimeout,
		TLSHandshakeTimeout: core.HTTPTLSHandshakeTimeout,
		RequestTimeout:      core.HTTPRequestTimeout,
	}
}

// DefaultRateLimit is the per-IP request budget per minute.
const DefaultRateLimit = 120

// LoadServerConfigFromEnv loads server config from environment variables.
// A missing GEMINI_API_KEY is a warning, not an error: the server still
// starts and every functional call fails fast with a configuration error.
func LoadServerConfigFromEnv(logger core.Logger) (ServerConfig, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		logger.Warn("GEMINI_API_KEY is not set; all upstream calls will fail")
	}

	baseURL := util.GetEnvWithDefault("GEMINI_BASE_URL", core.GeminiDefaultBaseURL)

	clientAPIKeys := util.ParseEnvList(os.Getenv("CLIENT_API_KEYS"))
	if len(clientAPIKeys) > 0 {
		logger.Info("Loaded %d client API keys", len(clientAPIKeys))
	}

	rateLimit := DefaultRateLimit
	if envRate := os.Getenv("RATE_LIMIT"); envRate != "" {
		if parsed, err := fmt.Sscanf(envRate, "%d", &rateLimit); err != nil || parsed != 1 || rateLimit <= 0 {
			logger.Warn("Invalid RATE_LIMIT value '%s', using default %d", envRate, DefaultRateLimit)
			rateLimit = DefaultRateLimit
		}
	}

	config := ServerConfig{
		Port:               util.GetEnvWithDefault("PORT", core.DefaultPort),
		GinMode:            util.GetEnvWithDefault("GIN_MODE", core.DefaultGinMode),
		GeminiAPIKey:       apiKey,
		GeminiBaseURL:      baseURL,
		ClientAPIKeys:      clientAPIKeys,
		RateLimit:          rateLimit,
		HTTPClientSettings: DefaultHTTPClientSettings(),
	}

	return config, nil
}
