package imagen

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
)

// DefaultBaseURL is the production Gemini API endpoint.
const DefaultBaseURL = "https://generativelanguage.googleapis.com"

// predictPath is the Imagen prediction endpoint, relative to the base URL.
const predictPath = "/v1beta/models/imagen-3.0-generate-002:predict"

// DefaultTimeout bounds a single outbound generation call.
const DefaultTimeout = 120 * time.Second

// Environment variables consumed at startup.
const (
	EnvAPIKey  = "GEMINI_API_KEY"
	EnvBaseURL = "BASE_URL"
)

// Config holds the generation backend settings.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// fileConfig is the optional YAML config file shape.
type fileConfig struct {
	APIKey         string `yaml:"api_key"`
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// GetConfig resolves backend configuration with precedence
// environment > config file > default. path may be empty, in which case no
// file is consulted. A missing API key is not an error here; call Validate
// before issuing requests.
func GetConfig(path string) (*Config, error) {
	var fc fileConfig
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", path, err)
		}
	}

	cfg := &Config{
		APIKey:  resolveValue(os.Getenv(EnvAPIKey), fc.APIKey),
		BaseURL: resolveValue(os.Getenv(EnvBaseURL), fc.BaseURL),
		Timeout: DefaultTimeout,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if fc.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(fc.TimeoutSeconds) * time.Second
	}
	return cfg, nil
}

// Validate checks that required configuration values are present.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errConfig(EnvAPIKey + " environment variable not set")
	}
	return nil
}

// resolveValue returns the explicit value if non-empty, otherwise the
// config file value.
func resolveValue(explicit, configValue string) string {
	if explicit != "" {
		return explicit
	}
	return configValue
}
