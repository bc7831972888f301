package fields

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config captures the runtime configuration of the module.
type Config struct {
	// DefaultLocale is the fallback locale reads fill gaps from.
	DefaultLocale string `json:"default_locale"`
	// MarkerKey overrides the reserved localization marker key.
	MarkerKey string `json:"marker_key,omitempty"`
	Cache     CacheConfig   `json:"cache"`
	Logging   LoggingConfig `json:"logging"`
}

// CacheConfig toggles the repository cache layer used when the module runs
// against bun storage.
type CacheConfig struct {
	Enabled bool          `json:"enabled"`
	TTL     time.Duration `json:"ttl"`
}

// LoggingConfig selects the go-logger backend configuration.
type LoggingConfig struct {
	Level     string   `json:"level"`
	Format    string   `json:"format"`
	AddSource bool     `json:"add_source"`
	Focus     []string `json:"focus,omitempty"`
}

// DefaultConfig returns the configuration the module starts from.
func DefaultConfig() Config {
	return Config{
		DefaultLocale: "en",
		Cache: CacheConfig{
			Enabled: false,
			TTL:     time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Validate checks the configuration before the module boots.
func (c Config) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(c.DefaultLocale) == "" {
		errs["default_locale"] = validation.NewError("fields.config.default_locale_required", "default locale is required")
	}
	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		errs["cache.ttl"] = validation.NewError("fields.config.cache_ttl_invalid", "cache ttl must be positive when the cache is enabled")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
