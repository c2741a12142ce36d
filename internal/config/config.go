// Package config loads application settings from viper.
package config

import (
	"fmt"
	"time"

	"github.com/Veraticus/the-points-must-flow/internal/catalog"
	"github.com/Veraticus/the-points-must-flow/internal/common"
	"github.com/Veraticus/the-points-must-flow/internal/flightdata"
	"github.com/Veraticus/the-points-must-flow/internal/routing"
	"github.com/Veraticus/the-points-must-flow/internal/valuation"
	"github.com/spf13/viper"
)

// Config is the resolved application configuration.
type Config struct {
	Logging            LoggingConfig
	CatalogPath        string
	Amadeus            flightdata.Config
	Search             SearchConfig
	GoodValueThreshold float64
}

// LoggingConfig selects the slog level and handler.
type LoggingConfig struct {
	Level  string
	Format string
}

// SearchConfig tunes route searches.
type SearchConfig struct {
	Hubs            []string
	MaxDirectOffers int
	MaxRoutes       int
}

// SetDefaults registers the default for every key Load reads.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("amadeus.base_url", flightdata.DefaultBaseURL)
	v.SetDefault("amadeus.timeout", 30*time.Second)
	v.SetDefault("amadeus.requests_per_second", 5.0)
	v.SetDefault("amadeus.cache_ttl", 15*time.Minute)
	v.SetDefault("search.max_direct_offers", routing.DefaultOptions().MaxDirectOffers)
	v.SetDefault("search.max_routes", routing.DefaultMaxRoutes)
	v.SetDefault("search.hubs", routing.DefaultHubs())
	v.SetDefault("catalog.path", "")
	v.SetDefault("valuation.good_value_threshold", valuation.DefaultGoodValueThreshold)
}

// Load reads and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	cfg := &Config{
		Logging: LoggingConfig{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
		},
		Amadeus: flightdata.Config{
			APIKey:            v.GetString("amadeus.api_key"),
			APISecret:         v.GetString("amadeus.api_secret"),
			BaseURL:           v.GetString("amadeus.base_url"),
			Timeout:           v.GetDuration("amadeus.timeout"),
			RequestsPerSecond: v.GetFloat64("amadeus.requests_per_second"),
			CacheTTL:          v.GetDuration("amadeus.cache_ttl"),
		},
		Search: SearchConfig{
			MaxDirectOffers: v.GetInt("search.max_direct_offers"),
			MaxRoutes:       v.GetInt("search.max_routes"),
			Hubs:            v.GetStringSlice("search.hubs"),
		},
		CatalogPath:        ExpandPath(v.GetString("catalog.path")),
		GoodValueThreshold: v.GetFloat64("valuation.good_value_threshold"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every setting. Amadeus credentials are optional, but a
// key without a secret (or the reverse) is a mistake worth reporting.
func (c *Config) Validate() error {
	if _, err := common.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("%w: invalid log format: %s", common.ErrInvalidConfig, c.Logging.Format)
	}

	if c.Amadeus.APIKey != "" || c.Amadeus.APISecret != "" {
		if err := c.Amadeus.Validate(); err != nil {
			return err
		}
	}

	if c.Search.MaxDirectOffers <= 0 {
		return fmt.Errorf("%w: search.max_direct_offers must be positive", common.ErrInvalidConfig)
	}
	if c.Search.MaxRoutes <= 0 {
		return fmt.Errorf("%w: search.max_routes must be positive", common.ErrInvalidConfig)
	}
	hubs := make([]string, 0, len(c.Search.Hubs))
	for _, hub := range c.Search.Hubs {
		code, err := common.ParseAirportCode(hub)
		if err != nil {
			return fmt.Errorf("%w: search.hubs: %w", common.ErrInvalidConfig, err)
		}
		hubs = append(hubs, code)
	}
	c.Search.Hubs = hubs

	if c.GoodValueThreshold < 0 {
		return fmt.Errorf("%w: valuation.good_value_threshold must be non-negative", common.ErrInvalidConfig)
	}
	return nil
}

// RoutingOptions returns route construction options for this configuration.
func (c *Config) RoutingOptions() routing.Options {
	opts := routing.DefaultOptions()
	opts.MaxDirectOffers = c.Search.MaxDirectOffers
	if len(c.Search.Hubs) > 0 {
		opts.Hubs = append([]string(nil), c.Search.Hubs...)
	}
	return opts
}

// Catalog loads the configured catalog file, or the built-in tables when no
// path is set.
func (c *Config) Catalog() (*catalog.Catalog, error) {
	if c.CatalogPath == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(c.CatalogPath)
}
