package seating

import (
	"time"

	"wedding-planner/feature/seating/layout"
	"wedding-planner/feature/seating/models"
)

// Config holds configuration for the seating feature.
type Config struct {
	// Enabled toggles the feature.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// Strategy is the default layout strategy when a request names none.
	Strategy string `mapstructure:"strategy" default:"columns"`
	// HallWidth is the default hall width in layout units.
	HallWidth float64 `mapstructure:"hall_width" default:"1800"`
	// HallHeight is the default hall height in layout units.
	HallHeight float64 `mapstructure:"hall_height" default:"1200"`
	// CacheTTLSeconds is how long capacity snapshots served to read-only
	// callers may be stale. Zero disables the cache.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"30"`
}

// IsValidStrategy checks if the configured default strategy exists.
func (c Config) IsValidStrategy() bool {
	_, err := layout.ParseStrategy(c.Strategy)
	return err == nil
}

// Hall returns the default hall rectangle.
func (c Config) Hall() models.HallSize {
	return models.HallSize{Width: c.HallWidth, Height: c.HallHeight}
}

// CacheTTL returns the snapshot TTL as a duration.
func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}
