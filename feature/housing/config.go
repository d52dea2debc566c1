package housing

import (
	"time"

	"housing-manager/feature/housing/land"
)

// Config holds configuration for the housing subsystem.
type Config struct {
	// StoreRetries is how many times a failed store transaction is retried.
	StoreRetries int `mapstructure:"store_retries" default:"3"`
	// RetryBackoffMs is the base delay between retries, multiplied by the attempt number.
	RetryBackoffMs int `mapstructure:"retry_backoff_ms" default:"50"`
	// DecayIntervalMinutes is how long a land stays at one price before decaying.
	DecayIntervalMinutes int `mapstructure:"decay_interval_minutes" default:"360"`
	// DecayPercent is the share of the maximum price removed per interval.
	DecayPercent int `mapstructure:"decay_percent" default:"5"`
	// FloorPercent is the lowest price as a share of the maximum price.
	FloorPercent int `mapstructure:"floor_percent" default:"60"`
	// PriceCottage, PriceHouse and PriceMansion are the maximum prices per size.
	PriceCottage uint64 `mapstructure:"price_cottage" default:"3000000"`
	PriceHouse   uint64 `mapstructure:"price_house" default:"16000000"`
	PriceMansion uint64 `mapstructure:"price_mansion" default:"40000000"`
	// GamedataTTLSeconds is how long parsed gamedata sheets are cached.
	GamedataTTLSeconds int `mapstructure:"gamedata_ttl_seconds" default:"300"`
}

// MaxPrice returns the list price of a size tier.
func (c Config) MaxPrice(size land.Size) uint64 {
	switch size {
	case land.SizeHouse:
		return c.PriceHouse
	case land.SizeMansion:
		return c.PriceMansion
	default:
		return c.PriceCottage
	}
}

// FloorPrice returns the lowest price a size tier decays to.
func (c Config) FloorPrice(size land.Size) uint64 {
	return c.MaxPrice(size) * uint64(clampPercent(c.FloorPercent)) / 100
}

// DecayStep returns how much one decay interval removes from the price.
func (c Config) DecayStep(size land.Size) uint64 {
	return c.MaxPrice(size) * uint64(clampPercent(c.DecayPercent)) / 100
}

// DecayInterval returns DecayIntervalMinutes as a duration.
func (c Config) DecayInterval() time.Duration {
	return time.Duration(c.DecayIntervalMinutes) * time.Minute
}

// RetryBackoff returns RetryBackoffMs as a duration.
func (c Config) RetryBackoff() time.Duration {
	return time.Duration(c.RetryBackoffMs) * time.Millisecond
}

// GamedataTTL returns GamedataTTLSeconds as a duration.
func (c Config) GamedataTTL() time.Duration {
	return time.Duration(c.GamedataTTLSeconds) * time.Second
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
