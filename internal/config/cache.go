package config

import "time"

// CacheConfig controls the calendar response cache. Only GET
// responses under the calendar routes are cached; anything mutating
// goes straight through. Cached grids can lag an accepted request by
// up to the TTL, so the cache is opt-in via CACHE_ENABLED.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
	Prefix  string
}

// LoadCacheConfig reads cache settings from the environment. The
// cache stays off unless CACHE_ENABLED is set.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled: envBool("CACHE_ENABLED", false),
		TTL:     envDur("CACHE_TTL", 30*time.Second),
		Prefix:  envStr("CACHE_PREFIX", "cache"),
	}
}
