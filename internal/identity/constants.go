package identity

import "time"

// Account cache sizing
const (
	// DefaultCacheSize is the maximum number of cached account resolutions
	DefaultCacheSize = 1000
	// DefaultCacheTTL is how long a cached resolution stays valid
	DefaultCacheTTL = 5 * time.Minute
)
