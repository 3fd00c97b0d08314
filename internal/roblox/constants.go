package roblox

import "time"

// Public Roblox API endpoints
const (
	DefaultUsersURL      = "https://users.roblox.com"
	DefaultThumbnailsURL = "https://thumbnails.roblox.com"
)

// Headshot thumbnail parameters the deployed front-end expects
const (
	ThumbnailSize   = "420x420"
	ThumbnailFormat = "Png"
)

// Lookup cache sizing
const (
	DefaultCacheSize = 500
	DefaultCacheTTL  = 10 * time.Minute
)

// Error Messages - Roblox Lookup Client
const (
	ErrMsgUserLookupFailed      = "roblox user lookup failed"
	ErrMsgThumbnailLookupFailed = "roblox thumbnail lookup failed"
	ErrMsgNoThumbnail           = "roblox thumbnail response empty"
)
