package roblox

// Roblox OAuth 2.0 endpoints
const (
	DefaultAuthURL     = "https://apis.roblox.com/oauth/v1/authorize"
	DefaultTokenURL    = "https://apis.roblox.com/oauth/v1/token"
	DefaultUserInfoURL = "https://apis.roblox.com/oauth/v1/userinfo"
)

// Error Messages - Roblox Provider
const (
	ErrMsgTokenExchangeFailed = "roblox token exchange failed"
	ErrMsgEmptyAccessToken    = "roblox returned no access token"
	ErrMsgUserInfoFailed      = "roblox userinfo request failed"
	ErrMsgMissingSubject      = "roblox userinfo missing subject"
)
