package discord

// Discord OAuth 2.0 endpoints
const (
	DefaultAuthURL  = "https://discord.com/api/oauth2/authorize"
	DefaultTokenURL = "https://discord.com/api/oauth2/token"
)

// Error Messages - Discord Provider
const (
	ErrMsgTokenExchangeFailed = "discord token exchange failed"
	ErrMsgEmptyAccessToken    = "discord returned no access token"
	ErrMsgSessionFailed       = "discord session setup failed"
	ErrMsgUserLookupFailed    = "discord user lookup failed"
	ErrMsgMissingUserID       = "discord user has no id"
)
