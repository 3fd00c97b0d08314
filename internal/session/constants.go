package session

import "time"

// Session credential parameters
const (
	// TokenDuration is how long an issued session credential stays valid
	TokenDuration = 5 * time.Hour

	// TokenIssuer names this service in the iss claim
	TokenIssuer = "linkforge"
)

// Cookie names. "jwt" carries the http-only session credential; "userdata"
// carries the readable link-state record; "roblox_user" is a convenience
// cookie deployed clients read directly.
const (
	CookieJWT        = "jwt"
	CookieUserData   = "userdata"
	CookieRobloxUser = "roblox_user"
)
