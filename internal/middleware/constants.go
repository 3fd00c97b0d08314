package middleware

// HTTP Header Names
const (
	// HeaderAuthorization carries the raw session credential. Deployed
	// clients send the bare token with no scheme prefix.
	HeaderAuthorization = "Authorization"
)

// Response Messages
const (
	MsgUnauthorized = "Unauthorized: No token provided"
	MsgInvalidToken = "Unauthorized: Invalid token"
	MsgUserNotFound = "User not found"
)

// Log Messages
const (
	LogMsgTokenRejected     = "Session credential rejected"
	LogMsgAccountLoadFailed = "Failed to load account for valid credential"
)
