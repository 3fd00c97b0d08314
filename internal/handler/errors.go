package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Callback error messages
	ErrMsgCodeNotProvided = "Code not provided."

	// Roblox lookup error messages
	ErrMsgRobloxUserNotFound = "User not found"
	ErrMsgRobloxLookupFailed = "An error occurred while fetching Roblox user data."
)

// Success messages for API responses. The exact strings are part of the
// deployed front-end's contract.
const (
	MsgDiscordLinked  = "Discord account linked successfully."
	MsgRobloxUnlinked = "Roblox account unlinked successfully."
)
