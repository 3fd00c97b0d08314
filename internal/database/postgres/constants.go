package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Account Operations
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
	ErrMsgFailedToInsertUser       = "failed to insert user"
	ErrMsgFailedToInsertLink       = "failed to insert platform link"
	ErrMsgFailedToQueryUser        = "failed to query user"
	ErrMsgFailedToScanLink         = "failed to scan platform link"
	ErrMsgFailedToQueryProducts    = "failed to query products"
	ErrMsgUnknownPlatform          = "unknown platform"
)
