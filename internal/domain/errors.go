package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	ErrMsgUserNotFound       = "user not found"
	ErrMsgUpstreamAuth       = "upstream auth exchange failed"
	ErrMsgStoreUnavailable   = "store unavailable"
	ErrMsgMissingCredential  = "missing credential"
	ErrMsgInvalidCredential  = "invalid credential"
	ErrMsgNothingToUnlink    = "nothing to unlink"
	ErrMsgProductsNotFound   = "no products found"
	ErrMsgInvalidPlatform    = "invalid platform"
	ErrMsgInvalidInput       = "invalid input"
	ErrMsgProfileUnavailable = "profile unavailable"
)

// Common domain errors.
// These errors should be used consistently across all layers of the
// application. Wrap with fmt.Errorf("%w: %s", domain.ErrXxx, details) for
// additional context.
var (
	// Account errors
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	// Provider errors
	ErrUpstreamAuth       = errors.New(ErrMsgUpstreamAuth)
	ErrProfileUnavailable = errors.New(ErrMsgProfileUnavailable)

	// Persistence errors
	ErrStoreUnavailable = errors.New(ErrMsgStoreUnavailable)

	// Session errors
	ErrMissingCredential = errors.New(ErrMsgMissingCredential)
	ErrInvalidCredential = errors.New(ErrMsgInvalidCredential)

	// Linking errors
	ErrNothingToUnlink = errors.New(ErrMsgNothingToUnlink)

	// Catalog errors
	ErrProductsNotFound = errors.New(ErrMsgProductsNotFound)

	// Validation errors
	ErrInvalidPlatform = errors.New(ErrMsgInvalidPlatform)
	ErrInvalidInput    = errors.New(ErrMsgInvalidInput)
)
