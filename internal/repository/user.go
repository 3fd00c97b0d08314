package repository

import (
	"context"

	"github.com/renlow/LinkForge_Go/internal/domain"
)

// User defines the interface for account persistence
type User interface {
	// FindByPlatformID returns the account holding the given external id,
	// or domain.ErrUserNotFound.
	FindByPlatformID(ctx context.Context, platform, externalID string) (*domain.User, error)

	// FindOrCreateByPlatformID returns the account holding the given
	// external id, creating it first when absent. The operation is atomic:
	// concurrent calls for the same external id yield exactly one account.
	FindOrCreateByPlatformID(ctx context.Context, platform, externalID, username, avatarURL string) (*domain.User, error)

	// GetByID loads an account with its platform links and owned-product
	// set expanded, or domain.ErrUserNotFound.
	GetByID(ctx context.Context, userID string) (*domain.User, error)

	// UnlinkPlatform removes one platform's external id from the account.
	// Returns domain.ErrNothingToUnlink when that platform is not linked.
	UnlinkPlatform(ctx context.Context, userID, platform string) error
}
