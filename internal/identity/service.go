package identity

import (
	"context"
	"fmt"

	"github.com/renlow/LinkForge_Go/internal/domain"
	"github.com/renlow/LinkForge_Go/internal/logger"
	"github.com/renlow/LinkForge_Go/internal/repository"
)

// Service defines the interface for account resolution and linking
type Service interface {
	// Resolve returns the account bound to the profile's external id,
	// creating one when absent. Concurrent resolutions of the same
	// external id yield the same account.
	Resolve(ctx context.Context, profile domain.Profile) (*domain.User, error)

	// LinkDiscord binds a Discord identity to an account. The account
	// returned is whichever one the Discord id resolves to; the caller
	// re-issues the session for it.
	LinkDiscord(ctx context.Context, externalID, username, avatarURL string) (*domain.User, error)

	// UnlinkRoblox removes the Roblox external id from the account.
	UnlinkRoblox(ctx context.Context, userID string) error

	// GetUser loads an account by internal id with links and owned
	// products expanded.
	GetUser(ctx context.Context, userID string) (*domain.User, error)
}

type service struct {
	repo  repository.User
	cache *accountCache
}

// NewService creates a new identity service
func NewService(repo repository.User) Service {
	return &service{
		repo:  repo,
		cache: newAccountCache(DefaultCacheSize, DefaultCacheTTL),
	}
}

func (s *service) Resolve(ctx context.Context, profile domain.Profile) (*domain.User, error) {
	if !domain.ValidPlatform(profile.Platform) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPlatform, profile.Platform)
	}
	if profile.ExternalID == "" {
		return nil, fmt.Errorf("%w: empty external id", domain.ErrInvalidInput)
	}

	if user, found := s.cache.Get(profile.Platform, profile.ExternalID); found {
		return user, nil
	}

	user, err := s.repo.FindOrCreateByPlatformID(ctx, profile.Platform, profile.ExternalID, profile.Username, profile.AvatarURL)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Debug("Resolved account",
		"platform", profile.Platform, "userID", user.ID)

	s.cache.Set(profile.Platform, profile.ExternalID, user)
	return user, nil
}

func (s *service) LinkDiscord(ctx context.Context, externalID, username, avatarURL string) (*domain.User, error) {
	if externalID == "" {
		return nil, fmt.Errorf("%w: empty discord id", domain.ErrInvalidInput)
	}

	// A link changes what the key resolves to; drop any cached resolution
	// before and after so no reader sees the pre-link account.
	s.cache.Invalidate(domain.PlatformDiscord, externalID)

	user, err := s.repo.FindOrCreateByPlatformID(ctx, domain.PlatformDiscord, externalID, username, avatarURL)
	if err != nil {
		return nil, err
	}

	s.cache.Set(domain.PlatformDiscord, externalID, user)
	return user, nil
}

func (s *service) UnlinkRoblox(ctx context.Context, userID string) error {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.RobloxID == "" {
		return domain.ErrNothingToUnlink
	}

	if err := s.repo.UnlinkPlatform(ctx, userID, domain.PlatformRoblox); err != nil {
		return err
	}

	s.cache.Invalidate(domain.PlatformRoblox, user.RobloxID)

	logger.FromContext(ctx).Info("Unlinked roblox identity", "userID", userID)
	return nil
}

func (s *service) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.GetByID(ctx, userID)
}
