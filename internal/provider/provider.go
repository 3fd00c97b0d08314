package provider

import (
	"context"

	"github.com/renlow/LinkForge_Go/internal/domain"
)

// Provider performs the authorization-code exchange against one external
// platform and returns the normalized profile. Implementations return
// identity facts only; account creation, linking, and session issuance
// belong to the identity and session layers.
type Provider interface {
	// Name returns the platform identifier (domain.PlatformRoblox or
	// domain.PlatformDiscord).
	Name() string

	// FetchProfile redeems the authorization code and fetches the
	// authenticated user's profile. A failed exchange or a response
	// with no usable identity is domain.ErrUpstreamAuth; a successful
	// exchange followed by a failed profile lookup is
	// domain.ErrProfileUnavailable.
	FetchProfile(ctx context.Context, code string) (*domain.Profile, error)
}
