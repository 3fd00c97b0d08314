package discord

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/oauth2"

	"github.com/renlow/LinkForge_Go/internal/domain"
	"github.com/renlow/LinkForge_Go/internal/logger"
)

// Provider authenticates users against Discord's OAuth 2.0 surface. After the
// code exchange it opens a bearer-token discordgo session and reads /users/@me.
type Provider struct {
	cfg    *oauth2.Config
	client *http.Client

	// fetchUser is swapped in tests to avoid hitting Discord's fixed API host.
	fetchUser func(ctx context.Context, accessToken string) (*discordgo.User, error)
}

// New creates a Discord provider with the production endpoints.
func New(clientID, clientSecret, redirectURL string) *Provider {
	p := &Provider{
		cfg: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint: oauth2.Endpoint{
				AuthURL:  DefaultAuthURL,
				TokenURL: DefaultTokenURL,
			},
			Scopes: []string{"identify"},
		},
		client: http.DefaultClient,
	}
	p.fetchUser = p.fetchUserViaSession
	return p
}

// Name returns the platform identifier used by the registry.
func (p *Provider) Name() string {
	return domain.PlatformDiscord
}

// FetchProfile redeems the authorization code and reads the bearer user.
func (p *Provider) FetchProfile(ctx context.Context, code string) (*domain.Profile, error) {
	exchangeCtx := context.WithValue(ctx, oauth2.HTTPClient, p.client)

	token, err := p.cfg.Exchange(exchangeCtx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrUpstreamAuth, ErrMsgTokenExchangeFailed, err)
	}
	if token.AccessToken == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrUpstreamAuth, ErrMsgEmptyAccessToken)
	}

	user, err := p.fetchUser(ctx, token.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrProfileUnavailable, ErrMsgUserLookupFailed, err)
	}
	if user.ID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrUpstreamAuth, ErrMsgMissingUserID)
	}

	logger.FromContext(ctx).Debug("Fetched discord profile", "externalID", user.ID)

	return &domain.Profile{
		Platform:   domain.PlatformDiscord,
		ExternalID: user.ID,
		Username:   user.Username,
		AvatarURL:  user.AvatarURL(""),
	}, nil
}

func (p *Provider) fetchUserViaSession(ctx context.Context, accessToken string) (*discordgo.User, error) {
	session, err := discordgo.New("Bearer " + accessToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgSessionFailed, err)
	}
	session.Client = p.client

	return session.User("@me", discordgo.WithContext(ctx))
}
