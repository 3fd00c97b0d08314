package roblox

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/renlow/LinkForge_Go/internal/domain"
	"github.com/renlow/LinkForge_Go/internal/logger"
)

// Provider authenticates users against Roblox's OAuth 2.0 + OIDC surface.
type Provider struct {
	cfg         *oauth2.Config
	userInfoURL string
	client      *http.Client
}

// New creates a Roblox provider with the production endpoints.
func New(clientID, clientSecret, redirectURL string) *Provider {
	return &Provider{
		cfg: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint: oauth2.Endpoint{
				AuthURL:  DefaultAuthURL,
				TokenURL: DefaultTokenURL,
			},
			Scopes: []string{"openid", "profile"},
		},
		userInfoURL: DefaultUserInfoURL,
		client:      http.DefaultClient,
	}
}

// Name returns the platform identifier used by the registry.
func (p *Provider) Name() string {
	return domain.PlatformRoblox
}

// userInfo mirrors the OIDC userinfo claims Roblox returns.
type userInfo struct {
	Sub               string `json:"sub"`
	PreferredUsername string `json:"preferred_username"`
	Picture           string `json:"picture"`
}

// FetchProfile redeems the authorization code and reads the userinfo claims.
func (p *Provider) FetchProfile(ctx context.Context, code string) (*domain.Profile, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.client)

	token, err := p.cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrUpstreamAuth, ErrMsgTokenExchangeFailed, err)
	}
	if token.AccessToken == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrUpstreamAuth, ErrMsgEmptyAccessToken)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProfileUnavailable, err)
	}
	token.SetAuthHeader(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrProfileUnavailable, ErrMsgUserInfoFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s: status %d", domain.ErrProfileUnavailable, ErrMsgUserInfoFailed, resp.StatusCode)
	}

	var info userInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrProfileUnavailable, ErrMsgUserInfoFailed, err)
	}
	if info.Sub == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrUpstreamAuth, ErrMsgMissingSubject)
	}

	logger.FromContext(ctx).Debug("Fetched roblox profile", "externalID", info.Sub)

	return &domain.Profile{
		Platform:   domain.PlatformRoblox,
		ExternalID: info.Sub,
		Username:   info.PreferredUsername,
		AvatarURL:  info.Picture,
	}, nil
}
