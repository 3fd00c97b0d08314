package roblox

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/renlow/LinkForge_Go/internal/domain"
	"github.com/renlow/LinkForge_Go/internal/metrics"
)

// PlayerInfo is the public lookup result: display name plus a circular
// headshot thumbnail URL.
type PlayerInfo struct {
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// Client resolves Roblox user ids against the public Users and Thumbnails
// APIs. Results are cached; usernames and headshots change rarely.
type Client struct {
	usersURL      string
	thumbnailsURL string
	httpClient    *http.Client
	cache         *expirable.LRU[string, *PlayerInfo]
}

// NewClient creates a lookup client with the production endpoints.
func NewClient() *Client {
	return &Client{
		usersURL:      DefaultUsersURL,
		thumbnailsURL: DefaultThumbnailsURL,
		httpClient:    &http.Client{Timeout: 10 * time.Second},
		cache:         expirable.NewLRU[string, *PlayerInfo](DefaultCacheSize, nil, DefaultCacheTTL),
	}
}

type userResponse struct {
	Name string `json:"name"`
}

type thumbnailResponse struct {
	Data []struct {
		ImageURL string `json:"imageUrl"`
	} `json:"data"`
}

// GetPlayerInfo looks up the username and headshot for a Roblox user id.
// Unknown ids map to domain.ErrUserNotFound.
func (c *Client) GetPlayerInfo(ctx context.Context, userID string) (*PlayerInfo, error) {
	if info, found := c.cache.Get(userID); found {
		metrics.RobloxLookups.WithLabelValues(metrics.ResultHit).Inc()
		return info, nil
	}
	metrics.RobloxLookups.WithLabelValues(metrics.ResultMiss).Inc()

	username, err := c.fetchUsername(ctx, userID)
	if err != nil {
		return nil, err
	}

	avatar, err := c.fetchHeadshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	info := &PlayerInfo{Username: username, Avatar: avatar}
	c.cache.Add(userID, info)
	return info, nil
}

func (c *Client) fetchUsername(ctx context.Context, userID string) (string, error) {
	endpoint := fmt.Sprintf("%s/v1/users/%s", c.usersURL, url.PathEscape(userID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrMsgUserLookupFailed, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrMsgUserLookupFailed, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", domain.ErrUserNotFound
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("%s: status %d", ErrMsgUserLookupFailed, resp.StatusCode)
	}

	var user userResponse
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return "", fmt.Errorf("%s: %w", ErrMsgUserLookupFailed, err)
	}
	if user.Name == "" {
		return "", domain.ErrUserNotFound
	}

	return user.Name, nil
}

func (c *Client) fetchHeadshot(ctx context.Context, userID string) (string, error) {
	endpoint := fmt.Sprintf(
		"%s/v1/users/avatar-headshot?userIds=%s&size=%s&format=%s&isCircular=true",
		c.thumbnailsURL, url.QueryEscape(userID), ThumbnailSize, ThumbnailFormat,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrMsgThumbnailLookupFailed, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrMsgThumbnailLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s: status %d", ErrMsgThumbnailLookupFailed, resp.StatusCode)
	}

	var thumbs thumbnailResponse
	if err := json.NewDecoder(resp.Body).Decode(&thumbs); err != nil {
		return "", fmt.Errorf("%s: %w", ErrMsgThumbnailLookupFailed, err)
	}
	if len(thumbs.Data) == 0 || thumbs.Data[0].ImageURL == "" {
		return "", fmt.Errorf("%w: %s", domain.ErrUserNotFound, ErrMsgNoThumbnail)
	}

	return thumbs.Data[0].ImageURL, nil
}
