package provider

import (
	"fmt"

	"github.com/renlow/LinkForge_Go/internal/domain"
)

// Registry holds the configured providers keyed by platform name.
type Registry struct {
	providers map[string]Provider
}

// NewRegistry registers the given providers by name. Names must be unique;
// a duplicate silently wins, so register each platform once.
func NewRegistry(list ...Provider) *Registry {
	m := make(map[string]Provider, len(list))
	for _, p := range list {
		m[p.Name()] = p
	}
	return &Registry{providers: m}
}

// Get returns the provider for the named platform.
func (r *Registry) Get(platform string) (Provider, error) {
	p, ok := r.providers[platform]
	if !ok {
		return nil, fmt.Errorf("%w: no provider registered for %q", domain.ErrInvalidPlatform, platform)
	}
	return p, nil
}
