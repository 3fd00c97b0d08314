package repository

import (
	"context"

	"github.com/renlow/LinkForge_Go/internal/domain"
)

// Product defines the interface for product catalog persistence
type Product interface {
	// GetAll returns the full catalog. An empty catalog is not an error at
	// this layer; callers decide how to surface it.
	GetAll(ctx context.Context) ([]domain.Product, error)
}
