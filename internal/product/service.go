package product

import (
	"context"

	"github.com/renlow/LinkForge_Go/internal/domain"
	"github.com/renlow/LinkForge_Go/internal/repository"
)

// Service defines the interface for product catalog operations
type Service interface {
	// ListWithOwnership returns the full catalog annotated with the given
	// account's ownership. An empty catalog is domain.ErrProductsNotFound.
	ListWithOwnership(ctx context.Context, user *domain.User) ([]domain.OwnedProduct, error)
}

type service struct {
	repo repository.Product
}

// NewService creates a new product service
func NewService(repo repository.Product) Service {
	return &service{repo: repo}
}

func (s *service) ListWithOwnership(ctx context.Context, user *domain.User) ([]domain.OwnedProduct, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, domain.ErrProductsNotFound
	}

	owned := make([]domain.OwnedProduct, 0, len(products))
	for _, p := range products {
		owned = append(owned, domain.OwnedProduct{
			Product: p,
			Owned:   user.OwnsProduct(p.ProductID),
		})
	}
	return owned, nil
}
