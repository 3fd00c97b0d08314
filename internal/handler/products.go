package handler

import (
	"net/http"

	"github.com/renlow/LinkForge_Go/internal/domain"
	"github.com/renlow/LinkForge_Go/internal/middleware"
	"github.com/renlow/LinkForge_Go/internal/product"
)

// ProductHandlers contains handlers for the product catalog
type ProductHandlers struct {
	svc product.Service
}

// NewProductHandlers creates new product handlers
func NewProductHandlers(svc product.Service) *ProductHandlers {
	return &ProductHandlers{svc: svc}
}

// OwnedProductsResponse is the body returned by the owned-products listing
type OwnedProductsResponse struct {
	Products []domain.OwnedProduct `json:"products"`
}

// HandleGetOwnedProducts handles GET /api/products/owned. The full catalog
// is returned with each entry annotated with the caller's ownership.
// @Summary List products with ownership
// @Tags products
// @Produce json
// @Success 200 {object} OwnedProductsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/products/owned [get]
func (h *ProductHandlers) HandleGetOwnedProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middleware.UserFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, ErrMsgMissingTokenError)
			return
		}

		products, err := h.svc.ListWithOwnership(r.Context(), user)
		if err != nil {
			respondServiceError(w, r, "List owned products", err)
			return
		}

		respondJSON(w, http.StatusOK, OwnedProductsResponse{Products: products})
	}
}
