package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/renlow/LinkForge_Go/internal/domain"
	"github.com/renlow/LinkForge_Go/internal/logger"
	"github.com/renlow/LinkForge_Go/internal/roblox"
)

// RobloxLookup resolves a Roblox user id to a username and headshot URL.
type RobloxLookup interface {
	GetPlayerInfo(ctx context.Context, userID string) (*roblox.PlayerInfo, error)
}

// HandleGetRobloxUser handles GET /api/getRobloxUser/{id}, a public lookup
// backed by the Roblox Users and Thumbnails APIs.
// @Summary Look up a Roblox user
// @Tags roblox
// @Produce json
// @Param id path string true "Roblox user id"
// @Success 200 {object} roblox.PlayerInfo
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/getRobloxUser/{id} [get]
func HandleGetRobloxUser(lookup RobloxLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			respondError(w, http.StatusNotFound, ErrMsgRobloxUserNotFound)
			return
		}

		info, err := lookup.GetPlayerInfo(r.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				respondError(w, http.StatusNotFound, ErrMsgRobloxUserNotFound)
				return
			}
			logger.FromContext(r.Context()).Error("Roblox lookup failed", "id", id, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgRobloxLookupFailed)
			return
		}

		respondJSON(w, http.StatusOK, info)
	}
}
