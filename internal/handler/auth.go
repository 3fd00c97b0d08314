package handler

import (
	"errors"
	"net/http"

	"github.com/renlow/LinkForge_Go/internal/domain"
	"github.com/renlow/LinkForge_Go/internal/identity"
	"github.com/renlow/LinkForge_Go/internal/linkstate"
	"github.com/renlow/LinkForge_Go/internal/logger"
	"github.com/renlow/LinkForge_Go/internal/metrics"
	"github.com/renlow/LinkForge_Go/internal/middleware"
	"github.com/renlow/LinkForge_Go/internal/provider"
	"github.com/renlow/LinkForge_Go/internal/session"
)

// HeaderLinkState carries the client-held link record on callback requests.
// The odd name is the deployed front-end's contract.
const HeaderLinkState = "___cookie"

// AuthHandlers contains handlers for the OAuth callback and linking flows
type AuthHandlers struct {
	providers *provider.Registry
	identity  identity.Service
	issuer    *session.Issuer
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(providers *provider.Registry, identitySvc identity.Service, issuer *session.Issuer) *AuthHandlers {
	return &AuthHandlers{
		providers: providers,
		identity:  identitySvc,
		issuer:    issuer,
	}
}

// CallbackResponse is the body returned after a successful callback
type CallbackResponse struct {
	Token        string           `json:"token"`
	ReturnedUser linkstate.Record `json:"ReturnedUser"`
}

// LinkDiscordRequest is the request body for binding a Discord identity
type LinkDiscordRequest struct {
	DiscordID string `json:"discordId" validate:"required"`
	Username  string `json:"username" validate:"required"`
	Avatar    string `json:"avatar"`
}

// LinkResponse is the body returned after a successful link
type LinkResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// HandleCallback handles GET /api/auth/{platform}/callback. The pipeline is
// fetch profile, resolve account, merge link state, issue session; the
// account is persisted before any credential is issued.
// @Summary OAuth callback
// @Description Redeems the authorization code and issues a session credential
// @Tags auth
// @Produce json
// @Param code query string true "Authorization code"
// @Success 200 {object} CallbackResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/auth/{platform}/callback [get]
func (h *AuthHandlers) HandleCallback(platform string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		code := r.URL.Query().Get("code")
		if code == "" {
			respondError(w, http.StatusBadRequest, ErrMsgCodeNotProvided)
			return
		}

		// A malformed or absent prior record is treated as empty, never an
		// error; first-time logins arrive with no record at all.
		prior := linkstate.Decode(r.Header.Get(HeaderLinkState))

		p, err := h.providers.Get(platform)
		if err != nil {
			respondServiceError(w, r, "Auth callback", err)
			return
		}

		profile, err := p.FetchProfile(r.Context(), code)
		if err != nil {
			if errors.Is(err, domain.ErrUpstreamAuth) {
				metrics.TokenExchangeFailures.WithLabelValues(platform).Inc()
			}
			metrics.AuthCallbacks.WithLabelValues(platform, metrics.OutcomeFailure).Inc()
			respondServiceError(w, r, "Auth callback", err)
			return
		}

		user, err := h.identity.Resolve(r.Context(), *profile)
		if err != nil {
			metrics.AuthCallbacks.WithLabelValues(platform, metrics.OutcomeFailure).Inc()
			respondServiceError(w, r, "Auth callback", err)
			return
		}

		record := linkstate.Merge(prior, linkstate.FromProfile(*profile))

		token, expiresAt, err := h.issuer.Issue(user.ID)
		if err != nil {
			metrics.AuthCallbacks.WithLabelValues(platform, metrics.OutcomeFailure).Inc()
			respondServiceError(w, r, "Auth callback", err)
			return
		}

		encoded, err := linkstate.Encode(record)
		if err != nil {
			respondServiceError(w, r, "Auth callback", err)
			return
		}

		session.WriteSessionCookie(w, token, expiresAt)
		session.WriteUserDataCookie(w, encoded)

		metrics.AuthCallbacks.WithLabelValues(platform, metrics.OutcomeSuccess).Inc()
		metrics.SessionsIssued.Inc()

		log.Info("Auth callback complete", "platform", platform, "userID", user.ID)

		respondJSON(w, http.StatusOK, CallbackResponse{
			Token:        token,
			ReturnedUser: record,
		})
	}
}

// HandleLinkDiscord handles POST /api/auth/discord/link. The session is
// re-issued for whichever account the Discord id resolves to.
// @Summary Link a Discord identity
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LinkDiscordRequest true "Discord identity"
// @Success 200 {object} LinkResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/auth/discord/link [post]
func (h *AuthHandlers) HandleLinkDiscord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LinkDiscordRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Link discord"); err != nil {
			return
		}

		user, err := h.identity.LinkDiscord(r.Context(), req.DiscordID, req.Username, req.Avatar)
		if err != nil {
			respondServiceError(w, r, "Link discord", err)
			return
		}

		token, expiresAt, err := h.issuer.Issue(user.ID)
		if err != nil {
			respondServiceError(w, r, "Link discord", err)
			return
		}

		session.WriteSessionCookie(w, token, expiresAt)

		metrics.PlatformsLinked.WithLabelValues(domain.PlatformDiscord).Inc()
		metrics.SessionsIssued.Inc()

		respondJSON(w, http.StatusOK, LinkResponse{
			Message: MsgDiscordLinked,
			Token:   token,
		})
	}
}

// HandleUnlinkRoblox handles DELETE /api/auth/roblox/link.
// @Summary Unlink the Roblox identity
// @Tags auth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/auth/roblox/link [delete]
func (h *AuthHandlers) HandleUnlinkRoblox() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middleware.UserFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, ErrMsgMissingTokenError)
			return
		}

		if err := h.identity.UnlinkRoblox(r.Context(), user.ID); err != nil {
			respondServiceError(w, r, "Unlink roblox", err)
			return
		}

		session.ClearRobloxUserCookie(w)
		metrics.PlatformsUnlinked.WithLabelValues(domain.PlatformRoblox).Inc()

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgRobloxUnlinked})
	}
}
