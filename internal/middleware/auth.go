package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/renlow/LinkForge_Go/internal/domain"
	"github.com/renlow/LinkForge_Go/internal/identity"
	"github.com/renlow/LinkForge_Go/internal/logger"
	"github.com/renlow/LinkForge_Go/internal/session"
)

type contextKey string

const userContextKey contextKey = "authenticatedUser"

// Auth gates a route group behind a valid session credential. The token is
// read raw from the Authorization header. On success the account is loaded
// with its owned-product set expanded and stored in the request context.
func Auth(issuer *session.Issuer, identitySvc identity.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(HeaderAuthorization)
			if token == "" {
				respondError(w, http.StatusUnauthorized, MsgUnauthorized)
				return
			}

			claims, err := issuer.Validate(token)
			if err != nil {
				logger.FromContext(r.Context()).Warn(LogMsgTokenRejected, "error", err)
				respondError(w, http.StatusUnauthorized, MsgInvalidToken)
				return
			}

			user, err := identitySvc.GetUser(r.Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					respondError(w, http.StatusNotFound, MsgUserNotFound)
					return
				}
				logger.FromContext(r.Context()).Error(LogMsgAccountLoadFailed,
					"userID", claims.UserID, "error", err)
				respondError(w, http.StatusInternalServerError, "Internal Server Error")
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the authenticated account stored by Auth.
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userContextKey).(*domain.User)
	return user, ok
}

// ContextWithUser stores an account in the context. Exposed for handler
// tests that bypass the middleware.
func ContextWithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
