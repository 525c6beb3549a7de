package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
)

type contextKey struct{}

type authService interface {
	GuestLogin() (token, userID string, err error)
	ParseToken(token string) (string, error)
}

type authHandler struct {
	logger *slog.Logger
	auth   authService
}

type guestResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

// GuestLogin issues a token for a new anonymous identity.
func (that *authHandler) GuestLogin(w http.ResponseWriter, _ *http.Request) {
	log := that.logger.With("method", "GuestLogin")

	token, userID, err := that.auth.GuestLogin()
	if err != nil {
		log.Error("failed to issue guest token", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	log.Info("guest logged in", "user_id", userID)

	writeJSON(w, http.StatusOK, guestResponse{Token: token, UserID: userID})
}

// Authenticate requires a bearer token and puts its subject into the request context.
func (that *authHandler) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		userID, err := that.auth.ParseToken(token)
		if err != nil {
			that.logger.Debug("rejected token", "method", "Authenticate", "error", err)
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, contextKey{}, userID)
}

// UserIDFromContext returns the authenticated user, or "" outside Authenticate.
func UserIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(contextKey{}).(string)
	return userID
}
