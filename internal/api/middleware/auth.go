package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/api/response"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/model"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/service"
)

type contextKey string

const sessionKey contextKey = "session"

// SessionAuth returns a middleware that requires a valid session token in
// the Authorization header ("Bearer <token>") and injects the decoded
// session into the request context.
func SessionAuth(auth *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				response.RespondError(w, http.StatusUnauthorized, "authentication required", nil)
				return
			}

			session, err := auth.DecodeToken(token)
			if err != nil {
				response.RespondError(w, http.StatusUnauthorized, "invalid or expired session", nil)
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext returns the session placed in the context by SessionAuth.
func SessionFromContext(ctx context.Context) (model.Session, bool) {
	session, ok := ctx.Value(sessionKey).(model.Session)
	return session, ok
}

// WithSession returns a copy of ctx carrying the given session. Test helper
// for exercising handlers without the full middleware stack.
func WithSession(ctx context.Context, session model.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}
