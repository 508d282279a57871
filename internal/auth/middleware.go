package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pickhealth/platform/internal/domain"
)

type contextKey int

const sessionKey contextKey = iota

// AuthPath is where unauthenticated requests to protected views are sent.
const AuthPath = "/auth"

// SessionFromContext extracts the session placed by RequireSession.
func SessionFromContext(ctx context.Context) *domain.Session {
	if s, ok := ctx.Value(sessionKey).(*domain.Session); ok {
		return s
	}
	return nil
}

// RequireSession gates protected views: it loads the current session into
// the request context, and answers 401 with a redirect hint when nobody is
// signed in. The rendering layer performs the actual navigation.
func RequireSession(svc *Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := svc.CurrentSession(r.Context())
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"error":    "not_authenticated",
					"redirect": AuthPath,
				})
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
