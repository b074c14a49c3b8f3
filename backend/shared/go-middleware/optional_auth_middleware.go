package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/harborview/realestate/backend/shared/go-utils"
)

// OptionalAuthMiddleware is AuthMiddleware for pages anyone may see. A
// missing token lets the request through anonymously, and so does an
// invalid or expired one: a stale cookie must not lock visitors out of
// public pages.
func OptionalAuthMiddleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, _ := extractAccessToken(r) // ignore error here
			if tokenStr == "" || len(secret) == 0 {
				next.ServeHTTP(w, r) // unauthenticated – allowed
				return
			}

			sub, err := ValidateToken(tokenStr, secret)
			if err != nil {
				utils.Logger.WithError(err).Debug("Ignoring invalid access token on public route")
				next.ServeHTTP(w, r)
				return
			}
			if _, err := uuid.Parse(sub); err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUserID, sub)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
