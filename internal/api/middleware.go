package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"sehat-ai/backend/internal/auth"
	app_errors "sehat-ai/backend/internal/errors"
)

// userContextKey is the private context key under which the verified identity
// is stored for downstream handlers.
type userContextKey struct{}

// RequireAuth enforces bearer-token authentication on the routes it wraps.
// A missing or malformed Authorization header is a 401; a token that fails
// verification is a 403. Protected handlers never run without a verified
// identity on the request context.
func RequireAuth(verifier auth.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")

			const bearerPrefix = "Bearer "
			if authHeader == "" || !strings.HasPrefix(authHeader, bearerPrefix) {
				respondWithError(w, http.StatusUnauthorized, "Unauthorized: No token provided", app_errors.ErrUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, bearerPrefix)
			claims, err := verifier.Verify(tokenString)
			if err != nil {
				respondWithError(w, http.StatusForbidden, "Forbidden: Invalid token",
					fmt.Errorf("%w: %v", app_errors.ErrForbidden, err))
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the identity placed on the context by RequireAuth.
func UserFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(userContextKey{}).(*auth.Claims)
	return claims, ok
}
