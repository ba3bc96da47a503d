package httputil

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/bissquit/store-rating/internal/domain"
)

type contextKey string

// identityKey stores the authenticated Identity in the request context.
const identityKey contextKey = "identity"

// TokenVerifier validates a bearer token and returns the identity it encodes.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (domain.Identity, error)
}

// CORSMiddleware creates CORS middleware that handles preflight requests
// and adds appropriate CORS headers to responses.
func CORSMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	originsSet := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		originsSet[o] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if originsSet[origin] || originsSet["*"] {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
				w.Header().Set("Access-Control-Max-Age", "86400")
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AuthMiddleware verifies the Authorization bearer token and attaches the
// resulting Identity to the request context. A missing token yields 401; a
// malformed, forged, or expired token yields 403.
func AuthMiddleware(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				Error(w, http.StatusUnauthorized, "No token provided")
				return
			}

			identity, err := verifier.Verify(r.Context(), token)
			if err != nil {
				Error(w, http.StatusForbidden, "Token is invalid or expired")
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole permits the request only when the authenticated identity holds
// exactly the required role. It must run after AuthMiddleware.
func RequireRole(required domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := GetIdentity(r.Context())
			if !ok {
				Error(w, http.StatusUnauthorized, "No token provided")
				return
			}

			if identity.Role != required {
				Error(w, http.StatusForbidden,
					fmt.Sprintf("Access denied. You must be an '%s' to perform this action.", required))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetIdentity extracts the authenticated Identity from the context.
func GetIdentity(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(domain.Identity)
	return identity, ok
}

// WithIdentity returns a context carrying the given Identity. Used by tests
// that exercise handlers without the middleware chain.
func WithIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
