package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/petwatch/petwatch/internal/domain"
	"github.com/petwatch/petwatch/internal/service"
)

type contextKey string

const UserKey contextKey = "user"

// Require applies the access policy to every request before the handler
// runs. The resolved user lands in the request context.
func Require(policy *service.AccessPolicy, req service.Requirement) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := policy.Authorize(r.Context(), BearerToken(r), req)
			if err != nil {
				if errors.Is(err, domain.ErrForbidden) {
					log.Printf("ERROR [middleware.Require] insufficient role for %s %s", r.Method, r.URL.Path)
					http.Error(w, "Forbidden", http.StatusForbidden)
					return
				}
				log.Printf("ERROR [middleware.Require] authorization failed: %v", err)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerToken extracts the bearer token from the Authorization header, or ""
// when absent or malformed.
func BearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

func GetUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(UserKey).(*domain.User)
	return user, ok
}
