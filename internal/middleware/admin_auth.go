package middleware

import (
	"net/http"
	"strings"

	"github.com/psastudios/content-ms-go/internal/auth"
	"github.com/psastudios/content-ms-go/internal/handler/api"
)

// WithAdminAuth guards the admin routes with the bearer token minted by the
// login endpoint.
func WithAdminAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				api.WriteError(w, http.StatusUnauthorized, "missing bearer token", nil)
				return
			}

			tokenStr := strings.TrimPrefix(header, "Bearer ")
			if err := auth.VerifyAdminToken(secret, tokenStr); err != nil {
				api.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
