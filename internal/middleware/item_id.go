package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/psastudios/content-ms-go/internal/handler/api"
)

// WithItemID extracts the {id} route param. IDs are opaque strings here, so
// unlike a UUID param there is nothing to parse beyond non-emptiness.
func WithItemID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, "id")
			if id == "" {
				api.WriteError(w, http.StatusBadRequest, "ID is required", nil)
				return
			}

			// stash it in context and call the real handler
			ctx := context.WithValue(r.Context(), api.ItemIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
