package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/psastudios/content-ms-go/internal/handler/api"
)

func TestWithItemID_StashesID(t *testing.T) {
	var got string
	r := chi.NewRouter()
	r.With(WithItemID()).Put("/admin/media/{id}", func(w http.ResponseWriter, r *http.Request) {
		got, _ = api.ItemIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/admin/media/media-42", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rr.Code)
	}
	if got != "media-42" {
		t.Errorf("id = %q; want media-42", got)
	}
}
