package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/psastudios/content-ms-go/internal/logger"
	"github.com/psastudios/content-ms-go/internal/model"
	"github.com/psastudios/content-ms-go/internal/port"
)

// GetGalleryHandler serves one category's media projection, backed by the
// gallery cache. A cache failure is logged and treated as a miss.
func GetGalleryHandler(ca port.Cache, svc port.GalleryGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := model.Category(chi.URLParam(r, "category"))
		if !category.Valid() {
			WriteError(w, http.StatusNotFound, "Unknown gallery category", nil)
			return
		}

		if raw, err := ca.GetGallery(r.Context(), category); err != nil {
			logger.Warnf(r.Context(), "⚠️  Gallery cache lookup failed: %v", err)
		} else if raw != nil {
			RespondRawJSON(w, http.StatusOK, raw)
			logger.Infof(r.Context(), "✅  Returning cached %q gallery", category)
			return
		}

		items, err := svc.GetGallery(r.Context(), category)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not build gallery", err)
			return
		}

		raw, err := json.Marshal(items)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not encode gallery", err)
			return
		}
		ca.SetGallery(r.Context(), category, raw)

		RespondRawJSON(w, http.StatusOK, raw)
		logger.Infof(r.Context(), "✅  Successfully returned %q gallery (%d items)", category, len(items))
	}
}
