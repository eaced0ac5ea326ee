package api

import (
	"net/http"

	"github.com/psastudios/content-ms-go/internal/logger"
	"github.com/psastudios/content-ms-go/internal/port"
)

// ListContentHandler returns the whole store for the admin panel, with
// per-category counts annotated.
func ListContentHandler(svc port.ContentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.ListContent(r.Context())
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not list content", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Infof(r.Context(), "✅  Successfully listed content (%d media items, %d projects)", len(out.MediaItems), len(out.Projects))
	}
}
