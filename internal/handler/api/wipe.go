package api

import (
	"net/http"

	"github.com/psastudios/content-ms-go/internal/logger"
	"github.com/psastudios/content-ms-go/internal/port"
)

// WipeContentHandler clears the whole namespace: media, projects and GitHub
// credentials. The next read serves the default seed data. Destructive and
// unconfirmed server-side; the admin panel asks the operator first.
func WipeContentHandler(store port.ContentStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Wipe(r.Context()); err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not wipe content", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
		logger.Warn(r.Context(), "⚠️  All studio content wiped by operator")
	}
}
