package api

import (
	"errors"
	"net/http"

	"github.com/psastudios/content-ms-go/internal/githubapi"
	"github.com/psastudios/content-ms-go/internal/logger"
	"github.com/psastudios/content-ms-go/internal/port"
	"github.com/psastudios/content-ms-go/internal/usecase/content"
)

// PublishSnapshotHandler pushes the current store to the configured GitHub
// repository. Remote rejections are surfaced to the operator verbatim so the
// GitHub error message is never lost in translation.
func PublishSnapshotHandler(svc port.SnapshotPublisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.PublishSnapshot(r.Context())
		if err != nil {
			if errors.Is(err, content.ErrNotConfigured) {
				WriteError(w, http.StatusBadRequest, "Please configure GitHub settings first (Token, Repository, Owner)", nil)
				return
			}
			var remoteErr *githubapi.RemoteError
			if errors.As(err, &remoteErr) {
				WriteError(w, http.StatusBadGateway, remoteErr.Message, err)
				return
			}
			WriteError(w, http.StatusBadGateway, "Could not publish to GitHub", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		logger.Infof(r.Context(), "✅  Successfully saved to GitHub! Commit: %s", out.ShortSHA)
	}
}
