package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/psastudios/content-ms-go/internal/logger"
	"github.com/psastudios/content-ms-go/internal/model"
	"github.com/psastudios/content-ms-go/internal/port"
)

type GithubConfigRequest struct {
	Token string `json:"token"`
	Owner string `json:"owner"`
	Repo  string `json:"repo"`
}

// Partial configs are allowed on save; completeness is only enforced when a
// publish is attempted.
func SaveGithubConfigHandler(store port.ContentStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GithubConfigRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
			return
		}

		cfg := model.GithubConfig{Token: req.Token, Owner: req.Owner, Repo: req.Repo}
		if err := store.SaveGithubConfig(r.Context(), cfg); err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not save GitHub settings", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
		logger.Info(r.Context(), "✅  Successfully saved GitHub settings")
	}
}

func GetGithubConfigHandler(store port.ContentStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg := store.LoadGithubConfig(r.Context())
		RespondJSON(w, http.StatusOK, cfg)
	}
}
