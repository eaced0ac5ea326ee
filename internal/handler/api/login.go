package api

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/psastudios/content-ms-go/internal/auth"
	"github.com/psastudios/content-ms-go/internal/logger"
	"github.com/psastudios/content-ms-go/internal/validation"
)

type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// LoginHandler trades the shared admin password for a bearer token. The token
// never expires, matching the panel's session semantics.
func LoginHandler(adminPassword, jwtSecret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
			return
		}

		if errs := validation.ValidateStruct(req); errs != nil {
			errsJSON, err := validation.ErrorsToJson(errs)
			if err != nil {
				WriteError(w, http.StatusInternalServerError, "Validation error (could not encode details)", err)
				return
			}
			RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
			logger.Warnf(r.Context(), "❌  Validation failed: %s", errsJSON)
			return
		}

		if subtle.ConstantTimeCompare([]byte(req.Password), []byte(adminPassword)) != 1 {
			WriteError(w, http.StatusUnauthorized, "Incorrect password", nil)
			return
		}

		token, err := auth.MintAdminToken(jwtSecret)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not mint session token", err)
			return
		}

		RespondJSON(w, http.StatusOK, LoginResponse{Token: token})
		logger.Info(r.Context(), "✅  Admin session opened")
	}
}
