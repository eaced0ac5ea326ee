package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/psastudios/content-ms-go/internal/logger"
)

// ErrorResponse is the uniform error body every handler returns, so the admin
// panel can always read `.error` for its notice banner.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteError logs the failure and sends msg as an ErrorResponse. msg is what
// the operator sees; err is log-only detail and may be nil.
func WriteError(w http.ResponseWriter, status int, msg string, err error) {
	ctx := context.Background()
	if err != nil {
		logger.Errorf(ctx, "❌  %s: %v", msg, err)
	} else {
		logger.Error(ctx, "❌  "+msg)
	}
	// error bodies must never be served from an intermediary cache
	w.Header().Set("Cache-Control", "no-store, max-age=0, must-revalidate")
	RespondJSON(w, status, ErrorResponse{Error: msg})
}

// RespondJSON encodes v as the JSON response body.
func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf(context.Background(), "❌  Failed to encode JSON response: %v", err)
	}
}

// RespondRawJSON writes an already-encoded JSON payload, e.g. a cached
// gallery projection or a validation-errors map.
func RespondRawJSON(w http.ResponseWriter, status int, raw []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(raw); err != nil {
		logger.Errorf(context.Background(), "❌  Failed to write JSON payload: %v", err)
	}
}
