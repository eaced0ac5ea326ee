package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/psastudios/content-ms-go/internal/logger"
	"github.com/psastudios/content-ms-go/internal/model"
	"github.com/psastudios/content-ms-go/internal/port"
	"github.com/psastudios/content-ms-go/internal/usecase/content"
	"github.com/psastudios/content-ms-go/internal/validation"
)

type MediaRequest struct {
	Type        string        `json:"type" validate:"required,oneof=image video external-link"`
	Title       string        `json:"title" validate:"required,notblank"`
	Description string        `json:"description" validate:"required,notblank"`
	Src         string        `json:"src" validate:"required,notblank"`
	Thumbnail   string        `json:"thumbnail"`
	Category    string        `json:"category" validate:"required,oneof=cinematography video-editing social-media"`
	SourceType  string        `json:"sourceType" validate:"omitempty,oneof=file url"`
	Layout      *model.Layout `json:"layout"`
}

func (req MediaRequest) toInput() port.MediaInput {
	return port.MediaInput{
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		Src:         req.Src,
		Thumbnail:   req.Thumbnail,
		Category:    req.Category,
		SourceType:  req.SourceType,
		Layout:      req.Layout,
	}
}

// decodeMediaRequest pulls a validated MediaRequest out of the body. It writes
// the error response itself and reports ok=false when the handler should stop.
func decodeMediaRequest(w http.ResponseWriter, r *http.Request) (MediaRequest, bool) {
	var req MediaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
		return req, false
	}

	if errs := validation.ValidateStruct(req); errs != nil {
		errsJSON, err := validation.ErrorsToJson(errs)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Validation error (could not encode details)", err)
			return req, false
		}
		RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
		logger.Warnf(r.Context(), "❌  Validation failed: %s", errsJSON)
		return req, false
	}

	return req, true
}

func CreateMediaHandler(svc port.MediaCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeMediaRequest(w, r)
		if !ok {
			return
		}

		item, err := svc.CreateMedia(r.Context(), req.toInput())
		if err != nil {
			if errors.Is(err, content.ErrValidation) {
				WriteError(w, http.StatusBadRequest, err.Error(), nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not create media item", err)
			return
		}

		RespondJSON(w, http.StatusCreated, item)
		logger.Infof(r.Context(), "✅  Successfully created media item #%s", item.ID)
	}
}

func UpdateMediaHandler(svc port.MediaUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := ItemIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		req, ok := decodeMediaRequest(w, r)
		if !ok {
			return
		}

		item, err := svc.UpdateMedia(r.Context(), id, req.toInput())
		if err != nil {
			if errors.Is(err, content.ErrValidation) {
				WriteError(w, http.StatusBadRequest, err.Error(), nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, fmt.Sprintf("could not update media item #%s", id), err)
			return
		}

		RespondJSON(w, http.StatusOK, item)
		logger.Infof(r.Context(), "✅  Successfully updated media item #%s", id)
	}
}

func DeleteMediaHandler(svc port.MediaDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := ItemIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		if err := svc.DeleteMedia(r.Context(), id); err != nil {
			WriteError(w, http.StatusInternalServerError, fmt.Sprintf("could not delete media item #%s", id), err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
		logger.Infof(r.Context(), "✅  Successfully deleted media item #%s", id)
	}
}
