package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/psastudios/content-ms-go/internal/logger"
	"github.com/psastudios/content-ms-go/internal/port"
	"github.com/psastudios/content-ms-go/internal/usecase/content"
	"github.com/psastudios/content-ms-go/internal/validation"
)

type ProjectRequest struct {
	Title       string `json:"title" validate:"required,notblank"`
	Category    string `json:"category" validate:"required,notblank"`
	Description string `json:"description" validate:"required,notblank"`
	Thumbnail   string `json:"thumbnail"`
	URL         string `json:"url"`
	SourceType  string `json:"sourceType" validate:"omitempty,oneof=file url"`
}

func (req ProjectRequest) toInput() port.ProjectInput {
	return port.ProjectInput{
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		Thumbnail:   req.Thumbnail,
		URL:         req.URL,
		SourceType:  req.SourceType,
	}
}

func decodeProjectRequest(w http.ResponseWriter, r *http.Request) (ProjectRequest, bool) {
	var req ProjectRequest
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

func CreateProjectHandler(svc port.ProjectCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeProjectRequest(w, r)
		if !ok {
			return
		}

		project, err := svc.CreateProject(r.Context(), req.toInput())
		if err != nil {
			if errors.Is(err, content.ErrValidation) {
				WriteError(w, http.StatusBadRequest, err.Error(), nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not create project", err)
			return
		}

		RespondJSON(w, http.StatusCreated, project)
		logger.Infof(r.Context(), "✅  Successfully created project #%s", project.ID)
	}
}

func UpdateProjectHandler(svc port.ProjectUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := ItemIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		req, ok := decodeProjectRequest(w, r)
		if !ok {
			return
		}

		project, err := svc.UpdateProject(r.Context(), id, req.toInput())
		if err != nil {
			if errors.Is(err, content.ErrValidation) {
				WriteError(w, http.StatusBadRequest, err.Error(), nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, fmt.Sprintf("could not update project #%s", id), err)
			return
		}

		RespondJSON(w, http.StatusOK, project)
		logger.Infof(r.Context(), "✅  Successfully updated project #%s", id)
	}
}

func DeleteProjectHandler(svc port.ProjectDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := ItemIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		if err := svc.DeleteProject(r.Context(), id); err != nil {
			WriteError(w, http.StatusInternalServerError, fmt.Sprintf("could not delete project #%s", id), err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
		logger.Infof(r.Context(), "✅  Successfully deleted project #%s", id)
	}
}
