package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/workhive/backend/internal/api/middleware"
	"github.com/workhive/backend/internal/api/response"
	"github.com/workhive/backend/internal/domain"
	"github.com/workhive/backend/internal/service"
)

// ProjectHandler handles project endpoints
type ProjectHandler struct {
	projectService *service.ProjectService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// List handles listing the caller's projects, optionally filtered by client.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Fail(w, domain.NewError(http.StatusUnauthorized, domain.CodeUnauthorized, "Authentication required"))
		return
	}

	q := r.URL.Query()
	params := domain.ListProjectsParams{
		Page:  queryInt(q.Get("page"), 1),
		Limit: queryInt(q.Get("limit"), 10),
	}

	if raw := q.Get("clientId"); raw != "" {
		clientID, err := uuid.Parse(raw)
		if err != nil {
			response.Fail(w, domain.NewError(http.StatusBadRequest, domain.CodeInvalidID, "Invalid client ID format"))
			return
		}
		params.ClientID = &clientID
	}

	list, err := h.projectService.List(r.Context(), userID, params)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, list, "")
}
