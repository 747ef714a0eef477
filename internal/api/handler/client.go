package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/workhive/backend/internal/api/middleware"
	"github.com/workhive/backend/internal/api/response"
	"github.com/workhive/backend/internal/domain"
	"github.com/workhive/backend/internal/service"
	"github.com/workhive/backend/internal/validation"
)

// ClientHandler handles client CRUD endpoints
type ClientHandler struct {
	clientService *service.ClientService
}

// NewClientHandler creates a new client handler
func NewClientHandler(clientService *service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// List handles listing the caller's clients with pagination, sorting and
// search.
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Fail(w, domain.NewError(http.StatusUnauthorized, domain.CodeUnauthorized, "Authentication required"))
		return
	}

	q := r.URL.Query()
	params := domain.ListClientsParams{
		Page:      queryInt(q.Get("page"), 1),
		Limit:     queryInt(q.Get("limit"), 10),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
		Search:    q.Get("search"),
	}

	list, err := h.clientService.List(r.Context(), userID, params)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, list, "")
}

// Create handles client creation
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Fail(w, domain.NewError(http.StatusUnauthorized, domain.CodeUnauthorized, "Authentication required"))
		return
	}

	var req domain.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Fail(w, domain.NewError(http.StatusBadRequest, domain.CodeValidation, "Invalid request body"))
		return
	}

	if res := validation.ValidateCreateClient(req); !res.Valid() {
		response.Fail(w, domain.NewError(http.StatusBadRequest, domain.CodeValidation, "Invalid client data").WithDetails(res.Errors))
		return
	}

	data := validation.SanitizeClientData(req.Name, req.Email, req.Phone, req.Address)
	client, err := h.clientService.Create(r.Context(), userID, data)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, client, "Client created successfully")
}

// Update handles partial client updates
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Fail(w, domain.NewError(http.StatusUnauthorized, domain.CodeUnauthorized, "Authentication required"))
		return
	}

	clientID, err := uuid.Parse(chi.URLParam(r, "clientID"))
	if err != nil {
		response.Fail(w, domain.NewError(http.StatusBadRequest, domain.CodeInvalidID, "Invalid client ID format"))
		return
	}

	var req domain.UpdateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Fail(w, domain.NewError(http.StatusBadRequest, domain.CodeValidation, "Invalid request body"))
		return
	}

	if res := validation.ValidateUpdateClient(req); !res.Valid() {
		response.Fail(w, domain.NewError(http.StatusBadRequest, domain.CodeValidation, "Invalid client data").WithDetails(res.Errors))
		return
	}

	data := validation.SanitizeClientData(req.Name, req.Email, req.Phone, req.Address)
	client, err := h.clientService.Update(r.Context(), userID, clientID, data)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, client, "Client updated successfully")
}

// Delete handles client deletion
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Fail(w, domain.NewError(http.StatusUnauthorized, domain.CodeUnauthorized, "Authentication required"))
		return
	}

	clientID, err := uuid.Parse(chi.URLParam(r, "clientID"))
	if err != nil {
		response.Fail(w, domain.NewError(http.StatusBadRequest, domain.CodeInvalidID, "Invalid client ID format"))
		return
	}

	deleted, err := h.clientService.Delete(r.Context(), userID, clientID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, deleted, "Client deleted successfully")
}

// queryInt parses a positive integer query parameter, falling back to a
// default on absence or garbage.
func queryInt(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
