package handler

import (
	"encoding/json"
	"net/http"

	"github.com/workhive/backend/internal/api/middleware"
	"github.com/workhive/backend/internal/api/response"
	"github.com/workhive/backend/internal/domain"
	"github.com/workhive/backend/internal/service"
	"github.com/workhive/backend/internal/validation"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup handles user registration
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req domain.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Fail(w, domain.NewError(http.StatusBadRequest, domain.CodeValidation, "Invalid request body"))
		return
	}

	if res := validation.ValidateSignup(req); !res.Valid() {
		response.Fail(w, domain.NewError(http.StatusBadRequest, domain.CodeValidation, "Invalid signup data").WithDetails(res.Errors))
		return
	}

	result, err := h.authService.Signup(r.Context(), validation.SanitizeSignup(req))
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, result, "User account created successfully")
}

// Login handles user authentication
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Fail(w, domain.NewError(http.StatusBadRequest, domain.CodeValidation, "Invalid request body"))
		return
	}

	if res := validation.ValidateLogin(req); !res.Valid() {
		response.Fail(w, domain.NewError(http.StatusBadRequest, domain.CodeValidation, "Invalid login data").WithDetails(res.Errors))
		return
	}

	result, err := h.authService.Login(r.Context(), validation.SanitizeLogin(req))
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, result, "Login successful")
}

// Logout revokes the caller's access token
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		response.Fail(w, domain.NewError(http.StatusUnauthorized, domain.CodeMissingToken, "Authorization token is required"))
		return
	}

	if err := h.authService.Logout(r.Context(), claims); err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, nil, "Logout successful")
}

// User returns the authenticated user and its profile
func (h *AuthHandler) User(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Fail(w, domain.NewError(http.StatusUnauthorized, domain.CodeMissingToken, "Authorization token is required"))
		return
	}

	result, err := h.authService.GetUser(r.Context(), userID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, result, "User data retrieved successfully")
}
