package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/workhive/backend/internal/domain"
)

// Body is the uniform response envelope shared by every endpoint.
type Body struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Message string     `json:"message,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// ErrorBody is the error half of the envelope. Code is stable; Message is
// for humans.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func write(w http.ResponseWriter, status int, body Body) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// JSON sends a success envelope with the given status.
func JSON(w http.ResponseWriter, status int, data any, message string) {
	write(w, status, Body{Success: true, Data: data, Message: message})
}

// OK sends a 200 success envelope.
func OK(w http.ResponseWriter, data any, message string) {
	JSON(w, http.StatusOK, data, message)
}

// Created sends a 201 success envelope.
func Created(w http.ResponseWriter, data any, message string) {
	JSON(w, http.StatusCreated, data, message)
}

// Fail sends the failure envelope for a tagged API error.
func Fail(w http.ResponseWriter, err *domain.Error) {
	write(w, err.Status, Body{
		Success: false,
		Error: &ErrorBody{
			Code:    err.Code,
			Message: err.Message,
			Details: err.Details,
		},
	})
}

// FromError translates any error into the failure envelope. Errors that are
// not tagged API errors become a generic 500.
func FromError(w http.ResponseWriter, err error) {
	var apiErr *domain.Error
	if errors.As(err, &apiErr) {
		Fail(w, apiErr)
		return
	}
	Fail(w, domain.NewError(http.StatusInternalServerError, domain.CodeInternalError, "Internal server error"))
}
