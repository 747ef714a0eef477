package domain

import "errors"

// Error codes returned in the API error envelope. Callers branch on these,
// never on the message text.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeInvalidID          = "INVALID_ID"
	CodeMissingToken       = "MISSING_TOKEN"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeEmailNotConfirmed  = "EMAIL_NOT_CONFIRMED"
	CodeUserAlreadyExists  = "USER_ALREADY_EXISTS"
	CodeSignupFailed       = "SIGNUP_FAILED"
	CodeLoginFailed        = "LOGIN_FAILED"
	CodeLogoutFailed       = "LOGOUT_FAILED"
	CodeClientNotFound     = "CLIENT_NOT_FOUND"
	CodeDuplicateClient    = "DUPLICATE_CLIENT"
	CodeClientHasProjects  = "CLIENT_HAS_PROJECTS"
	CodeDatabaseError      = "DATABASE_ERROR"
	CodeInternalError      = "INTERNAL_ERROR"
)

// ErrDuplicate is returned by repositories when an insert hits a unique
// constraint. Services translate it into the appropriate conflict error.
var ErrDuplicate = errors.New("duplicate record")

// Error is a tagged API error: HTTP status, stable code, human-readable
// message and an optional structured detail payload.
type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

// NewError creates an API error with the given status, code and message.
func NewError(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

// WithDetails attaches a structured detail payload and returns the error.
func (e *Error) WithDetails(details any) *Error {
	e.Details = details
	return e
}
