// Package validation sanitizes and validates the client and auth payloads
// accepted at the API boundary. All functions are pure; a validation pass
// returns the full ordered list of field errors, not just the first one.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/workhive/backend/internal/domain"
)

var (
	// Intentionally permissive, not full RFC 5322: something@something.something
	// with no whitespace or extra @ in any part.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// After separators are stripped: optional +, first digit 1-9, up to
	// fifteen further digits.
	phoneRegex = regexp.MustCompile(`^\+?[1-9][0-9]{0,15}$`)

	phoneSeparators = regexp.MustCompile(`[\s\-()]`)

	letterRegex = regexp.MustCompile(`[A-Za-z]`)
	digitRegex  = regexp.MustCompile(`[0-9]`)
)

// FieldError names an offending field and carries a human-readable message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result is the outcome of a validation pass.
type Result struct {
	Errors []FieldError
}

// Valid reports whether the validated payload had no field errors.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

func (r *Result) addError(field, message string) {
	r.Errors = append(r.Errors, FieldError{Field: field, Message: message})
}

// Sanitize strips embedded NUL bytes and trims surrounding whitespace.
// Absent and empty-after-trim values both come back as nil, so "clear this
// field" collapses into "field not provided" for optional fields.
func Sanitize(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(strings.ReplaceAll(*s, "\x00", ""))
	if v == "" {
		return nil
	}
	return &v
}

// IsValidEmail reports whether s looks like local@domain.tld.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// IsValidPhone strips spaces, hyphens and parentheses, then checks for an
// international-style digit sequence. Leading zeroes are rejected.
func IsValidPhone(s string) bool {
	return phoneRegex.MatchString(phoneSeparators.ReplaceAllString(s, ""))
}

// IsValidPassword requires at least 8 characters with at least one letter
// and one digit.
func IsValidPassword(s string) bool {
	return len(s) >= 8 && letterRegex.MatchString(s) && digitRegex.MatchString(s)
}

// ValidateCreateClient checks a client create payload. Name is required and
// bounded to [2,255] characters; email, phone and address are optional but
// format- or length-checked when present.
func ValidateCreateClient(req domain.CreateClientRequest) Result {
	var res Result

	name := Sanitize(req.Name)
	email := Sanitize(req.Email)
	phone := Sanitize(req.Phone)
	address := Sanitize(req.Address)

	switch {
	case name == nil:
		res.addError("name", "Client name is required")
	case utf8.RuneCountInString(*name) < 2:
		res.addError("name", "Client name must be at least 2 characters long")
	case utf8.RuneCountInString(*name) > 255:
		res.addError("name", "Client name must be less than 255 characters")
	}

	if email != nil && !IsValidEmail(*email) {
		res.addError("email", "Invalid email format")
	}

	if phone != nil && !IsValidPhone(*phone) {
		res.addError("phone", "Invalid phone number format")
	}

	if address != nil && utf8.RuneCountInString(*address) > 1000 {
		res.addError("address", "Address must be less than 1000 characters")
	}

	return res
}

// ValidateUpdateClient checks a partial client update. No field is
// individually required, but at least one must survive sanitization. An
// explicitly empty string counts as "not provided", so it neither fails
// validation nor satisfies the at-least-one-field rule.
func ValidateUpdateClient(req domain.UpdateClientRequest) Result {
	var res Result

	name := Sanitize(req.Name)
	email := Sanitize(req.Email)
	phone := Sanitize(req.Phone)
	address := Sanitize(req.Address)

	if name == nil && email == nil && phone == nil && address == nil {
		res.addError("general", "At least one field must be provided for update")
	}

	if name != nil {
		if utf8.RuneCountInString(*name) < 2 {
			res.addError("name", "Client name must be at least 2 characters long")
		} else if utf8.RuneCountInString(*name) > 255 {
			res.addError("name", "Client name must be less than 255 characters")
		}
	}

	if email != nil && !IsValidEmail(*email) {
		res.addError("email", "Invalid email format")
	}

	if phone != nil && !IsValidPhone(*phone) {
		res.addError("phone", "Invalid phone number format")
	}

	if address != nil && utf8.RuneCountInString(*address) > 1000 {
		res.addError("address", "Address must be less than 1000 characters")
	}

	return res
}

// ValidateSignup checks a signup payload: required well-formed email,
// strength-checked password, optional bounded name fields.
func ValidateSignup(req domain.SignupRequest) Result {
	var res Result

	email := Sanitize(req.Email)
	fullName := Sanitize(req.FullName)
	businessName := Sanitize(req.BusinessName)

	if email == nil {
		res.addError("email", "Email is required")
	} else if !IsValidEmail(*email) {
		res.addError("email", "Invalid email format")
	}

	if req.Password == "" {
		res.addError("password", "Password is required")
	} else if !IsValidPassword(req.Password) {
		res.addError("password", "Password must be at least 8 characters long and contain at least one letter and one number")
	}

	if fullName != nil && utf8.RuneCountInString(*fullName) > 255 {
		res.addError("fullName", "Full name must be less than 255 characters")
	}

	if businessName != nil && utf8.RuneCountInString(*businessName) > 255 {
		res.addError("businessName", "Business name must be less than 255 characters")
	}

	return res
}

// ValidateLogin checks a login payload. The password only has to be
// non-empty: strength rules must not lock out accounts created under older
// policies.
func ValidateLogin(req domain.LoginRequest) Result {
	var res Result

	email := Sanitize(req.Email)

	if email == nil {
		res.addError("email", "Email is required")
	} else if !IsValidEmail(*email) {
		res.addError("email", "Invalid email format")
	}

	if req.Password == "" {
		res.addError("password", "Password is required")
	}

	return res
}

// SanitizeClientData produces the sanitized client fields used for storage.
func SanitizeClientData(name, email, phone, address *string) domain.ClientData {
	return domain.ClientData{
		Name:    Sanitize(name),
		Email:   Sanitize(email),
		Phone:   Sanitize(phone),
		Address: Sanitize(address),
	}
}

// SanitizeSignup returns the signup payload with text fields sanitized.
// The password passes through untouched: surrounding whitespace may be
// intentional.
func SanitizeSignup(req domain.SignupRequest) domain.SignupRequest {
	return domain.SignupRequest{
		Email:        Sanitize(req.Email),
		Password:     req.Password,
		FullName:     Sanitize(req.FullName),
		BusinessName: Sanitize(req.BusinessName),
	}
}

// SanitizeLogin returns the login payload with the email sanitized.
func SanitizeLogin(req domain.LoginRequest) domain.LoginRequest {
	return domain.LoginRequest{
		Email:    Sanitize(req.Email),
		Password: req.Password,
	}
}
