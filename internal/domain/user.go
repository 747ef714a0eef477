package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	EmailConfirmed bool      `json:"email_confirmed"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// UserProfile holds the optional business details attached to a user.
type UserProfile struct {
	ID           uuid.UUID `json:"id"`
	FullName     *string   `json:"full_name,omitempty"`
	BusinessName *string   `json:"business_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SignupRequest is the raw signup payload.
type SignupRequest struct {
	Email        *string `json:"email"`
	Password     string  `json:"password"`
	FullName     *string `json:"fullName"`
	BusinessName *string `json:"businessName"`
}

// LoginRequest is the raw login payload.
type LoginRequest struct {
	Email    *string `json:"email"`
	Password string  `json:"password"`
}

// Session is the token pair issued on signup and login.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

// AuthResponse pairs the authenticated user with its session.
type AuthResponse struct {
	User    User    `json:"user"`
	Session Session `json:"session"`
}

// UserWithProfile pairs a user with its profile, which may be absent.
type UserWithProfile struct {
	User    User         `json:"user"`
	Profile *UserProfile `json:"profile"`
}
