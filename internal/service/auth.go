package service

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/workhive/backend/internal/domain"
	"github.com/workhive/backend/internal/security"
)

// UserRepository is the persistence boundary for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// ProfileRepository is the persistence boundary for user profiles.
type ProfileRepository interface {
	Upsert(ctx context.Context, profile *domain.UserProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.UserProfile, error)
}

// TokenRevoker invalidates issued access tokens.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
}

// AuthService handles signup, login, logout and user lookup. Inputs are
// expected to be validated and sanitized by the caller.
type AuthService struct {
	users               UserRepository
	profiles            ProfileRepository
	jwtManager          *security.JWTManager
	revoker             TokenRevoker
	requireConfirmation bool
	debug               bool
	logger              zerolog.Logger
}

// NewAuthService creates a new auth service. debug controls whether upstream
// error text is echoed in error details.
func NewAuthService(
	users UserRepository,
	profiles ProfileRepository,
	jwtManager *security.JWTManager,
	revoker TokenRevoker,
	requireConfirmation bool,
	debug bool,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:               users,
		profiles:            profiles,
		jwtManager:          jwtManager,
		revoker:             revoker,
		requireConfirmation: requireConfirmation,
		debug:               debug,
		logger:              logger,
	}
}

func (s *AuthService) withDetail(apiErr *domain.Error, err error) *domain.Error {
	if s.debug {
		apiErr.Details = err.Error()
	}
	return apiErr
}

// Signup creates a new account and issues a session.
func (s *AuthService) Signup(ctx context.Context, req domain.SignupRequest) (*domain.AuthResponse, error) {
	exists, err := s.users.EmailExists(ctx, *req.Email)
	if err != nil {
		return nil, s.withDetail(domain.NewError(http.StatusInternalServerError, domain.CodeDatabaseError, "Failed to create user account"), err)
	}
	if exists {
		return nil, domain.NewError(http.StatusConflict, domain.CodeUserAlreadyExists, "A user with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, s.withDetail(domain.NewError(http.StatusInternalServerError, domain.CodeInternalError, "Failed to create user account"), err)
	}

	now := time.Now()
	user := &domain.User{
		ID:             uuid.New(),
		Email:          *req.Email,
		PasswordHash:   string(hash),
		EmailConfirmed: !s.requireConfirmation,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// The existence check above races with concurrent signups; the
		// unique constraint is authoritative.
		if isDuplicate(err) {
			return nil, domain.NewError(http.StatusConflict, domain.CodeUserAlreadyExists, "A user with this email already exists")
		}
		return nil, s.withDetail(domain.NewError(http.StatusBadRequest, domain.CodeSignupFailed, "Failed to create user account"), err)
	}

	// Profile creation must not fail the signup.
	if req.FullName != nil || req.BusinessName != nil {
		profile := &domain.UserProfile{
			ID:           user.ID,
			FullName:     req.FullName,
			BusinessName: req.BusinessName,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := s.profiles.Upsert(ctx, profile); err != nil {
			s.logger.Error().Err(err).Stringer("user_id", user.ID).Msg("failed to create user profile")
		}
	}

	session, err := s.issueSession(user)
	if err != nil {
		return nil, s.withDetail(domain.NewError(http.StatusInternalServerError, domain.CodeInternalError, "Failed to create session"), err)
	}

	return &domain.AuthResponse{User: *user, Session: *session}, nil
}

// Login authenticates a user and issues a session.
func (s *AuthService) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, *req.Email)
	if err != nil {
		return nil, s.withDetail(domain.NewError(http.StatusInternalServerError, domain.CodeDatabaseError, "Authentication failed"), err)
	}
	if user == nil {
		return nil, domain.NewError(http.StatusUnauthorized, domain.CodeInvalidCredentials, "Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.NewError(http.StatusUnauthorized, domain.CodeInvalidCredentials, "Invalid email or password")
	}

	if s.requireConfirmation && !user.EmailConfirmed {
		return nil, domain.NewError(http.StatusUnauthorized, domain.CodeEmailNotConfirmed, "Please confirm your email address before logging in")
	}

	session, err := s.issueSession(user)
	if err != nil {
		return nil, s.withDetail(domain.NewError(http.StatusUnauthorized, domain.CodeLoginFailed, "Authentication failed"), err)
	}

	return &domain.AuthResponse{User: *user, Session: *session}, nil
}

// Logout revokes the presented access token for the rest of its lifetime.
func (s *AuthService) Logout(ctx context.Context, claims *security.Claims) error {
	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.revoker.Revoke(ctx, claims.ID, ttl); err != nil {
		return s.withDetail(domain.NewError(http.StatusBadRequest, domain.CodeLogoutFailed, "Failed to logout"), err)
	}
	return nil
}

// GetUser returns the user with its profile, which may be absent.
func (s *AuthService) GetUser(ctx context.Context, userID uuid.UUID) (*domain.UserWithProfile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, s.withDetail(domain.NewError(http.StatusInternalServerError, domain.CodeDatabaseError, "Failed to fetch user"), err)
	}
	if user == nil {
		return nil, domain.NewError(http.StatusUnauthorized, domain.CodeInvalidToken, "Invalid or expired token")
	}

	profile, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		// A missing or unreadable profile never blocks the user lookup.
		s.logger.Warn().Err(err).Stringer("user_id", userID).Msg("failed to fetch user profile")
		profile = nil
	}

	return &domain.UserWithProfile{User: *user, Profile: profile}, nil
}

func (s *AuthService) issueSession(user *domain.User) (*domain.Session, error) {
	accessToken, refreshToken, expiresIn, err := s.jwtManager.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &domain.Session{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
		TokenType:    "bearer",
	}, nil
}
