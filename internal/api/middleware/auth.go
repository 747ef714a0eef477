package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/workhive/backend/internal/api/response"
	"github.com/workhive/backend/internal/domain"
	"github.com/workhive/backend/internal/security"
)

type contextKey string

const (
	userIDKey    contextKey = "userID"
	userEmailKey contextKey = "userEmail"
	claimsKey    contextKey = "claims"
)

// TokenRevoker checks whether an access token has been revoked by logout.
type TokenRevoker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AuthMiddleware handles bearer token authentication
type AuthMiddleware struct {
	jwtManager *security.JWTManager
	revoked    TokenRevoker
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(jwtManager *security.JWTManager, revoked TokenRevoker) *AuthMiddleware {
	return &AuthMiddleware{jwtManager: jwtManager, revoked: revoked}
}

// Authenticate validates the bearer token and puts the caller's identity
// into the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Fail(w, domain.NewError(http.StatusUnauthorized, domain.CodeMissingToken, "Authorization token is required"))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
			response.Fail(w, domain.NewError(http.StatusUnauthorized, domain.CodeMissingToken, "Authorization token is required"))
			return
		}

		claims, err := m.jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Fail(w, domain.NewError(http.StatusUnauthorized, domain.CodeInvalidToken, "Invalid or expired token"))
			return
		}

		// A revocation store outage must not take down every authenticated
		// route; the token still carries a valid signature.
		if revoked, err := m.revoked.IsRevoked(r.Context(), claims.ID); err == nil && revoked {
			response.Fail(w, domain.NewError(http.StatusUnauthorized, domain.CodeInvalidToken, "Invalid or expired token"))
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
		ctx = context.WithValue(ctx, userEmailKey, claims.Email)
		ctx = context.WithValue(ctx, claimsKey, claims)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID gets the user ID from context
func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	return userID, ok
}

// GetUserEmail gets the user email from context
func GetUserEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(userEmailKey).(string)
	return email, ok
}

// GetClaims gets the full token claims from context
func GetClaims(ctx context.Context) (*security.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*security.Claims)
	return claims, ok
}
