// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/expire-tracker/backend/internal/application/adapter"
	"github.com/expire-tracker/backend/internal/domain/entity"
	domainerror "github.com/expire-tracker/backend/internal/domain/error"
	"github.com/expire-tracker/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

// UserKey is the context key for the authenticated user entity.
const UserKey ContextKey = "user"

// AuthMiddleware provides JWT authentication middleware.
type AuthMiddleware struct {
	tokenService adapter.TokenService
	userRepo     adapter.UserRepository
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(tokenService adapter.TokenService, userRepo adapter.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
		userRepo:     userRepo,
	}
}

// Authenticate returns a Gin middleware handler that enforces JWT
// authentication. The full user is loaded per request so category scoping
// always reflects the current assignments rather than the token's snapshot.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Authorization header is required",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid authorization header format",
				Code:  string(domainerror.ErrCodeInvalidToken),
			})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Token is required",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		claims, err := m.tokenService.ValidateAccessToken(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid or expired token",
				Code:  string(domainerror.ErrCodeInvalidToken),
			})
			c.Abort()
			return
		}

		user, err := m.userRepo.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "User no longer exists",
				Code:  string(domainerror.ErrCodeInvalidToken),
			})
			c.Abort()
			return
		}

		c.Set(string(UserKey), user)
		c.Next()
	}
}

// AdminRequired returns a Gin middleware handler that rejects non-admin
// users. Must run after Authenticate.
func (m *AuthMiddleware) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "User not authenticated",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}
		if !user.IsAdmin() {
			c.JSON(http.StatusForbidden, dto.ErrorResponse{
				Error: "Admin role required",
				Code:  string(domainerror.ErrCodeForbidden),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserFromContext extracts the authenticated user from the Gin context.
func GetUserFromContext(c *gin.Context) (*entity.User, bool) {
	value, exists := c.Get(string(UserKey))
	if !exists {
		return nil, false
	}
	user, ok := value.(*entity.User)
	return user, ok
}
