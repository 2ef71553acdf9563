// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AminataF33/budgetappback/internal/application/adapter"
	domainerror "github.com/AminataF33/budgetappback/internal/domain/error"
	"github.com/AminataF33/budgetappback/internal/integration/entrypoint/dto"
)

// userIDContextKey is where Authenticate stores the resolved owner identity
// for downstream handlers.
const userIDContextKey = "auth_user_id"

// AuthMiddleware resolves the owner identity from a bearer access token.
type AuthMiddleware struct {
	tokenService adapter.TokenService
}

func NewAuthMiddleware(tokenService adapter.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate rejects the request with 401 unless it carries a valid
// Bearer access token, and stores the token's user ID in the gin context.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		switch {
		case header == "":
			reject(c, "Authorization header is required", domainerror.ErrCodeMissingToken)
			return
		case !found:
			reject(c, "Invalid authorization header format", domainerror.ErrCodeInvalidToken)
			return
		case token == "":
			reject(c, "Token is required", domainerror.ErrCodeMissingToken)
			return
		}

		claims, err := m.tokenService.ValidateAccessToken(c.Request.Context(), token)
		if err != nil {
			reject(c, "Invalid or expired token", domainerror.ErrCodeInvalidToken)
			return
		}

		c.Set(userIDContextKey, claims.UserID)
		c.Next()
	}
}

func reject(c *gin.Context, message string, code domainerror.AuthErrorCode) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: message,
		Code:  string(code),
	})
}

// GetUserIDFromContext returns the authenticated user's ID set by
// Authenticate, or false when the request never passed through it.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(userIDContextKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}
