package middleware

import (
	"strings"

	"github.com/VISHALLkandharee/Room-Finder/internal/dto/response"
	"github.com/VISHALLkandharee/Room-Finder/internal/model"
	"github.com/VISHALLkandharee/Room-Finder/internal/pkg/utils"
	"github.com/gin-gonic/gin"
)

const (
	AuthorizationHeader = "Authorization"
	BearerPrefix        = "Bearer "
	UserIDKey           = "user_id"
	UsernameKey         = "username"
	IsAdminKey          = "is_admin"
	ClaimsKey           = "claims"
)

// Auth creates a JWT authentication middleware
func Auth(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			response.Unauthorized(c, "missing authentication token")
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			response.Unauthorized(c, "invalid authorization format")
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, BearerPrefix)
		if token == "" {
			response.Unauthorized(c, "token must not be empty")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(token)
		if err != nil {
			if err == utils.ErrExpiredToken {
				response.Unauthorized(c, "token has expired")
			} else {
				response.Unauthorized(c, "invalid token")
			}
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UsernameKey, claims.Username)
		c.Set(IsAdminKey, claims.IsAdmin)
		c.Set(ClaimsKey, claims)

		c.Next()
	}
}

// RequireLister rejects callers without the lister role. Must run after Auth.
func RequireLister() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, exists := c.Get(IsAdminKey)
		if !exists || !isAdmin.(bool) {
			response.Forbidden(c, "only lister accounts can do this")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID retrieves user ID from context
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return ""
	}
	return userID.(string)
}

// GetUsername retrieves username from context
func GetUsername(c *gin.Context) string {
	username, exists := c.Get(UsernameKey)
	if !exists {
		return ""
	}
	return username.(string)
}

// GetIdentity builds the caller identity from the validated claims.
// Anonymous requests yield a zero identity.
func GetIdentity(c *gin.Context) model.Identity {
	identity := model.Identity{UserID: GetUserID(c)}
	if isAdmin, exists := c.Get(IsAdminKey); exists {
		identity.IsAdmin = isAdmin.(bool)
	}
	return identity
}

// GetClaims retrieves JWT claims from context
func GetClaims(c *gin.Context) *utils.Claims {
	claims, exists := c.Get(ClaimsKey)
	if !exists {
		return nil
	}
	return claims.(*utils.Claims)
}

// IsAuthenticated checks if user is authenticated
func IsAuthenticated(c *gin.Context) bool {
	_, exists := c.Get(UserIDKey)
	return exists
}
