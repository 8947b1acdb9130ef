package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"swift-parcel.backend/internal/domain/entities"
	domainerrors "swift-parcel.backend/internal/domain/errors"
	"swift-parcel.backend/internal/domain/repositories"
	"swift-parcel.backend/pkg/jwt"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// UserEmailKey is the context key for the verified email claim
	UserEmailKey = "userEmail"
	// UserRoleKey is the context key for the stored role
	UserRoleKey = "userRole"
)

// AuthMiddleware is the identity gate: it verifies the bearer token and
// resolves the email claim to the stored role. A missing or bad credential
// aborts with 401 before any role lookup touches the store.
func AuthMiddleware(verifier *jwt.Verifier, userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "authorization header is required",
			})
			return
		}
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "invalid authorization format, use: Bearer <token>",
			})
			return
		}

		claims, err := verifier.Verify(strings.TrimPrefix(authHeader, BearerPrefix))
		if err != nil {
			message := "invalid token"
			if errors.Is(err, jwt.ErrExpiredToken) {
				message = "token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": message,
			})
			return
		}

		email := strings.ToLower(claims.Email)
		role := entities.UserRoleUser
		user, err := userRepo.GetByEmail(c.Request.Context(), email)
		switch {
		case err == nil:
			role = user.Role
		case errors.Is(err, domainerrors.ErrNotFound):
			// Verified identity without a stored user keeps the default role.
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "role lookup failed",
			})
			return
		}

		c.Set(UserEmailKey, email)
		c.Set(UserRoleKey, role)
		c.Next()
	}
}

// GetUserEmail gets the verified email claim from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(UserEmailKey)
	if !exists {
		return "", false
	}
	return email.(string), true
}

// GetUserRole gets the resolved role from context
func GetUserRole(c *gin.Context) (entities.UserRole, bool) {
	role, exists := c.Get(UserRoleKey)
	if !exists {
		return "", false
	}
	return role.(entities.UserRole), true
}

// RequireRole creates a middleware that requires one of the given roles.
// A resolved identity with an insufficient role is 403, distinct from the
// 401 the identity gate sends when no usable credential is present.
func RequireRole(roles ...entities.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := GetUserRole(c)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "authentication required",
			})
			return
		}

		for _, role := range roles {
			if userRole == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "insufficient permissions",
		})
	}
}

// RequireAdmin creates a middleware that requires the admin role
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(entities.UserRoleAdmin)
}
