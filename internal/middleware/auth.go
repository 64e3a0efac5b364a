package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cookingcamp/cooking-camp-api/internal/models"
	"github.com/cookingcamp/cooking-camp-api/internal/utils"
)

// EmailKey is the gin context key holding the verified token email.
const EmailKey = "email"

// TokenGuard verifies the bearer token and stores the caller's email
// in the request context.
func TokenGuard(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": true, "message": "unauthorized access"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateJWT(tokenString, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": true, "message": "unauthorized access"})
			return
		}

		c.Set(EmailKey, claims.Email)
		c.Next()
	}
}

// UserFinder is the one store read the role guard needs.
type UserFinder interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// RequireRole looks the verified email up in the users collection and
// aborts with 403 unless the stored role matches. Must run after
// TokenGuard. The chain halts on forbidden; the wrapped handler never
// executes.
func RequireRole(users UserFinder, role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(EmailKey)

		user, err := users.FindUserByEmail(c.Request.Context(), email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": true, "message": "failed to look up user"})
			return
		}
		if user == nil || user.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": true, "message": "Forbidden access"})
			return
		}

		c.Next()
	}
}
