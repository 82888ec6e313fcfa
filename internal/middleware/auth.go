package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/nenexus/nexus-backend/internal/models"
	"github.com/nenexus/nexus-backend/internal/security"
)

const contextUserKey = "currentUser"

type AuthMiddleware struct {
	tokens *security.TokenProvider
	db     *gorm.DB
}

func NewAuthMiddleware(tokens *security.TokenProvider, db *gorm.DB) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, db: db}
}

// Authenticate resolves the bearer token to an active user, touches
// last_login, and attaches the user to the request context. Identity is
// re-resolved on every request.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header"})
			return
		}
		claims, err := m.tokens.Parse(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		var user models.User
		err = m.db.Where("id = ? AND status = ?", claims.UserID, models.UserActive).First(&user).Error
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found or inactive"})
			return
		}

		now := time.Now()
		if err := m.db.Model(&user).UpdateColumn("last_login", now).Error; err != nil {
			logrus.WithError(err).WithField("user_id", user.ID).Warn("failed to touch last_login")
		}
		user.LastLogin = &now

		c.Set(contextUserKey, &user)
		c.Next()
	}
}

// RequireRole rejects authenticated callers whose role is not in the
// allowed set.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	}
}

func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(contextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
