package middlewares

import (
	"net/http"

	"systers-portal/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const userIDKey = "userID"

// AuthMiddleware identifies the requester from the access_token cookie.
// It never rejects a request: anonymous requests simply carry no user id.
func AuthMiddleware(secret string, store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		accessToken, err := c.Cookie(session.AccessCookie)
		if err != nil || accessToken == "" {
			c.Next()
			return
		}

		userID, err := session.ParseAccessToken(secret, accessToken)
		if err != nil {
			c.Next()
			return
		}

		active, err := store.Active(c.Request.Context(), userID, accessToken)
		if err != nil {
			zap.L().Warn("session lookup failed", zap.Int("user_id", userID), zap.Error(err))
			c.Next()
			return
		}
		if !active {
			c.Next()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// CurrentUserID returns the id set by AuthMiddleware.
func CurrentUserID(c *gin.Context) (int, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUserID(c); !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication credentials were not provided"})
			c.Abort()
			return
		}
		c.Next()
	}
}

type SuperuserChecker interface {
	IsSuperuser(userID int) (bool, error)
}

// RequireSuperuser must run after RequireAuth.
func RequireSuperuser(checker SuperuserChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication credentials were not provided"})
			c.Abort()
			return
		}

		isSuper, err := checker.IsSuperuser(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		if !isSuper {
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to perform this action"})
			c.Abort()
			return
		}
		c.Next()
	}
}
