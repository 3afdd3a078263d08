package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"systers-portal/internal/logs"
	"systers-portal/internal/middlewares"
	"systers-portal/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthController struct {
	AuthService   AuthServicePort
	LS            LogServicePort
	Sessions      session.Store
	Secret        string
	SecureCookies bool
}

func (ac *AuthController) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ac.AuthService.CreateUser(req.Username, req.Email, req.Password, false)
	if err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ac.audit(logs.SystemLog{
		Level:   logs.LevelInfo,
		Service: "auth",
		Action:  "SIGNUP",
		Message: fmt.Sprintf("Account created for %s", user.Username),
		UserID:  &user.ID,
	}, gin.H{"username": user.Username, "email": user.Email})

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ac.AuthService.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ttl := session.AccessTTL
	if req.RememberMe {
		ttl = session.RememberTTL
	}

	token, err := session.SignAccessToken(ac.Secret, user.ID, ttl)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := ac.Sessions.Save(c.Request.Context(), user.ID, token, ttl); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	ac.setAccessCookie(c, token, ttl)

	ac.audit(logs.SystemLog{
		Level:   logs.LevelInfo,
		Service: "auth",
		Action:  "LOGIN",
		Message: fmt.Sprintf("User %s logged in", user.Username),
		UserID:  &user.ID,
	}, gin.H{"remember_me": req.RememberMe})

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data": gin.H{
			"id":           user.ID,
			"username":     user.Username,
			"is_superuser": user.IsSuperuser,
		},
	})
}

func (ac *AuthController) Logout(c *gin.Context) {
	if userID, ok := middlewares.CurrentUserID(c); ok {
		if err := ac.Sessions.Revoke(c.Request.Context(), userID); err != nil {
			zap.L().Warn("revoke session", zap.Int("user_id", userID), zap.Error(err))
		}
	}

	ac.setAccessCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (ac *AuthController) Me(c *gin.Context) {
	userID, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication credentials were not provided"})
		return
	}

	profile, err := ac.AuthService.GetProfileByUserID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": MeResponse{
			ID:          profile.User.ID,
			Username:    profile.User.Username,
			Email:       profile.User.Email,
			IsSuperuser: profile.User.IsSuperuser,
			ProfileID:   profile.ID,
			Country:     profile.Country,
		},
	})
}

func (ac *AuthController) setAccessCookie(c *gin.Context, value string, ttl time.Duration) {
	maxAge := int(ttl.Seconds())
	if ttl < 0 {
		maxAge = -1
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     session.AccessCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   ac.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (ac *AuthController) audit(entry logs.SystemLog, payload any) {
	if ac.LS == nil {
		return
	}
	if err := ac.LS.Log(entry, payload); err != nil {
		zap.L().Warn("failed to insert audit log", zap.String("action", entry.Action), zap.Error(err))
	}
}
