package auth

import (
	"systers-portal/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, ac *AuthController) {
	userGroup := r.Group("/api/user")
	{
		userGroup.POST("/signup", ac.SignUp)
		userGroup.POST("/login", ac.Login)
		userGroup.POST("/logout", ac.Logout)
		userGroup.GET("/me", middlewares.RequireAuth(), ac.Me)
	}
}
