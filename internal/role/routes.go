package role

import (
	"systers-portal/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, rc *RoleController) {
	roleGroup := r.Group("/api/communities/:slug/roles")
	roleGroup.Use(middlewares.RequireAuth())
	{
		roleGroup.GET("", rc.GetCommunityRoles)
		roleGroup.POST("", rc.AssignRole)
		roleGroup.DELETE("/:id", rc.RevokeRole)
	}

	r.GET("/api/roles/me", middlewares.RequireAuth(), rc.GetMyRoles)
}
