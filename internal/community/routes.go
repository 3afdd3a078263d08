package community

import (
	"systers-portal/internal/middlewares"
	"systers-portal/internal/util"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cc *CommunityController, checker middlewares.SuperuserChecker) {
	util.RegisterValidators()

	communityGroup := r.Group("/api/communities")
	{
		communityGroup.GET("", cc.GetAllCommunities)
		communityGroup.GET("/:slug", cc.GetCommunity)
		communityGroup.POST("", middlewares.RequireAuth(), middlewares.RequireSuperuser(checker), cc.CreateCommunity)
	}
}
