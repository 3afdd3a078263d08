package logs

import (
	"systers-portal/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, ls *LogService, checker middlewares.SuperuserChecker) {
	lc := &LogController{LogService: ls}

	logGroup := r.Group("/api/logs")
	logGroup.Use(middlewares.RequireAuth(), middlewares.RequireSuperuser(checker))
	{
		logGroup.GET("", lc.GetLogs)
	}
}
