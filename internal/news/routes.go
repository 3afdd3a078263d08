package news

import (
	"systers-portal/internal/util"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, nc *NewsController) {
	util.RegisterValidators()

	newsGroup := r.Group("/communities/:slug/news")
	{
		newsGroup.GET("/", nc.ListNews)
		newsGroup.GET("/add/", nc.AddNewsForm)
		newsGroup.POST("/add/", nc.AddNews)
		newsGroup.GET("/export/", nc.ExportNews)
		newsGroup.GET("/:news_slug/", nc.GetNews)
		newsGroup.GET("/:news_slug/edit/", nc.EditNewsForm)
		newsGroup.POST("/:news_slug/edit/", nc.EditNews)
		newsGroup.GET("/:news_slug/delete/", nc.DeleteNewsForm)
		newsGroup.POST("/:news_slug/delete/", nc.DeleteNews)
	}
}
