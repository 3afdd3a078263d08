package community

import (
	"errors"
	"fmt"
	"net/http"

	"systers-portal/internal/logs"
	"systers-portal/internal/middlewares"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CommunityController struct {
	CommunityService CommunityServiceAPI
	Profiles         ProfileFinder
	LS               LogServicePort
}

func (cc *CommunityController) GetAllCommunities(c *gin.Context) {
	communities, err := cc.CommunityService.GetAllCommunities()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Communities fetched successfully",
		"communities": communities,
	})
}

func (cc *CommunityController) GetCommunity(c *gin.Context) {
	community, err := cc.CommunityService.GetCommunityBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Community not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"community": community})
}

func (cc *CommunityController) CreateCommunity(c *gin.Context) {
	var req CreateCommunityRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := middlewares.CurrentUserID(c)

	admin, err := cc.Profiles.GetProfileByUserID(userID)
	if req.AdminUsername != "" {
		admin, err = cc.Profiles.GetProfileByUsername(req.AdminUsername)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Community admin not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	created, err := cc.CommunityService.CreateCommunity(Community{
		Name:    req.Name,
		Slug:    req.Slug,
		Order:   req.Order,
		AdminID: admin.ID,
		Email:   req.Email,
		Website: req.Website,
	})
	if err != nil {
		if errors.Is(err, ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if cc.LS != nil {
		entry := logs.SystemLog{
			Level:     logs.LevelInfo,
			Service:   "community",
			Action:    "CREATE_COMMUNITY",
			Message:   fmt.Sprintf("Community %s created", created.Name),
			UserID:    &userID,
			Community: &created.Slug,
		}
		if err := cc.LS.Log(entry, req); err != nil {
			zap.L().Warn("failed to insert audit log", zap.String("action", entry.Action), zap.Error(err))
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Community created successfully",
		"community": created,
	})
}
