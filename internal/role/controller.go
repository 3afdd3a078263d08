package role

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"systers-portal/internal/auth"
	"systers-portal/internal/community"
	"systers-portal/internal/logs"
	"systers-portal/internal/middlewares"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type RoleController struct {
	RoleService RoleServiceAPI
	Communities CommunityFinder
	Profiles    ProfileFinder
	LS          LogServicePort
}

// managedCommunity resolves :slug and checks the requester may manage its
// roles. It writes the error response itself and returns ok=false on failure.
func (rc *RoleController) managedCommunity(c *gin.Context) (*community.Community, *auth.SystersUser, bool) {
	comm, err := rc.Communities.GetCommunityBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Community not found"})
			return nil, nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, nil, false
	}

	userID, _ := middlewares.CurrentUserID(c)
	profile, err := rc.Profiles.GetProfileByUserID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return nil, nil, false
	}

	if !profile.User.IsSuperuser && comm.AdminID != profile.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the community admin can manage roles"})
		return nil, nil, false
	}
	return comm, profile, true
}

func (rc *RoleController) GetCommunityRoles(c *gin.Context) {
	comm, _, ok := rc.managedCommunity(c)
	if !ok {
		return
	}

	roles, err := rc.RoleService.GetRolesByCommunity(comm)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Roles fetched successfully",
		"roles":   roles,
	})
}

func (rc *RoleController) AssignRole(c *gin.Context) {
	var req AssignRoleRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comm, actor, ok := rc.managedCommunity(c)
	if !ok {
		return
	}

	target, err := rc.Profiles.GetProfileByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := rc.RoleService.AssignRole(comm.ID, target.ID, req.Role); err != nil {
		if errors.Is(err, ErrUnknownRole) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	rc.audit(actor, comm, "ASSIGN_ROLE",
		fmt.Sprintf("%s added to %s", target.User.Username, GroupName(comm.Name, req.Role)), req)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Role assigned successfully",
		"group":   GroupName(comm.Name, req.Role),
	})
}

func (rc *RoleController) RevokeRole(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role assignment id"})
		return
	}

	comm, actor, ok := rc.managedCommunity(c)
	if !ok {
		return
	}

	if err := rc.RoleService.RevokeRole(comm.ID, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Role assignment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	rc.audit(actor, comm, "REVOKE_ROLE", fmt.Sprintf("Role assignment %d revoked", id), gin.H{"id": id})

	c.JSON(http.StatusOK, gin.H{"message": "Role revoked successfully"})
}

func (rc *RoleController) GetMyRoles(c *gin.Context) {
	userID, _ := middlewares.CurrentUserID(c)
	profile, err := rc.Profiles.GetProfileByUserID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	roles, err := rc.RoleService.GetRolesByProfile(profile.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Roles fetched successfully",
		"roles":   roles,
	})
}

func (rc *RoleController) audit(actor *auth.SystersUser, comm *community.Community, action, msg string, payload any) {
	if rc.LS == nil {
		return
	}
	entry := logs.SystemLog{
		Level:     logs.LevelInfo,
		Service:   "role",
		Action:    action,
		Message:   msg,
		UserID:    &actor.UserID,
		Community: &comm.Slug,
	}
	if err := rc.LS.Log(entry, payload); err != nil {
		zap.L().Warn("failed to insert audit log", zap.String("action", action), zap.Error(err))
	}
}
