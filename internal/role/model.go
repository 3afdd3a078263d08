package role

import (
	"fmt"
	"time"

	"systers-portal/internal/auth"
	"systers-portal/internal/community"
)

type Permission string

const (
	AddNews    Permission = "add_news"
	ChangeNews Permission = "change_news"
	DeleteNews Permission = "delete_news"
)

const (
	ContentManager  = "Content Manager"
	CommunityMember = "Community Member"
)

// grants lists the permissions each community role carries.
var grants = map[string][]Permission{
	ContentManager:  {AddNews, ChangeNews, DeleteNews},
	CommunityMember: nil,
}

func KnownRole(name string) bool {
	_, ok := grants[name]
	return ok
}

// rolesGranting returns the role names that carry perm.
func rolesGranting(perm Permission) []string {
	out := []string{}
	for name, perms := range grants {
		for _, p := range perms {
			if p == perm {
				out = append(out, name)
				break
			}
		}
	}
	return out
}

// GroupName is the display label of a role inside a community, e.g. "Foo: Content Manager".
func GroupName(communityName, roleName string) string {
	return fmt.Sprintf("%s: %s", communityName, roleName)
}

type CommunityRole struct {
	ID            uint                `gorm:"primaryKey;autoIncrement" json:"id"`
	CommunityID   int                 `gorm:"not null;uniqueIndex:idx_community_role_assignment" json:"community_id"`
	Community     community.Community `gorm:"foreignKey:CommunityID;constraint:OnDelete:CASCADE" json:"-"`
	SystersUserID int                 `gorm:"not null;uniqueIndex:idx_community_role_assignment;index" json:"systers_user_id"`
	SystersUser   auth.SystersUser    `gorm:"foreignKey:SystersUserID;constraint:OnDelete:CASCADE" json:"-"`
	Role          string              `gorm:"size:100;not null;uniqueIndex:idx_community_role_assignment" json:"role"`
	CreatedAt     time.Time           `json:"created_at"`
}

type AssignRoleRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Role     string `json:"role" form:"role" binding:"required"`
}

type RoleAssignment struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Group    string `json:"group"`
}

func (CommunityRole) TableName() string {
	return "community_roles"
}
