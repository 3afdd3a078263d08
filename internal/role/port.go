package role

import (
	"systers-portal/internal/auth"
	"systers-portal/internal/community"
	"systers-portal/internal/logs"
)

type RoleServiceAPI interface {
	Can(profile *auth.SystersUser, comm *community.Community, perm Permission) (bool, error)
	AssignRole(communityID, profileID int, roleName string) error
	RevokeRole(communityID int, id uint) error
	GetRolesByCommunity(comm *community.Community) ([]RoleAssignment, error)
	GetRolesByProfile(profileID int) ([]CommunityRole, error)
}

type CommunityFinder interface {
	GetCommunityBySlug(slug string) (*community.Community, error)
}

type ProfileFinder interface {
	GetProfileByUserID(userID int) (*auth.SystersUser, error)
	GetProfileByUsername(username string) (*auth.SystersUser, error)
}

type LogServicePort interface {
	Log(entry logs.SystemLog, payload any) error
}

var _ RoleServiceAPI = (*RoleService)(nil)
var _ CommunityFinder = (*community.CommunityService)(nil)
var _ ProfileFinder = (*auth.AuthService)(nil)
