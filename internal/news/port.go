package news

import (
	"systers-portal/internal/auth"
	"systers-portal/internal/community"
	"systers-portal/internal/logs"
	"systers-portal/internal/role"
)

type NewsServiceAPI interface {
	ListByCommunity(communityID int) ([]News, error)
	GetBySlug(communityID int, slug string) (*News, error)
	Create(n *News) error
	Update(n *News, form NewsForm) error
	Delete(n *News) error
	ExportXLSX(comm *community.Community) ([]byte, error)
}

type CommunityFinder interface {
	GetCommunityBySlug(slug string) (*community.Community, error)
}

type ProfileFinder interface {
	GetProfileByUserID(userID int) (*auth.SystersUser, error)
}

type PermissionChecker interface {
	Can(profile *auth.SystersUser, comm *community.Community, perm role.Permission) (bool, error)
}

type LogServicePort interface {
	Log(entry logs.SystemLog, payload any) error
}

var _ NewsServiceAPI = (*NewsService)(nil)
var _ PermissionChecker = (*role.RoleService)(nil)
