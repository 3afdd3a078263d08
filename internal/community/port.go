package community

import (
	"systers-portal/internal/auth"
	"systers-portal/internal/logs"
)

type CommunityServiceAPI interface {
	GetAllCommunities() ([]Community, error)
	GetCommunityBySlug(slug string) (*Community, error)
	CreateCommunity(c Community) (*Community, error)
}

type ProfileFinder interface {
	GetProfileByUserID(userID int) (*auth.SystersUser, error)
	GetProfileByUsername(username string) (*auth.SystersUser, error)
}

type LogServicePort interface {
	Log(entry logs.SystemLog, payload any) error
}

var _ CommunityServiceAPI = (*CommunityService)(nil)
var _ ProfileFinder = (*auth.AuthService)(nil)
