package auth

import "systers-portal/internal/logs"

type AuthServicePort interface {
	CreateUser(username, email, password string, superuser bool) (*User, error)
	Authenticate(username, password string) (*User, error)
	GetProfileByUserID(userID int) (*SystersUser, error)
}

type LogServicePort interface {
	Log(entry logs.SystemLog, payload any) error
}

var _ AuthServicePort = (*AuthService)(nil)
var _ LogServicePort = (*logs.LogService)(nil)
