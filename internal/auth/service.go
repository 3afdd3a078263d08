package auth

import (
	"errors"
	"fmt"
	"strings"

	"systers-portal/internal/util"

	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("a user with that username already exists")
	ErrInvalidCredentials = errors.New("please enter a correct username and password")
)

type AuthService struct {
	DB *gorm.DB
}

func (s *AuthService) CreateUser(username, email, password string, superuser bool) (*User, error) {
	username = strings.TrimSpace(username)

	var count int64
	if err := s.DB.Model(&User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	hashed, err := util.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := User{
		Username:    username,
		Email:       strings.TrimSpace(email),
		Password:    hashed,
		IsSuperuser: superuser,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) Authenticate(username, password string) (*User, error) {
	var user User
	if err := s.DB.Where("username = ?", strings.TrimSpace(username)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := util.VerifyPassword(password, user.Password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func (s *AuthService) GetUserByID(id int) (*User, error) {
	var user User
	if err := s.DB.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) GetProfileByUserID(userID int) (*SystersUser, error) {
	var profile SystersUser
	err := s.DB.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *AuthService) GetProfileByUsername(username string) (*SystersUser, error) {
	var profile SystersUser
	err := s.DB.Preload("User").
		Joins("JOIN users ON users.id = systers_users.user_id").
		Where("users.username = ?", username).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// EnsureSuperuser creates the initial superuser when no account with that
// username exists yet. It reports whether a user was created.
func (s *AuthService) EnsureSuperuser(username, password string) (bool, error) {
	_, err := s.CreateUser(username, "", password, true)
	if errors.Is(err, ErrUsernameTaken) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("create superuser %q: %w", username, err)
	}
	return true, nil
}

func (s *AuthService) IsSuperuser(userID int) (bool, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.IsSuperuser, nil
}
