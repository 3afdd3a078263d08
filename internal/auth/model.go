package auth

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Username    string    `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Email       string    `gorm:"size:254" json:"email"`
	Password    string    `gorm:"not null" json:"-"`
	IsSuperuser bool      `gorm:"default:false" json:"is_superuser"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SystersUser is the portal profile of a User. Exactly one exists per account.
type SystersUser struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      int       `gorm:"uniqueIndex;not null" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`
	Country     string    `gorm:"size:100" json:"country"`
	BlogURL     string    `gorm:"size:255;column:blog_url" json:"blog_url"`
	HomepageURL string    `gorm:"size:255;column:homepage_url" json:"homepage_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AfterCreate gives every new account its profile inside the same transaction.
func (u *User) AfterCreate(tx *gorm.DB) error {
	return tx.Create(&SystersUser{UserID: u.ID}).Error
}

func (s *SystersUser) Username() string {
	return s.User.Username
}

type SignUpRequest struct {
	Username string `json:"username" form:"username" binding:"required,max=150"`
	Email    string `json:"email" form:"email" binding:"omitempty,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Username   string `json:"username" form:"username" binding:"required"`
	Password   string `json:"password" form:"password" binding:"required"`
	RememberMe bool   `json:"remember_me" form:"remember_me"`
}

type MeResponse struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	IsSuperuser bool   `json:"is_superuser"`
	ProfileID   int    `json:"profile_id"`
	Country     string `json:"country"`
}

func (User) TableName() string {
	return "users"
}

func (SystersUser) TableName() string {
	return "systers_users"
}
