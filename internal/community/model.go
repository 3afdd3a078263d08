package community

import (
	"time"

	"systers-portal/internal/auth"
)

type Community struct {
	ID        int              `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string           `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Slug      string           `gorm:"size:150;uniqueIndex;not null" json:"slug"`
	Order     int              `gorm:"column:sort_order;not null;default:0" json:"order"`
	AdminID   int              `gorm:"not null;index" json:"admin_id"`
	Admin     auth.SystersUser `gorm:"foreignKey:AdminID" json:"admin"`
	Email     string           `gorm:"size:254" json:"email"`
	Website   string           `gorm:"size:255" json:"website"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type CreateCommunityRequest struct {
	Name          string `json:"name" form:"name" binding:"required,max=255"`
	Slug          string `json:"slug" form:"slug" binding:"omitempty,max=150,slug"`
	Order         int    `json:"order" form:"order"`
	AdminUsername string `json:"admin_username" form:"admin_username"`
	Email         string `json:"email" form:"email" binding:"omitempty,email"`
	Website       string `json:"website" form:"website" binding:"omitempty,url"`
}

func (Community) TableName() string {
	return "communities"
}
