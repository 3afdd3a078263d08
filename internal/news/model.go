package news

import (
	"time"

	"systers-portal/internal/auth"
	"systers-portal/internal/community"
)

type News struct {
	ID          int                 `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug        string              `gorm:"size:150;not null;uniqueIndex:idx_news_community_slug" json:"slug"`
	CommunityID int                 `gorm:"not null;uniqueIndex:idx_news_community_slug" json:"community_id"`
	Community   community.Community `gorm:"foreignKey:CommunityID;constraint:OnDelete:CASCADE" json:"-"`
	Title       string              `gorm:"size:255;not null" json:"title"`
	Content     string              `gorm:"type:text;not null" json:"content"`
	AuthorID    int                 `gorm:"not null;index" json:"author_id"`
	Author      auth.SystersUser    `gorm:"foreignKey:AuthorID" json:"author"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func (News) TableName() string {
	return "news"
}

// NewsForm is the add/edit form posted by the news pages.
type NewsForm struct {
	Slug    string `form:"slug" binding:"required,max=150,slug"`
	Title   string `form:"title" binding:"required,max=255"`
	Content string `form:"content" binding:"required"`
}

var formMessages = map[string]string{
	"required": "This field is required.",
	"max":      "Ensure this value is not too long.",
	"slug":     "Enter a valid 'slug' consisting of letters, numbers, underscores or hyphens.",
}
