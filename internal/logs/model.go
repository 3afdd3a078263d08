package logs

import (
	"time"

	"gorm.io/datatypes"
)

const (
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

type SystemLog struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Level     string         `gorm:"size:20;not null" json:"level"`
	Service   string         `gorm:"size:100;not null" json:"service"`
	UserID    *int           `gorm:"index" json:"user_id,omitempty"`
	Action    string         `gorm:"size:255;not null;index" json:"action"`
	Message   string         `gorm:"type:text;not null" json:"message"`
	Community *string        `gorm:"size:150;index" json:"community,omitempty"`
	Metadata  datatypes.JSON `json:"metadata,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

type LogFilterInput struct {
	Community string `form:"community"`
	Action    string `form:"action"`
	Service   string `form:"service"`
	UserID    *int   `form:"user_id"`
	From      string `form:"from"`
	To        string `form:"to"`
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
}

func (SystemLog) TableName() string {
	return "logs"
}
