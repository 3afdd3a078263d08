package logs

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"systers-portal/internal/util"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type LogService struct {
	DB *gorm.DB
}

func (ls *LogService) Log(log SystemLog, metadata interface{}) error {
	var meta datatypes.JSON

	// unmarshalable metadata is dropped rather than failing the audit row
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			meta = datatypes.JSON(b)
		}
	}

	newLog := SystemLog{
		Level:     log.Level,
		Service:   log.Service,
		UserID:    log.UserID,
		Action:    log.Action,
		Message:   log.Message,
		Community: log.Community,
		Metadata:  meta,
		CreatedAt: time.Now(),
	}

	return ls.DB.Create(&newLog).Error
}

func (ls *LogService) GetLogs(input LogFilterInput) ([]SystemLog, int64, int, error) {
	if input.Page <= 0 {
		input.Page = 1
	}
	if input.PageSize <= 0 {
		input.PageSize = 20
	}
	if input.PageSize > 100 {
		input.PageSize = 100
	}

	base := ls.DB.Model(&SystemLog{})
	if s := strings.TrimSpace(input.Community); s != "" {
		base = base.Where("community = ?", s)
	}
	if s := strings.TrimSpace(input.Action); s != "" {
		base = base.Where("action = ?", s)
	}
	if s := strings.TrimSpace(input.Service); s != "" {
		base = base.Where("service = ?", s)
	}
	if input.UserID != nil {
		base = base.Where("user_id = ?", *input.UserID)
	}

	window, err := util.ParseDateRange(input.From, input.To)
	if err != nil {
		return nil, 0, 0, err
	}
	if window.HasFrom {
		base = base.Where("created_at >= ?", window.From)
	}
	if window.HasUntil {
		base = base.Where("created_at < ?", window.Until)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, 0, err
	}

	rows := []SystemLog{}
	err = base.Session(&gorm.Session{}).
		Order("created_at desc").Order("id desc").
		Offset((input.Page - 1) * input.PageSize).
		Limit(input.PageSize).
		Find(&rows).Error
	if err != nil {
		return nil, 0, 0, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(input.PageSize)))
	return rows, total, totalPages, nil
}
