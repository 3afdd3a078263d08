package community

import (
	"errors"
	"strings"

	"systers-portal/internal/util"

	"gorm.io/gorm"
)

var ErrDuplicate = errors.New("a community with this name or slug already exists")

type CommunityService struct {
	DB *gorm.DB
}

func (fs *CommunityService) GetAllCommunities() ([]Community, error) {
	communities := []Community{}
	result := fs.DB.Preload("Admin.User").Order("sort_order asc").Order("name asc").Find(&communities)
	if result.Error != nil {
		return nil, result.Error
	}
	return communities, nil
}

// GetCommunityBySlug matches the slug exactly; a miss returns gorm.ErrRecordNotFound.
func (fs *CommunityService) GetCommunityBySlug(slug string) (*Community, error) {
	var c Community
	if err := fs.DB.Preload("Admin.User").Where("slug = ?", slug).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (fs *CommunityService) CreateCommunity(c Community) (*Community, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Slug == "" {
		c.Slug = util.Slugify(c.Name)
	}
	if c.Slug == "" {
		return nil, errors.New("community slug cannot be empty")
	}

	var count int64
	err := fs.DB.Model(&Community{}).
		Where("slug = ? OR name = ?", c.Slug, c.Name).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicate
	}

	if err := fs.DB.Omit("Admin").Create(&c).Error; err != nil {
		return nil, err
	}
	return fs.GetCommunityBySlug(c.Slug)
}
