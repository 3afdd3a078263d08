package news

import (
	"errors"
	"fmt"
	"strings"

	"systers-portal/internal/community"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrSlugTaken    = errors.New("news with this slug already exists in the community")
	ErrReservedSlug = errors.New("slug is reserved")
)

// slugs that would shadow the static news routes
var reservedSlugs = map[string]bool{
	"add":    true,
	"export": true,
}

type NewsService struct {
	DB *gorm.DB
}

// ListByCommunity returns the community's news oldest first.
func (ns *NewsService) ListByCommunity(communityID int) ([]News, error) {
	rows := []News{}
	err := ns.DB.Preload("Author.User").
		Where("community_id = ?", communityID).
		Order("created_at asc").Order("id asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (ns *NewsService) GetBySlug(communityID int, slug string) (*News, error) {
	var n News
	err := ns.DB.Preload("Author.User").
		Where("community_id = ? AND slug = ?", communityID, slug).
		First(&n).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (ns *NewsService) checkSlug(communityID int, slug string, excludeID int) error {
	if reservedSlugs[strings.ToLower(slug)] {
		return ErrReservedSlug
	}

	var count int64
	q := ns.DB.Model(&News{}).Where("community_id = ? AND slug = ?", communityID, slug)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrSlugTaken
	}
	return nil
}

// slugConflict maps a hit on idx_news_community_slug, left by a concurrent
// writer after checkSlug passed, to ErrSlugTaken.
func slugConflict(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrSlugTaken
	}
	return err
}

func (ns *NewsService) Create(n *News) error {
	if err := ns.checkSlug(n.CommunityID, n.Slug, 0); err != nil {
		return err
	}
	return slugConflict(ns.DB.Omit(clause.Associations).Create(n).Error)
}

// Update rewrites slug, title and content. Author and community never change.
func (ns *NewsService) Update(n *News, form NewsForm) error {
	if err := ns.checkSlug(n.CommunityID, form.Slug, n.ID); err != nil {
		return err
	}

	err := ns.DB.Model(&News{ID: n.ID}).Updates(map[string]interface{}{
		"slug":    form.Slug,
		"title":   form.Title,
		"content": form.Content,
	}).Error
	if err != nil {
		return slugConflict(err)
	}

	n.Slug = form.Slug
	n.Title = form.Title
	n.Content = form.Content
	return nil
}

func (ns *NewsService) Delete(n *News) error {
	result := ns.DB.Delete(&News{}, n.ID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ExportXLSX writes every news item of comm to a single "News" sheet.
func (ns *NewsService) ExportXLSX(comm *community.Community) ([]byte, error) {
	rows, err := ns.ListByCommunity(comm.ID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "News"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheet); err != nil {
		return nil, err
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E2E8F0"}},
	})

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return nil, err
	}

	header := []interface{}{}
	for _, h := range []string{"slug", "title", "author", "created", "updated", "content"} {
		header = append(header, excelize.Cell{Value: h, StyleID: headerStyle})
	}
	if err := sw.SetRow("A1", header); err != nil {
		return nil, err
	}

	for i, n := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := []interface{}{
			n.Slug,
			n.Title,
			n.Author.Username(),
			n.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
			n.UpdatedAt.UTC().Format("2006-01-02 15:04:05"),
			n.Content,
		}
		if err := sw.SetRow(cell, values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
