package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PageModel struct {
	PageID          uuid.UUID      `gorm:"column:page_id;primaryKey" json:"page_id"`
	PageSlug        string         `gorm:"column:page_slug;size:100;not null;uniqueIndex:ux_pages_slug" json:"page_slug"`
	PageTitle       string         `gorm:"column:page_title;size:200;not null" json:"page_title"`
	PageSections    datatypes.JSON `gorm:"column:page_sections;default:'[]'" json:"page_sections"`
	PageIsPublished bool           `gorm:"column:page_is_published;default:true" json:"page_is_published"`

	PageCreatedAt time.Time `gorm:"column:page_created_at;autoCreateTime" json:"page_created_at"`
	PageUpdatedAt time.Time `gorm:"column:page_updated_at;autoUpdateTime" json:"page_updated_at"`
}

func (PageModel) TableName() string {
	return "pages"
}

func (p *PageModel) BeforeCreate(tx *gorm.DB) error {
	if p.PageID == uuid.Nil {
		p.PageID = uuid.New()
	}
	if len(p.PageSections) == 0 {
		p.PageSections = datatypes.JSON([]byte("[]"))
	}
	return nil
}
