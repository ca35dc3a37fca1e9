package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MinistryModel struct {
	MinistryID           uuid.UUID `gorm:"column:ministry_id;primaryKey" json:"ministry_id"`
	MinistryTitle        string    `gorm:"column:ministry_title;size:200;not null" json:"ministry_title"`
	MinistryDescription  string    `gorm:"column:ministry_description;type:text" json:"ministry_description"`
	MinistryActivityDate time.Time `gorm:"column:ministry_activity_date;not null" json:"ministry_activity_date"`
	MinistryLocation     string    `gorm:"column:ministry_location;size:100" json:"ministry_location"`
	MinistryImageURL     string    `gorm:"column:ministry_image_url;type:text" json:"ministry_image_url"`
	MinistryIsActive     bool      `gorm:"column:ministry_is_active;default:true" json:"ministry_is_active"`
	MinistryDisplayOrder int       `gorm:"column:ministry_display_order;default:0" json:"ministry_display_order"`

	MinistryCreatedAt time.Time `gorm:"column:ministry_created_at;autoCreateTime" json:"ministry_created_at"`
	MinistryUpdatedAt time.Time `gorm:"column:ministry_updated_at;autoUpdateTime" json:"ministry_updated_at"`
}

func (MinistryModel) TableName() string {
	return "ministries"
}

func (m *MinistryModel) BeforeCreate(tx *gorm.DB) error {
	if m.MinistryID == uuid.Nil {
		m.MinistryID = uuid.New()
	}
	if m.MinistryActivityDate.IsZero() {
		m.MinistryActivityDate = time.Now()
	}
	return nil
}
