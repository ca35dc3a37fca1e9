package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PrayerModel struct {
	PrayerID          uuid.UUID `gorm:"column:prayer_id;primaryKey" json:"prayer_id"`
	PrayerTitle       string    `gorm:"column:prayer_title;size:200;not null" json:"prayer_title"`
	PrayerContent     string    `gorm:"column:prayer_content;type:text;not null" json:"prayer_content"`
	PrayerIsUrgent    bool      `gorm:"column:prayer_is_urgent;default:false" json:"prayer_is_urgent"`
	PrayerIsActive    bool      `gorm:"column:prayer_is_active;default:true" json:"prayer_is_active"`
	PrayerDisplayDate time.Time `gorm:"column:prayer_display_date;not null" json:"prayer_display_date"`

	PrayerCreatedAt time.Time `gorm:"column:prayer_created_at;autoCreateTime" json:"prayer_created_at"`
	PrayerUpdatedAt time.Time `gorm:"column:prayer_updated_at;autoUpdateTime" json:"prayer_updated_at"`
}

func (PrayerModel) TableName() string {
	return "prayers"
}

func (p *PrayerModel) BeforeCreate(tx *gorm.DB) error {
	if p.PrayerID == uuid.Nil {
		p.PrayerID = uuid.New()
	}
	if p.PrayerDisplayDate.IsZero() {
		p.PrayerDisplayDate = time.Now()
	}
	return nil
}
