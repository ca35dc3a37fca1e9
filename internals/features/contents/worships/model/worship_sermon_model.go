package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorshipSermonModel struct {
	WorshipSermonID          uuid.UUID `gorm:"column:worship_sermon_id;primaryKey" json:"worship_sermon_id"`
	WorshipSermonSpeakerName string    `gorm:"column:worship_sermon_speaker_name;size:100;not null" json:"worship_sermon_speaker_name"`
	WorshipSermonTitle       string    `gorm:"column:worship_sermon_title;size:200;not null" json:"worship_sermon_title"`
	WorshipSermonYoutubeLink string    `gorm:"column:worship_sermon_youtube_link;type:text;not null" json:"worship_sermon_youtube_link"`
	WorshipSermonDate        time.Time `gorm:"column:worship_sermon_date;not null" json:"worship_sermon_date"`

	WorshipSermonCreatedAt time.Time `gorm:"column:worship_sermon_created_at;autoCreateTime" json:"worship_sermon_created_at"`
	WorshipSermonUpdatedAt time.Time `gorm:"column:worship_sermon_updated_at;autoUpdateTime" json:"worship_sermon_updated_at"`
}

func (WorshipSermonModel) TableName() string {
	return "worship_sermons"
}

func (w *WorshipSermonModel) BeforeCreate(tx *gorm.DB) error {
	if w.WorshipSermonID == uuid.Nil {
		w.WorshipSermonID = uuid.New()
	}
	if w.WorshipSermonDate.IsZero() {
		w.WorshipSermonDate = time.Now()
	}
	return nil
}
