package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NewsletterModel struct {
	NewsletterID            uuid.UUID `gorm:"column:newsletter_id;primaryKey" json:"newsletter_id"`
	NewsletterTitle         string    `gorm:"column:newsletter_title;size:200;not null" json:"newsletter_title"`
	NewsletterSlug          string    `gorm:"column:newsletter_slug;size:120;not null;uniqueIndex:ux_newsletters_slug" json:"newsletter_slug"`
	NewsletterPublishedDate time.Time `gorm:"column:newsletter_published_date;not null" json:"newsletter_published_date"`
	NewsletterPdfURL        string    `gorm:"column:newsletter_pdf_url;type:text" json:"newsletter_pdf_url"`
	NewsletterDescription   string    `gorm:"column:newsletter_description;type:text" json:"newsletter_description"`
	NewsletterIsPublished   bool      `gorm:"column:newsletter_is_published;default:true" json:"newsletter_is_published"`

	NewsletterCreatedAt time.Time `gorm:"column:newsletter_created_at;autoCreateTime" json:"newsletter_created_at"`
	NewsletterUpdatedAt time.Time `gorm:"column:newsletter_updated_at;autoUpdateTime" json:"newsletter_updated_at"`
}

func (NewsletterModel) TableName() string {
	return "newsletters"
}

func (n *NewsletterModel) BeforeCreate(tx *gorm.DB) error {
	if n.NewsletterID == uuid.Nil {
		n.NewsletterID = uuid.New()
	}
	if n.NewsletterPublishedDate.IsZero() {
		n.NewsletterPublishedDate = time.Now()
	}
	return nil
}
