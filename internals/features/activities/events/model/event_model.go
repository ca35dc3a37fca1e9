package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"github.com/rayto1224/ksbc-web/internals/configs"
)

// EventTags stores free-form labels. Postgres holds a real text[] column;
// other dialects keep pq's array literal in a TEXT column.
type EventTags pq.StringArray

func (t *EventTags) Scan(src interface{}) error {
	return (*pq.StringArray)(t).Scan(src)
}

func (t EventTags) Value() (driver.Value, error) {
	return pq.StringArray(t).Value()
}

func (EventTags) GormDataType() string {
	return "text"
}

func (EventTags) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}

// Column types and defaults live in the SQL migrations; the gorm tags here
// stay dialect-neutral so the in-memory test database migrates cleanly.
type EventModel struct {
	EventID          uuid.UUID `gorm:"column:event_id;primaryKey" json:"event_id"`
	EventTitle       string    `gorm:"column:event_title;size:255;not null" json:"event_title"`
	EventDescription string    `gorm:"column:event_description"             json:"event_description"`
	EventLocation    string    `gorm:"column:event_location;size:255"       json:"event_location"`

	EventStartDate           *time.Time `gorm:"column:event_start_date"           json:"event_start_date,omitempty"`
	EventApplicationDeadline *time.Time `gorm:"column:event_application_deadline" json:"event_application_deadline,omitempty"`

	EventPosterURL string    `gorm:"column:event_poster_url" json:"event_poster_url"`
	EventTags      EventTags `gorm:"column:event_tags"       json:"event_tags"`

	EventIsActive       bool `gorm:"column:event_is_active;not null;default:true"        json:"event_is_active"`
	EventIsFeatured     bool `gorm:"column:event_is_featured;not null;default:false"     json:"event_is_featured"`
	EventIsAnnouncement bool `gorm:"column:event_is_announcement;not null;default:false" json:"event_is_announcement"`

	EventIsFree       bool     `gorm:"column:event_is_free;not null;default:false"  json:"event_is_free"`
	EventFeeAmount    float64  `gorm:"column:event_fee_amount;not null"             json:"event_fee_amount"`
	EventFeeCurrency  string   `gorm:"column:event_fee_currency;size:3;default:'HKD'" json:"event_fee_currency"`
	EventEarlyBirdFee *float64 `gorm:"column:event_early_bird_fee"                  json:"event_early_bird_fee,omitempty"`

	EventUnlimitedQuota bool `gorm:"column:event_unlimited_quota;not null;default:false" json:"event_unlimited_quota"`
	EventQuotaTotal     int  `gorm:"column:event_quota_total;not null;default:0"         json:"event_quota_total"`
	EventQuotaLeft      int  `gorm:"column:event_quota_left;not null;default:0"          json:"event_quota_left"`

	EventCreatedAt time.Time      `gorm:"column:event_created_at;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt time.Time      `gorm:"column:event_updated_at;autoUpdateTime" json:"event_updated_at"`
	EventDeletedAt gorm.DeletedAt `gorm:"column:event_deleted_at;index"          json:"event_deleted_at,omitempty"`
}

func (EventModel) TableName() string {
	return "events"
}

func (e *EventModel) BeforeCreate(tx *gorm.DB) error {
	if e.EventID == uuid.Nil {
		e.EventID = uuid.New()
	}
	if e.EventFeeCurrency == "" {
		e.EventFeeCurrency = "HKD"
	}
	return nil
}

// Today is midnight of the current date in the configured local timezone.
// Deadlines and withdrawal dates are civil dates, so "today" must follow the
// congregation's clock, not the server's.
func Today() time.Time {
	now := time.Now().In(configs.AppLocation)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// IsExpired reports whether the application deadline has passed. Events
// without a deadline never expire; the deadline day itself is still open.
func (e *EventModel) IsExpired() bool {
	if e.EventApplicationDeadline == nil {
		return false
	}
	return e.EventApplicationDeadline.Before(Today())
}

// QuotaFull reports whether a finite-quota event has no spots left.
func (e *EventModel) QuotaFull() bool {
	return !e.EventUnlimitedQuota && e.EventQuotaLeft <= 0
}

// DisplayPrice renders the fee for listings. Free wins over any fee amount.
func (e *EventModel) DisplayPrice() string {
	if e.EventIsFree || e.EventFeeAmount == 0 {
		return "Free"
	}
	return fmt.Sprintf("%.2f %s", e.EventFeeAmount, e.EventFeeCurrency)
}
