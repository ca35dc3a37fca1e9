package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Fellowship meeting schedules are pastoral copy, not structured calendars,
// so date and time stay free-text ("Every 2nd Saturday", "2:30 pm").
type FellowshipGroupModel struct {
	FellowshipGroupID          uuid.UUID `gorm:"column:fellowship_group_id;primaryKey" json:"fellowship_group_id"`
	FellowshipGroupTitle       string    `gorm:"column:fellowship_group_title;size:100;not null" json:"fellowship_group_title"`
	FellowshipGroupDateText    string    `gorm:"column:fellowship_group_date_text;size:50" json:"fellowship_group_date_text"`
	FellowshipGroupTimeText    string    `gorm:"column:fellowship_group_time_text;size:50" json:"fellowship_group_time_text"`
	FellowshipGroupLocation    string    `gorm:"column:fellowship_group_location;size:50" json:"fellowship_group_location"`
	FellowshipGroupDescription string    `gorm:"column:fellowship_group_description;type:text" json:"fellowship_group_description"`
	FellowshipGroupPosterURL   string    `gorm:"column:fellowship_group_poster_url;type:text" json:"fellowship_group_poster_url"`
	FellowshipGroupIsActive    bool      `gorm:"column:fellowship_group_is_active;default:true" json:"fellowship_group_is_active"`
	FellowshipGroupSortOrder   int       `gorm:"column:fellowship_group_sort_order;default:0" json:"fellowship_group_sort_order"`

	FellowshipGroupUpdatedAt time.Time `gorm:"column:fellowship_group_updated_at;autoUpdateTime" json:"fellowship_group_updated_at"`
}

func (FellowshipGroupModel) TableName() string {
	return "fellowship_groups"
}

func (f *FellowshipGroupModel) BeforeCreate(tx *gorm.DB) error {
	if f.FellowshipGroupID == uuid.Nil {
		f.FellowshipGroupID = uuid.New()
	}
	return nil
}
