package dto

import (
	"time"

	"github.com/rayto1224/ksbc-web/internals/features/contents/home/model"
)

type MinistryRequest struct {
	Title        string `json:"title" validate:"required,max=200"`
	Description  string `json:"description"`
	ActivityDate string `json:"activity_date" validate:"omitempty,datetime=2006-01-02"`
	Location     string `json:"location" validate:"max=100"`
	ImageURL     string `json:"image_url" validate:"omitempty,url"`
	IsActive     *bool  `json:"is_active"`
	DisplayOrder int    `json:"display_order"`
}

type MinistryResponse struct {
	MinistryID   string `json:"ministry_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ActivityDate string `json:"activity_date"`
	Location     string `json:"location"`
	ImageURL     string `json:"image_url"`
	IsActive     bool   `json:"is_active"`
	DisplayOrder int    `json:"display_order"`
}

type PrayerRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Content     string `json:"content" validate:"required"`
	IsUrgent    bool   `json:"is_urgent"`
	IsActive    *bool  `json:"is_active"`
	DisplayDate string `json:"display_date" validate:"omitempty,datetime=2006-01-02"`
}

type PrayerResponse struct {
	PrayerID    string `json:"prayer_id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	IsUrgent    bool   `json:"is_urgent"`
	IsActive    bool   `json:"is_active"`
	DisplayDate string `json:"display_date"`
}

func (r *MinistryRequest) ToModel() *model.MinistryModel {
	date := time.Now()
	if r.ActivityDate != "" {
		if parsed, err := time.Parse("2006-01-02", r.ActivityDate); err == nil {
			date = parsed
		}
	}
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &model.MinistryModel{
		MinistryTitle:        r.Title,
		MinistryDescription:  r.Description,
		MinistryActivityDate: date,
		MinistryLocation:     r.Location,
		MinistryImageURL:     r.ImageURL,
		MinistryIsActive:     active,
		MinistryDisplayOrder: r.DisplayOrder,
	}
}

func ToMinistryResponse(m *model.MinistryModel) *MinistryResponse {
	return &MinistryResponse{
		MinistryID:   m.MinistryID.String(),
		Title:        m.MinistryTitle,
		Description:  m.MinistryDescription,
		ActivityDate: m.MinistryActivityDate.Format("2006-01-02"),
		Location:     m.MinistryLocation,
		ImageURL:     m.MinistryImageURL,
		IsActive:     m.MinistryIsActive,
		DisplayOrder: m.MinistryDisplayOrder,
	}
}

func (r *PrayerRequest) ToModel() *model.PrayerModel {
	date := time.Now()
	if r.DisplayDate != "" {
		if parsed, err := time.Parse("2006-01-02", r.DisplayDate); err == nil {
			date = parsed
		}
	}
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &model.PrayerModel{
		PrayerTitle:       r.Title,
		PrayerContent:     r.Content,
		PrayerIsUrgent:    r.IsUrgent,
		PrayerIsActive:    active,
		PrayerDisplayDate: date,
	}
}

func ToPrayerResponse(p *model.PrayerModel) *PrayerResponse {
	return &PrayerResponse{
		PrayerID:    p.PrayerID.String(),
		Title:       p.PrayerTitle,
		Content:     p.PrayerContent,
		IsUrgent:    p.PrayerIsUrgent,
		IsActive:    p.PrayerIsActive,
		DisplayDate: p.PrayerDisplayDate.Format("2006-01-02"),
	}
}
