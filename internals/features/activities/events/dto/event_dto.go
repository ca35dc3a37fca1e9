package dto

import (
	"time"

	"github.com/rayto1224/ksbc-web/internals/features/activities/events/model"
)

// Request from the admin panel
type EventRequest struct {
	EventTitle       string `json:"event_title" validate:"required,max=255"`
	EventDescription string `json:"event_description"`
	EventLocation    string `json:"event_location" validate:"max=255"`

	EventStartDate           *time.Time `json:"event_start_date"`
	EventApplicationDeadline *time.Time `json:"event_application_deadline"`

	EventPosterURL string   `json:"event_poster_url"`
	EventTags      []string `json:"event_tags"`

	EventIsActive       bool `json:"event_is_active"`
	EventIsFeatured     bool `json:"event_is_featured"`
	EventIsAnnouncement bool `json:"event_is_announcement"`

	EventIsFree       bool     `json:"event_is_free"`
	EventFeeAmount    float64  `json:"event_fee_amount" validate:"gte=0"`
	EventFeeCurrency  string   `json:"event_fee_currency" validate:"omitempty,len=3"`
	EventEarlyBirdFee *float64 `json:"event_early_bird_fee" validate:"omitempty,gte=0"`

	EventUnlimitedQuota bool `json:"event_unlimited_quota"`
	EventQuotaTotal     int  `json:"event_quota_total" validate:"gte=0"`
}

// Response for listings and detail pages
type EventResponse struct {
	EventID          string `json:"event_id"`
	EventTitle       string `json:"event_title"`
	EventDescription string `json:"event_description"`
	EventLocation    string `json:"event_location"`

	EventStartDate           *string `json:"event_start_date,omitempty"`
	EventApplicationDeadline *string `json:"event_application_deadline,omitempty"`

	EventPosterURL string   `json:"event_poster_url"`
	EventTags      []string `json:"event_tags"`

	EventIsActive       bool `json:"event_is_active"`
	EventIsFeatured     bool `json:"event_is_featured"`
	EventIsAnnouncement bool `json:"event_is_announcement"`

	EventIsFree       bool     `json:"event_is_free"`
	EventFeeAmount    float64  `json:"event_fee_amount"`
	EventFeeCurrency  string   `json:"event_fee_currency"`
	EventEarlyBirdFee *float64 `json:"event_early_bird_fee,omitempty"`
	EventDisplayPrice string   `json:"event_display_price"`

	EventUnlimitedQuota bool `json:"event_unlimited_quota"`
	EventQuotaTotal     int  `json:"event_quota_total"`
	EventQuotaLeft      int  `json:"event_quota_left"`

	EventIsExpired bool `json:"event_is_expired"`
	EventQuotaFull bool `json:"event_quota_full"`

	EventCreatedAt string `json:"event_created_at"`
}

func (r *EventRequest) ToModel() *model.EventModel {
	quotaLeft := r.EventQuotaTotal
	if r.EventUnlimitedQuota {
		quotaLeft = 0
	}
	currency := r.EventFeeCurrency
	if currency == "" {
		currency = "HKD"
	}
	return &model.EventModel{
		EventTitle:               r.EventTitle,
		EventDescription:         r.EventDescription,
		EventLocation:            r.EventLocation,
		EventStartDate:           r.EventStartDate,
		EventApplicationDeadline: r.EventApplicationDeadline,
		EventPosterURL:           r.EventPosterURL,
		EventTags:                model.EventTags(r.EventTags),
		EventIsActive:            r.EventIsActive,
		EventIsFeatured:          r.EventIsFeatured,
		EventIsAnnouncement:      r.EventIsAnnouncement,
		EventIsFree:              r.EventIsFree,
		EventFeeAmount:           r.EventFeeAmount,
		EventFeeCurrency:         currency,
		EventEarlyBirdFee:        r.EventEarlyBirdFee,
		EventUnlimitedQuota:      r.EventUnlimitedQuota,
		EventQuotaTotal:          r.EventQuotaTotal,
		EventQuotaLeft:           quotaLeft,
	}
}

func ToEventResponse(m *model.EventModel) *EventResponse {
	resp := &EventResponse{
		EventID:             m.EventID.String(),
		EventTitle:          m.EventTitle,
		EventDescription:    m.EventDescription,
		EventLocation:       m.EventLocation,
		EventPosterURL:      m.EventPosterURL,
		EventTags:           m.EventTags,
		EventIsActive:       m.EventIsActive,
		EventIsFeatured:     m.EventIsFeatured,
		EventIsAnnouncement: m.EventIsAnnouncement,
		EventIsFree:         m.EventIsFree,
		EventFeeAmount:      m.EventFeeAmount,
		EventFeeCurrency:    m.EventFeeCurrency,
		EventEarlyBirdFee:   m.EventEarlyBirdFee,
		EventDisplayPrice:   m.DisplayPrice(),
		EventUnlimitedQuota: m.EventUnlimitedQuota,
		EventQuotaTotal:     m.EventQuotaTotal,
		EventQuotaLeft:      m.EventQuotaLeft,
		EventIsExpired:      m.IsExpired(),
		EventQuotaFull:      m.QuotaFull(),
		EventCreatedAt:      m.EventCreatedAt.Format("2006-01-02 15:04:05"),
	}
	if m.EventStartDate != nil {
		s := m.EventStartDate.Format("2006-01-02")
		resp.EventStartDate = &s
	}
	if m.EventApplicationDeadline != nil {
		s := m.EventApplicationDeadline.Format("2006-01-02")
		resp.EventApplicationDeadline = &s
	}
	if resp.EventTags == nil {
		resp.EventTags = []string{}
	}
	return resp
}
