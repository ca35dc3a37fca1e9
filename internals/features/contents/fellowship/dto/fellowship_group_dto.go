package dto

import (
	"github.com/rayto1224/ksbc-web/internals/features/contents/fellowship/model"
)

type FellowshipGroupRequest struct {
	Title       string `json:"title" validate:"required,max=100"`
	DateText    string `json:"date_text" validate:"max=50"`
	TimeText    string `json:"time_text" validate:"max=50"`
	Location    string `json:"location" validate:"max=50"`
	Description string `json:"description"`
	PosterURL   string `json:"poster_url" validate:"omitempty,url"`
	IsActive    *bool  `json:"is_active"`
	SortOrder   int    `json:"sort_order"`
}

type FellowshipGroupResponse struct {
	FellowshipGroupID string `json:"fellowship_group_id"`
	Title             string `json:"title"`
	DateText          string `json:"date_text"`
	TimeText          string `json:"time_text"`
	Location          string `json:"location"`
	Description       string `json:"description"`
	PosterURL         string `json:"poster_url"`
	IsActive          bool   `json:"is_active"`
	SortOrder         int    `json:"sort_order"`
}

func (r *FellowshipGroupRequest) ToModel() *model.FellowshipGroupModel {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &model.FellowshipGroupModel{
		FellowshipGroupTitle:       r.Title,
		FellowshipGroupDateText:    r.DateText,
		FellowshipGroupTimeText:    r.TimeText,
		FellowshipGroupLocation:    r.Location,
		FellowshipGroupDescription: r.Description,
		FellowshipGroupPosterURL:   r.PosterURL,
		FellowshipGroupIsActive:    active,
		FellowshipGroupSortOrder:   r.SortOrder,
	}
}

func ToFellowshipGroupResponse(m *model.FellowshipGroupModel) *FellowshipGroupResponse {
	return &FellowshipGroupResponse{
		FellowshipGroupID: m.FellowshipGroupID.String(),
		Title:             m.FellowshipGroupTitle,
		DateText:          m.FellowshipGroupDateText,
		TimeText:          m.FellowshipGroupTimeText,
		Location:          m.FellowshipGroupLocation,
		Description:       m.FellowshipGroupDescription,
		PosterURL:         m.FellowshipGroupPosterURL,
		IsActive:          m.FellowshipGroupIsActive,
		SortOrder:         m.FellowshipGroupSortOrder,
	}
}
