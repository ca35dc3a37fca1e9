package dto

import (
	"encoding/json"

	"gorm.io/datatypes"

	"github.com/rayto1224/ksbc-web/internals/features/contents/pages/model"
)

type PageRequest struct {
	Slug        string          `json:"slug" validate:"required,max=100,lowercase"`
	Title       string          `json:"title" validate:"required,max=200"`
	Sections    json.RawMessage `json:"sections"`
	IsPublished *bool           `json:"is_published"`
}

type PageResponse struct {
	PageID      string          `json:"page_id"`
	Slug        string          `json:"slug"`
	Title       string          `json:"title"`
	Sections    json.RawMessage `json:"sections"`
	IsPublished bool            `json:"is_published"`
}

func (r *PageRequest) ToModel() *model.PageModel {
	sections := datatypes.JSON([]byte("[]"))
	if len(r.Sections) > 0 {
		sections = datatypes.JSON(r.Sections)
	}
	published := true
	if r.IsPublished != nil {
		published = *r.IsPublished
	}
	return &model.PageModel{
		PageSlug:        r.Slug,
		PageTitle:       r.Title,
		PageSections:    sections,
		PageIsPublished: published,
	}
}

func ToPageResponse(m *model.PageModel) *PageResponse {
	sections := json.RawMessage(m.PageSections)
	if len(sections) == 0 {
		sections = json.RawMessage("[]")
	}
	return &PageResponse{
		PageID:      m.PageID.String(),
		Slug:        m.PageSlug,
		Title:       m.PageTitle,
		Sections:    sections,
		IsPublished: m.PageIsPublished,
	}
}
