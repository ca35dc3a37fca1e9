package dto

import (
	"time"

	"github.com/rayto1224/ksbc-web/internals/features/contents/newsletters/model"
)

type NewsletterRequest struct {
	Title         string `json:"title" validate:"required,max=200"`
	Slug          string `json:"slug" validate:"required,max=120,lowercase"`
	PublishedDate string `json:"published_date" validate:"omitempty,datetime=2006-01-02"`
	PdfURL        string `json:"pdf_url" validate:"omitempty,url"`
	Description   string `json:"description"`
	IsPublished   *bool  `json:"is_published"`
}

type NewsletterResponse struct {
	NewsletterID  string `json:"newsletter_id"`
	Title         string `json:"title"`
	Slug          string `json:"slug"`
	PublishedDate string `json:"published_date"`
	PdfURL        string `json:"pdf_url"`
	Description   string `json:"description"`
	IsPublished   bool   `json:"is_published"`
}

func (r *NewsletterRequest) ToModel() *model.NewsletterModel {
	date := time.Now()
	if r.PublishedDate != "" {
		if parsed, err := time.Parse("2006-01-02", r.PublishedDate); err == nil {
			date = parsed
		}
	}
	published := true
	if r.IsPublished != nil {
		published = *r.IsPublished
	}
	return &model.NewsletterModel{
		NewsletterTitle:         r.Title,
		NewsletterSlug:          r.Slug,
		NewsletterPublishedDate: date,
		NewsletterPdfURL:        r.PdfURL,
		NewsletterDescription:   r.Description,
		NewsletterIsPublished:   published,
	}
}

func ToNewsletterResponse(m *model.NewsletterModel) *NewsletterResponse {
	return &NewsletterResponse{
		NewsletterID:  m.NewsletterID.String(),
		Title:         m.NewsletterTitle,
		Slug:          m.NewsletterSlug,
		PublishedDate: m.NewsletterPublishedDate.Format("2006-01-02"),
		PdfURL:        m.NewsletterPdfURL,
		Description:   m.NewsletterDescription,
		IsPublished:   m.NewsletterIsPublished,
	}
}
