package dto

import (
	"time"

	"github.com/rayto1224/ksbc-web/internals/features/contents/worships/model"
)

type WorshipSermonRequest struct {
	SpeakerName string `json:"speaker_name" validate:"required,max=100"`
	Title       string `json:"title" validate:"required,max=200"`
	YoutubeLink string `json:"youtube_link" validate:"required,url"`
	Date        string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type WorshipSermonResponse struct {
	WorshipSermonID string `json:"worship_sermon_id"`
	SpeakerName     string `json:"speaker_name"`
	Title           string `json:"title"`
	YoutubeLink     string `json:"youtube_link"`
	Date            string `json:"date"`
}

func (r *WorshipSermonRequest) ToModel() *model.WorshipSermonModel {
	date := time.Now()
	if r.Date != "" {
		if parsed, err := time.Parse("2006-01-02", r.Date); err == nil {
			date = parsed
		}
	}
	return &model.WorshipSermonModel{
		WorshipSermonSpeakerName: r.SpeakerName,
		WorshipSermonTitle:       r.Title,
		WorshipSermonYoutubeLink: r.YoutubeLink,
		WorshipSermonDate:        date,
	}
}

func ToWorshipSermonResponse(m *model.WorshipSermonModel) *WorshipSermonResponse {
	return &WorshipSermonResponse{
		WorshipSermonID: m.WorshipSermonID.String(),
		SpeakerName:     m.WorshipSermonSpeakerName,
		Title:           m.WorshipSermonTitle,
		YoutubeLink:     m.WorshipSermonYoutubeLink,
		Date:            m.WorshipSermonDate.Format("2006-01-02"),
	}
}
