package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/rayto1224/ksbc-web/internals/features/activities/donations/model"
)

// Admin ledger entry (offline gift recorded by hand)
type DonationLedgerRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Amount float64   `json:"amount" validate:"gte=0"`
	Date   string    `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Notes  string    `json:"notes"`
}

// Online gift from a logged-in member
type OnlineGiftRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Notes  string  `json:"notes"`
}

type DonationResponse struct {
	DonationID     string  `json:"donation_id"`
	DonationUserID string  `json:"donation_user_id"`
	Amount         float64 `json:"amount"`
	Date           string  `json:"date"`
	Notes          string  `json:"notes"`
	Status         string  `json:"status"`
	PaidAt         *string `json:"paid_at,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

func (r *DonationLedgerRequest) ToModel() *model.DonationModel {
	date := time.Now()
	if r.Date != "" {
		if parsed, err := time.Parse("2006-01-02", r.Date); err == nil {
			date = parsed
		}
	}
	return &model.DonationModel{
		DonationUserID: r.UserID,
		DonationAmount: r.Amount,
		DonationDate:   date,
		DonationNotes:  r.Notes,
		DonationStatus: model.StatusRecorded,
	}
}

func ToDonationResponse(m *model.DonationModel) *DonationResponse {
	resp := &DonationResponse{
		DonationID:     m.DonationID.String(),
		DonationUserID: m.DonationUserID.String(),
		Amount:         m.DonationAmount,
		Date:           m.DonationDate.Format("2006-01-02"),
		Notes:          m.DonationNotes,
		Status:         m.DonationStatus,
		CreatedAt:      m.DonationCreatedAt.Format("2006-01-02 15:04:05"),
	}
	if m.DonationPaidAt != nil {
		s := m.DonationPaidAt.Format("2006-01-02 15:04:05")
		resp.PaidAt = &s
	}
	return resp
}
