package dto

import (
	"github.com/rayto1224/ksbc-web/internals/features/activities/events/model"
)

// Registration form from the public site
type EventRegistrationRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FullName  string `json:"full_name" validate:"max=255"`
	Telephone string `json:"telephone" validate:"max=20"`
}

type EventParticipantResponse struct {
	EventParticipantID        string  `json:"event_participant_id"`
	EventParticipantEventID   string  `json:"event_participant_event_id"`
	EventParticipantEmail     string  `json:"event_participant_email"`
	EventParticipantUserID    *string `json:"event_participant_user_id,omitempty"`
	EventParticipantFullName  string  `json:"event_participant_full_name"`
	EventParticipantTelephone string  `json:"event_participant_telephone"`
	RegisteredAt              string  `json:"registered_at"`
	WithdrawalDate            *string `json:"withdrawal_date,omitempty"`
	RegistrationStatus        string  `json:"registration_status"`

	Event *EventResponse `json:"event,omitempty"`
}

// ToEventParticipantResponse renders a participant; event may be nil when the
// caller did not preload it, in which case the status falls back to the
// participant's own fields only.
func ToEventParticipantResponse(p *model.EventParticipantModel, event *model.EventModel) *EventParticipantResponse {
	resp := &EventParticipantResponse{
		EventParticipantID:        p.EventParticipantID.String(),
		EventParticipantEventID:   p.EventParticipantEventID.String(),
		EventParticipantEmail:     p.EventParticipantEmail,
		EventParticipantFullName:  p.EventParticipantFullName,
		EventParticipantTelephone: p.EventParticipantTelephone,
		RegisteredAt:              p.EventParticipantRegisteredAt.Format("2006-01-02 15:04:05"),
	}
	if p.EventParticipantUserID != nil {
		s := p.EventParticipantUserID.String()
		resp.EventParticipantUserID = &s
	}
	if p.EventParticipantWithdrawalDate != nil {
		s := p.EventParticipantWithdrawalDate.Format("2006-01-02")
		resp.WithdrawalDate = &s
	}
	if event != nil {
		resp.RegistrationStatus = p.RegistrationStatus(event)
		resp.Event = ToEventResponse(event)
	} else if p.EventParticipantWithdrawalDate != nil {
		resp.RegistrationStatus = model.StatusWithdrawn
	}
	return resp
}
