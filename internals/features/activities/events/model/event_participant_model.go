package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Registration statuses, in derivation priority order.
const (
	StatusWithdrawn  = "Withdrawn"
	StatusEventEnded = "Event ended"
	StatusRejected   = "Rejected"
	StatusAccepted   = "Accepted"
)

// EventParticipantModel stores who registered for an event. Email is the main
// unique identifier per event; the user link is optional so guests can
// register too.
type EventParticipantModel struct {
	EventParticipantID      uuid.UUID  `gorm:"column:event_participant_id;primaryKey" json:"event_participant_id"`
	EventParticipantEventID uuid.UUID  `gorm:"column:event_participant_event_id;not null;index" json:"event_participant_event_id"`
	EventParticipantEmail   string     `gorm:"column:event_participant_email;size:255;not null" json:"event_participant_email"`
	EventParticipantUserID  *uuid.UUID `gorm:"column:event_participant_user_id;index" json:"event_participant_user_id,omitempty"`

	EventParticipantFullName  string `gorm:"column:event_participant_full_name;size:255" json:"event_participant_full_name"`
	EventParticipantTelephone string `gorm:"column:event_participant_telephone;size:20"  json:"event_participant_telephone"`

	EventParticipantRegisteredAt   time.Time  `gorm:"column:event_participant_registered_at;autoCreateTime" json:"event_participant_registered_at"`
	EventParticipantWithdrawalDate *time.Time `gorm:"column:event_participant_withdrawal_date" json:"event_participant_withdrawal_date,omitempty"`

	EventParticipantNotes string `gorm:"column:event_participant_notes" json:"event_participant_notes"`

	Event *EventModel `gorm:"foreignKey:EventParticipantEventID;references:EventID" json:"-"`

	// NOTE: unique (event, email) lives in the migration:
	// CREATE UNIQUE INDEX ux_event_participants_event_email
	//   ON event_participants (event_participant_event_id, LOWER(event_participant_email));
}

func (EventParticipantModel) TableName() string {
	return "event_participants"
}

func (p *EventParticipantModel) BeforeCreate(tx *gorm.DB) error {
	if p.EventParticipantID == uuid.Nil {
		p.EventParticipantID = uuid.New()
	}
	return nil
}

func (p *EventParticipantModel) IsMember() bool {
	return p.EventParticipantUserID != nil
}

// RegistrationStatus derives the participant's state from the withdrawal
// date, the event's expiry, and the event's quota, in that priority order.
func (p *EventParticipantModel) RegistrationStatus(event *EventModel) string {
	if p.EventParticipantWithdrawalDate != nil {
		return StatusWithdrawn
	}
	if event.IsExpired() {
		return StatusEventEnded
	}
	if event.QuotaFull() {
		return StatusRejected
	}
	return StatusAccepted
}
