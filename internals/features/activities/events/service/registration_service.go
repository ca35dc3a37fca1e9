package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rayto1224/ksbc-web/internals/features/activities/events/model"
)

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrRegistrationClosed  = errors.New("registration closed")
	ErrEventFull           = errors.New("fully booked")
	ErrAlreadyRegistered   = errors.New("already registered")
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrParticipantNotFound = errors.New("registration not found")
	ErrEventEnded          = errors.New("cannot withdraw from an expired event")
)

var validate = validator.New()

// AuthedIdentity is the authenticated account attached to a request, if any.
// Its email always overrides a form-submitted one so the dashboard can find
// every registration made while logged in.
type AuthedIdentity struct {
	UserID uuid.UUID
	Email  string
}

type RegisterInput struct {
	Email     string
	FullName  string
	Telephone string
	Notes     string
}

// WithdrawOutcome distinguishes a fresh withdrawal from the idempotent
// repeat case, which is informational rather than an error.
type WithdrawOutcome int

const (
	OutcomeWithdrawn WithdrawOutcome = iota
	OutcomeAlreadyWithdrawn
)

type RegistrationService struct {
	DB     *gorm.DB
	Mailer Mailer
}

func NewRegistrationService(db *gorm.DB, mailer Mailer) *RegistrationService {
	return &RegistrationService{DB: db, Mailer: mailer}
}

// Register validates the event state and creates a participant. Preconditions
// are checked in order and each is a hard rejection: event exists and is not
// an announcement; not expired; quota available; (event, email) not taken.
//
// The quota decrement is a single conditional write so two registrations
// racing for the last spot can never drive the counter negative. The returned
// warning is non-empty when the confirmation mail failed; that never rolls
// back the registration.
func (s *RegistrationService) Register(ctx context.Context, eventID uuid.UUID, in RegisterInput, authed *AuthedIdentity) (*model.EventParticipantModel, string, error) {
	var event model.EventModel
	if err := s.DB.WithContext(ctx).
		First(&event, "event_id = ? AND event_is_announcement = FALSE", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// announcements do not accept registrations and are not
			// distinguishable from missing events here
			return nil, "", ErrEventNotFound
		}
		return nil, "", err
	}

	if event.IsExpired() {
		return nil, "", ErrRegistrationClosed
	}
	if event.QuotaFull() {
		return nil, "", ErrEventFull
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if authed != nil {
		email = strings.ToLower(strings.TrimSpace(authed.Email))
	}
	if err := validate.Var(email, "required,email"); err != nil {
		return nil, "", ErrInvalidEmail
	}

	var count int64
	if err := s.DB.WithContext(ctx).Model(&model.EventParticipantModel{}).
		Where("event_participant_event_id = ? AND LOWER(event_participant_email) = ?", event.EventID, email).
		Count(&count).Error; err != nil {
		return nil, "", err
	}
	if count > 0 {
		return nil, "", ErrAlreadyRegistered
	}

	participant := &model.EventParticipantModel{
		EventParticipantEventID:   event.EventID,
		EventParticipantEmail:     email,
		EventParticipantFullName:  strings.TrimSpace(in.FullName),
		EventParticipantTelephone: strings.TrimSpace(in.Telephone),
		EventParticipantNotes:     in.Notes,
	}
	if authed != nil {
		uid := authed.UserID
		participant.EventParticipantUserID = &uid
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if !event.EventUnlimitedQuota {
			// Guarded conditional decrement, never read-modify-write; losing
			// the race for the last spot surfaces as fully booked.
			res := tx.Exec(
				"UPDATE events SET event_quota_left = event_quota_left - 1 WHERE event_id = ? AND event_quota_left > 0",
				event.EventID,
			)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrEventFull
			}
		}

		if err := tx.Create(participant).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrAlreadyRegistered
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	// Re-read so quota reflects the true post-decrement state.
	if err := s.DB.WithContext(ctx).First(&event, "event_id = ?", event.EventID).Error; err == nil {
		participant.Event = &event
	}

	warning := ""
	if s.Mailer != nil {
		if err := s.Mailer.SendRegistrationConfirmation(&event, participant); err != nil {
			log.Printf("[WARN] confirmation mail to %s failed: %v", participant.EventParticipantEmail, err)
			warning = "Registration saved but the confirmation email could not be sent"
		}
	}

	return participant, warning, nil
}

// Withdraw sets the withdrawal date exactly once and, for finite-quota
// events, returns the spot with an increment clamped at the event's capacity.
// Ownership is matched by email (guest registrations may predate account
// linkage); a mismatch is reported as not found.
func (s *RegistrationService) Withdraw(ctx context.Context, participantID uuid.UUID, identityEmail string) (WithdrawOutcome, error) {
	email := strings.ToLower(strings.TrimSpace(identityEmail))

	var participant model.EventParticipantModel
	if err := s.DB.WithContext(ctx).
		First(&participant, "event_participant_id = ? AND LOWER(event_participant_email) = ?", participantID, email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrParticipantNotFound
		}
		return 0, err
	}

	if participant.EventParticipantWithdrawalDate != nil {
		return OutcomeAlreadyWithdrawn, nil
	}

	var event model.EventModel
	if err := s.DB.WithContext(ctx).
		Unscoped().First(&event, "event_id = ?", participant.EventParticipantEventID).Error; err != nil {
		return 0, err
	}
	if event.IsExpired() {
		return 0, ErrEventEnded
	}

	today := model.Today()

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Set-once guard: a concurrent withdrawal loses here and is treated
		// as the idempotent repeat case.
		res := tx.Model(&model.EventParticipantModel{}).
			Where("event_participant_id = ? AND event_participant_withdrawal_date IS NULL", participantID).
			Update("event_participant_withdrawal_date", today)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errAlreadyWithdrawnRace
		}

		if !event.EventUnlimitedQuota {
			// Clamped at capacity so double-withdrawals or an admin capacity
			// edit can never inflate the counter.
			if err := tx.Exec(
				"UPDATE events SET event_quota_left = event_quota_left + 1 WHERE event_id = ? AND event_quota_left < event_quota_total",
				event.EventID,
			).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, errAlreadyWithdrawnRace) {
		return OutcomeAlreadyWithdrawn, nil
	}
	if err != nil {
		return 0, err
	}

	return OutcomeWithdrawn, nil
}

var errAlreadyWithdrawnRace = errors.New("already withdrawn")

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") || // postgres 23505
		strings.Contains(msg, "UNIQUE constraint failed") // sqlite (tests)
}
