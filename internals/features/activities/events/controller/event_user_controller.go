package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rayto1224/ksbc-web/internals/features/activities/events/dto"
	"github.com/rayto1224/ksbc-web/internals/features/activities/events/model"
	"github.com/rayto1224/ksbc-web/internals/features/activities/events/service"
	helper "github.com/rayto1224/ksbc-web/internals/helpers"
)

type EventUserController struct {
	DB      *gorm.DB
	Service *service.RegistrationService
}

func NewEventUserController(db *gorm.DB, svc *service.RegistrationService) *EventUserController {
	return &EventUserController{DB: db, Service: svc}
}

// 🟢 GET /api/public/events
// Upcoming and announcement events, featured first.
func (ctrl *EventUserController) ListUpcomingEvents(c *fiber.Ctx) error {
	params := helper.ParseFiber(c, "start_date", "desc", helper.DefaultOpts)
	today := time.Now().Truncate(24 * time.Hour)

	base := ctrl.DB.Model(&model.EventModel{}).
		Where("event_is_active = TRUE").
		Where("event_is_announcement = TRUE OR event_start_date >= ? OR event_application_deadline IS NULL", today)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch events")
	}

	var events []model.EventModel
	if err := base.
		Order("event_is_featured DESC, event_is_announcement ASC, event_start_date DESC NULLS LAST").
		Limit(params.Limit()).Offset(params.Offset()).
		Find(&events).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch events")
	}

	responses := make([]*dto.EventResponse, 0, len(events))
	for i := range events {
		responses = append(responses, dto.ToEventResponse(&events[i]))
	}

	return helper.Success(c, "Events fetched", fiber.Map{
		"events": responses,
		"meta":   helper.BuildMeta(total, params),
	})
}

// 🟢 GET /api/public/events/:id
// Detail page data; announcements have no detail page.
func (ctrl *EventUserController) GetEventByID(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var event model.EventModel
	if err := ctrl.DB.
		First(&event, "event_id = ? AND event_is_announcement = FALSE", eventID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Event not found")
	}

	alreadyRegistered := false
	if email, ok := c.Locals("user_email").(string); ok && email != "" {
		var count int64
		ctrl.DB.Model(&model.EventParticipantModel{}).
			Where("event_participant_event_id = ? AND LOWER(event_participant_email) = LOWER(?)", event.EventID, email).
			Count(&count)
		alreadyRegistered = count > 0
	}

	return helper.Success(c, "Event fetched", fiber.Map{
		"event":              dto.ToEventResponse(&event),
		"already_registered": alreadyRegistered,
	})
}

// 🟢 POST /api/public/events/:id/register
// Guests may register; a logged-in account overrides the submitted email.
func (ctrl *EventUserController) RegisterForEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var req dto.EventRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var authed *service.AuthedIdentity
	if idStr, ok := c.Locals("user_id").(string); ok && idStr != "" {
		if email, ok := c.Locals("user_email").(string); ok && email != "" {
			if uid, err := uuid.Parse(idStr); err == nil {
				authed = &service.AuthedIdentity{UserID: uid, Email: email}
			}
		}
	}

	participant, warning, err := ctrl.Service.Register(c.UserContext(), eventID, service.RegisterInput{
		Email:     req.Email,
		FullName:  req.FullName,
		Telephone: req.Telephone,
	}, authed)
	if err != nil {
		return registrationErrorResponse(c, err)
	}

	resp := dto.ToEventParticipantResponse(participant, participant.Event)
	if warning != "" {
		return helper.SuccessWithWarning(c, fiber.StatusCreated, "Registration successful! Check your email.", warning, resp)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registration successful! Check your email.", resp)
}

// 🟢 GET /api/u/registrations
// Dashboard: the caller's registrations by account email, newest first.
func (ctrl *EventUserController) MyRegistrations(c *fiber.Ctx) error {
	email, err := helper.GetUserEmail(c)
	if err != nil {
		return err
	}

	var participants []model.EventParticipantModel
	if err := ctrl.DB.
		Preload("Event").
		Where("LOWER(event_participant_email) = LOWER(?)", email).
		Order("event_participant_registered_at DESC").
		Find(&participants).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch registrations")
	}

	responses := make([]*dto.EventParticipantResponse, 0, len(participants))
	for i := range participants {
		responses = append(responses, dto.ToEventParticipantResponse(&participants[i], participants[i].Event))
	}

	return helper.Success(c, "Registrations fetched", responses)
}

// 🟢 POST /api/u/registrations/:id/withdraw
func (ctrl *EventUserController) WithdrawRegistration(c *fiber.Ctx) error {
	participantID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid registration id")
	}
	email, err := helper.GetUserEmail(c)
	if err != nil {
		return err
	}

	outcome, err := ctrl.Service.Withdraw(c.UserContext(), participantID, email)
	switch {
	case errors.Is(err, service.ErrParticipantNotFound):
		return helper.Error(c, fiber.StatusNotFound, "Registration not found")
	case errors.Is(err, service.ErrEventEnded):
		return helper.Error(c, fiber.StatusConflict, "Cannot withdraw from an expired event")
	case err != nil:
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to withdraw")
	}

	if outcome == service.OutcomeAlreadyWithdrawn {
		return helper.Success(c, "You have already withdrawn from this event.", nil)
	}
	return helper.Success(c, "Successfully withdrawn.", nil)
}

func registrationErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrEventNotFound):
		return helper.Error(c, fiber.StatusNotFound, "Event not found")
	case errors.Is(err, service.ErrRegistrationClosed):
		return helper.Error(c, fiber.StatusConflict, "This event registration has closed.")
	case errors.Is(err, service.ErrEventFull):
		return helper.Error(c, fiber.StatusConflict, "Sorry, this event is fully booked.")
	case errors.Is(err, service.ErrAlreadyRegistered):
		return helper.Error(c, fiber.StatusConflict, "This email is already registered for this event.")
	case errors.Is(err, service.ErrInvalidEmail):
		return helper.Error(c, fiber.StatusBadRequest, "Please provide a valid email address.")
	default:
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to register")
	}
}
