package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rayto1224/ksbc-web/internals/features/activities/events/dto"
	"github.com/rayto1224/ksbc-web/internals/features/activities/events/model"
	helper "github.com/rayto1224/ksbc-web/internals/helpers"
)

type EventAdminController struct {
	DB *gorm.DB
}

func NewEventAdminController(db *gorm.DB) *EventAdminController {
	return &EventAdminController{DB: db}
}

var validate = validator.New()

// 🟢 POST /api/a/events
func (ctrl *EventAdminController) CreateEvent(c *fiber.Ctx) error {
	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	event := req.ToModel()
	if err := ctrl.DB.Create(event).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create event")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Event created", dto.ToEventResponse(event))
}

// 🟢 GET /api/a/events
func (ctrl *EventAdminController) ListEvents(c *fiber.Ctx) error {
	params := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	orderClause, err := params.SafeOrderClause(map[string]string{
		"created_at": "event_created_at",
		"start_date": "event_start_date",
		"title":      "event_title",
	}, "created_at")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid sort key")
	}

	var total int64
	if err := ctrl.DB.Model(&model.EventModel{}).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch events")
	}

	var events []model.EventModel
	if err := ctrl.DB.Order(orderClause).
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

// 🟡 PUT /api/a/events/:id
func (ctrl *EventAdminController) UpdateEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var event model.EventModel
	if err := ctrl.DB.First(&event, "event_id = ?", eventID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Event not found")
	}

	updated := req.ToModel()
	updated.EventID = event.EventID

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		// quota_left is contended with the registration service, so it never
		// goes through a read-modify-write here. The capacity delta is applied
		// to the live counter in one conditional update: growing capacity
		// releases the new spots, shrinking clamps between 0 and the new total.
		if err := tx.Model(&event).Select("*").
			Omit("event_id", "event_created_at", "event_deleted_at", "event_quota_total", "event_quota_left").
			Updates(updated).Error; err != nil {
			return err
		}

		if updated.EventUnlimitedQuota {
			return tx.Exec(
				"UPDATE events SET event_quota_total = ?, event_quota_left = 0 WHERE event_id = ?",
				updated.EventQuotaTotal, eventID,
			).Error
		}
		newTotal := updated.EventQuotaTotal
		return tx.Exec(`UPDATE events SET
				event_quota_left = CASE
					WHEN event_quota_left + ? - event_quota_total < 0 THEN 0
					WHEN event_quota_left + ? - event_quota_total > ? THEN ?
					ELSE event_quota_left + ? - event_quota_total
				END,
				event_quota_total = ?
			WHERE event_id = ?`,
			newTotal, newTotal, newTotal, newTotal, newTotal, newTotal, eventID,
		).Error
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update event")
	}

	var fresh model.EventModel
	if err := ctrl.DB.First(&fresh, "event_id = ?", eventID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update event")
	}

	return helper.Success(c, "Event updated", dto.ToEventResponse(&fresh))
}

// 🔴 DELETE /api/a/events/:id
// Hard delete; the registration list goes with the event.
func (ctrl *EventAdminController) DeleteEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid event id")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_participant_event_id = ?", eventID).
			Delete(&model.EventParticipantModel{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&model.EventModel{}, "event_id = ?", eventID).Error
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete event")
	}

	return helper.Success(c, "Event deleted", nil)
}

// 🟢 GET /api/a/events/:id/participants
func (ctrl *EventAdminController) ListParticipantsByEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var event model.EventModel
	if err := ctrl.DB.First(&event, "event_id = ?", eventID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Event not found")
	}

	var participants []model.EventParticipantModel
	if err := ctrl.DB.
		Where("event_participant_event_id = ?", eventID).
		Order("event_participant_registered_at DESC").
		Find(&participants).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch participants")
	}

	responses := make([]*dto.EventParticipantResponse, 0, len(participants))
	for i := range participants {
		responses = append(responses, dto.ToEventParticipantResponse(&participants[i], &event))
	}

	return helper.Success(c, "Participants fetched", responses)
}
