package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventDto "github.com/rayto1224/ksbc-web/internals/features/activities/events/dto"
	eventModel "github.com/rayto1224/ksbc-web/internals/features/activities/events/model"
	"github.com/rayto1224/ksbc-web/internals/features/contents/home/dto"
	"github.com/rayto1224/ksbc-web/internals/features/contents/home/model"
	helper "github.com/rayto1224/ksbc-web/internals/helpers"
)

type HomeController struct {
	DB *gorm.DB
}

func NewHomeController(db *gorm.DB) *HomeController {
	return &HomeController{DB: db}
}

// 🟢 GET /api/public/home
// Landing-page feed in one round trip: recent ministry highlights, active
// prayer items with urgent ones first, and the next few upcoming events.
func (ctrl *HomeController) GetHomeFeed(c *fiber.Ctx) error {
	var ministries []model.MinistryModel
	if err := ctrl.DB.
		Where("ministry_is_active = ?", true).
		Order("ministry_display_order ASC, ministry_activity_date DESC").
		Limit(5).
		Find(&ministries).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch ministries")
	}

	var prayers []model.PrayerModel
	if err := ctrl.DB.
		Where("prayer_is_active = ?", true).
		Order("prayer_is_urgent DESC, prayer_display_date DESC").
		Find(&prayers).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch prayers")
	}

	today := time.Now().Format("2006-01-02")
	var events []eventModel.EventModel
	if err := ctrl.DB.
		Where("event_is_active = ? AND event_is_announcement = ? AND event_start_date >= ?", true, false, today).
		Order("event_start_date ASC").
		Limit(3).
		Find(&events).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch events")
	}

	ministryResponses := make([]*dto.MinistryResponse, 0, len(ministries))
	for i := range ministries {
		ministryResponses = append(ministryResponses, dto.ToMinistryResponse(&ministries[i]))
	}
	prayerResponses := make([]*dto.PrayerResponse, 0, len(prayers))
	for i := range prayers {
		prayerResponses = append(prayerResponses, dto.ToPrayerResponse(&prayers[i]))
	}
	eventResponses := make([]*eventDto.EventResponse, 0, len(events))
	for i := range events {
		eventResponses = append(eventResponses, eventDto.ToEventResponse(&events[i]))
	}

	return helper.Success(c, "Home feed fetched", fiber.Map{
		"ministries":      ministryResponses,
		"prayers":         prayerResponses,
		"upcoming_events": eventResponses,
	})
}
