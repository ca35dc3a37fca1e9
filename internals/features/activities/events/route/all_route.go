package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/rayto1224/ksbc-web/internals/features/activities/events/controller"
	"github.com/rayto1224/ksbc-web/internals/features/activities/events/service"
	"github.com/rayto1224/ksbc-web/internals/middlewares"
)

func newRegistrationService(db *gorm.DB) *service.RegistrationService {
	var mailer service.Mailer
	if m := service.NewSMTPMailerFromEnv(); m != nil {
		mailer = m
	}
	return service.NewRegistrationService(db, mailer)
}

// EventAllRoutes mounts the public event endpoints. Registration is open to
// guests; the optional auth middleware on the group lets a logged-in account
// take precedence over the submitted email.
func EventAllRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEventUserController(db, newRegistrationService(db))

	events := public.Group("/events")
	events.Get("/", ctrl.ListUpcomingEvents)
	events.Get("/:id", ctrl.GetEventByID)
	events.Post("/:id/register", middlewares.EventRegistrationRateLimiter(), ctrl.RegisterForEvent)
}
