package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/rayto1224/ksbc-web/internals/features/activities/events/controller"
)

// EventAdminRoutes mounts event management under the admin group.
func EventAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEventAdminController(db)

	events := admin.Group("/events")
	events.Post("/", ctrl.CreateEvent)
	events.Get("/", ctrl.ListEvents)
	events.Put("/:id", ctrl.UpdateEvent)
	events.Delete("/:id", ctrl.DeleteEvent)
	events.Get("/:id/participants", ctrl.ListParticipantsByEvent)
}
