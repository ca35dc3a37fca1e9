package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/rayto1224/ksbc-web/internals/features/activities/events/controller"
)

// EventUserRoutes mounts dashboard endpoints under the authenticated group.
func EventUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEventUserController(db, newRegistrationService(db))

	registrations := user.Group("/registrations")
	registrations.Get("/", ctrl.MyRegistrations)
	registrations.Post("/:id/withdraw", ctrl.WithdrawRegistration)
}
