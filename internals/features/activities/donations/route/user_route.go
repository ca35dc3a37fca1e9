package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/rayto1224/ksbc-web/internals/features/activities/donations/controller"
)

// DonationUserRoutes mounts giving-history and online-gift endpoints under
// the authenticated group.
func DonationUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDonationUserController(db)

	donations := user.Group("/donations")
	donations.Get("/", ctrl.MyDonations)
	donations.Post("/", ctrl.CreateOnlineGift)
}
