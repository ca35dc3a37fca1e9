package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/rayto1224/ksbc-web/internals/features/activities/donations/controller"
)

// DonationAdminRoutes mounts the ledger and reporting under the admin group.
func DonationAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDonationAdminController(db)

	donations := admin.Group("/donations")
	donations.Post("/", ctrl.CreateLedgerEntry)
	donations.Get("/", ctrl.ListDonations)
	donations.Get("/report", ctrl.Report)
	donations.Put("/:id", ctrl.UpdateDonation)
	donations.Delete("/:id", ctrl.DeleteDonation)
}
