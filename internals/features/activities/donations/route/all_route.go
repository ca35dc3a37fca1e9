package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/rayto1224/ksbc-web/internals/features/activities/donations/controller"
)

// DonationWebhookRoutes mounts the payment-gateway callback directly under
// /api so the gateway can reach it without a token.
func DonationWebhookRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDonationWebhookController(db)

	api.Post("/donations/notification", ctrl.HandleNotification)
}
