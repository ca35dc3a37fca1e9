package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/rayto1224/ksbc-web/internals/features/activities/donations/service"
	helper "github.com/rayto1224/ksbc-web/internals/helpers"
)

type DonationWebhookController struct {
	DB *gorm.DB
}

func NewDonationWebhookController(db *gorm.DB) *DonationWebhookController {
	return &DonationWebhookController{DB: db}
}

// 🟡 POST /api/donations/notification
// Payment gateway callback. Unauthenticated by design of the gateway; the
// auth middleware skips this path.
func (ctrl *DonationWebhookController) HandleNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}

	if err := service.HandleDonationStatusWebhook(ctrl.DB, body); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Notification processed", nil)
}
