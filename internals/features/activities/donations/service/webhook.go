package service

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/rayto1224/ksbc-web/internals/features/activities/donations/model"
)

// HandleDonationStatusWebhook processes a Midtrans payment notification.
func HandleDonationStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)
	if !ok1 || !ok2 {
		log.Println("[ERROR] incomplete webhook payload:", body)
		return fmt.Errorf("invalid payload")
	}

	var donation model.DonationModel
	if err := db.Where("donation_order_id = ?", orderID).First(&donation).Error; err != nil {
		log.Println("[ERROR] donation not found for webhook:", err)
		return fmt.Errorf("donation with order_id %s not found", orderID)
	}

	switch status {
	case "capture", "settlement":
		now := time.Now()
		donation.DonationStatus = model.StatusPaid
		donation.DonationPaidAt = &now
	case "expire":
		donation.DonationStatus = model.StatusExpired
	case "cancel", "deny":
		donation.DonationStatus = model.StatusCanceled
	default:
		log.Println("[INFO] webhook status ignored:", status)
		return nil
	}

	if err := db.Save(&donation).Error; err != nil {
		log.Println("[ERROR] save donation status:", err)
		return err
	}
	return nil
}
