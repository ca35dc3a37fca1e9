package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rayto1224/ksbc-web/internals/features/activities/donations/model"
)

func setupWebhookDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.DonationModel{}))
	return db
}

func pendingDonation(t *testing.T, db *gorm.DB, orderID string) *model.DonationModel {
	t.Helper()
	d := &model.DonationModel{
		DonationUserID:  uuid.New(),
		DonationAmount:  100,
		DonationDate:    time.Now(),
		DonationStatus:  model.StatusPending,
		DonationOrderID: &orderID,
	}
	require.NoError(t, db.Create(d).Error)
	return d
}

func TestWebhookSettlementMarksPaid(t *testing.T) {
	db := setupWebhookDB(t)
	d := pendingDonation(t, db, "DONATION-1001")

	err := HandleDonationStatusWebhook(db, map[string]interface{}{
		"order_id":           "DONATION-1001",
		"transaction_status": "settlement",
	})
	require.NoError(t, err)

	var reloaded model.DonationModel
	require.NoError(t, db.First(&reloaded, "donation_id = ?", d.DonationID).Error)
	assert.Equal(t, model.StatusPaid, reloaded.DonationStatus)
	assert.NotNil(t, reloaded.DonationPaidAt)
	assert.True(t, reloaded.Counted(), "paid gifts count toward the report")
}

func TestWebhookExpireAndCancel(t *testing.T) {
	db := setupWebhookDB(t)

	d1 := pendingDonation(t, db, "DONATION-2001")
	require.NoError(t, HandleDonationStatusWebhook(db, map[string]interface{}{
		"order_id": "DONATION-2001", "transaction_status": "expire",
	}))
	var r1 model.DonationModel
	require.NoError(t, db.First(&r1, "donation_id = ?", d1.DonationID).Error)
	assert.Equal(t, model.StatusExpired, r1.DonationStatus)
	assert.False(t, r1.Counted())

	d2 := pendingDonation(t, db, "DONATION-2002")
	require.NoError(t, HandleDonationStatusWebhook(db, map[string]interface{}{
		"order_id": "DONATION-2002", "transaction_status": "deny",
	}))
	var r2 model.DonationModel
	require.NoError(t, db.First(&r2, "donation_id = ?", d2.DonationID).Error)
	assert.Equal(t, model.StatusCanceled, r2.DonationStatus)
}

func TestWebhookRejectsBadPayloads(t *testing.T) {
	db := setupWebhookDB(t)

	assert.Error(t, HandleDonationStatusWebhook(db, map[string]interface{}{"order_id": "x"}),
		"missing transaction_status")
	assert.Error(t, HandleDonationStatusWebhook(db, map[string]interface{}{
		"order_id": "NO-SUCH-ORDER", "transaction_status": "settlement",
	}))

	// Unknown statuses are acknowledged and ignored.
	pendingDonation(t, db, "DONATION-3001")
	assert.NoError(t, HandleDonationStatusWebhook(db, map[string]interface{}{
		"order_id": "DONATION-3001", "transaction_status": "pending",
	}))
}
