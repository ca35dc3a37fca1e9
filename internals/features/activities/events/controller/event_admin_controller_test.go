package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rayto1224/ksbc-web/internals/features/activities/events/dto"
	"github.com/rayto1224/ksbc-web/internals/features/activities/events/model"
)

func setupAdminApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&_pragma=busy_timeout(5000)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.EventModel{}, &model.EventParticipantModel{}))
	t.Cleanup(func() {
		db.Exec("DELETE FROM event_participants")
		db.Exec("DELETE FROM events")
	})

	ctrl := NewEventAdminController(db)
	app := fiber.New()
	app.Put("/api/a/events/:id", ctrl.UpdateEvent)
	app.Delete("/api/a/events/:id", ctrl.DeleteEvent)
	return app, db
}

func seedEvent(t *testing.T, db *gorm.DB, total, left int) *model.EventModel {
	t.Helper()
	deadline := time.Now().AddDate(0, 0, 7)
	event := &model.EventModel{
		EventTitle:               "Christmas Carol Night",
		EventIsActive:            true,
		EventApplicationDeadline: &deadline,
		EventQuotaTotal:          total,
		EventQuotaLeft:           left,
	}
	require.NoError(t, db.Create(event).Error)
	return event
}

func putEvent(t *testing.T, app *fiber.App, id uuid.UUID, req dto.EventRequest) *http.Response {
	t.Helper()
	body, err := json.Marshal(req)
	require.NoError(t, err)
	httpReq := httptest.NewRequest(http.MethodPut, "/api/a/events/"+id.String(), bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(httpReq, -1)
	require.NoError(t, err)
	return resp
}

func TestUpdateEventGrowingCapacityReleasesSpots(t *testing.T) {
	app, db := setupAdminApp(t)
	// 7 of 10 spots taken.
	event := seedEvent(t, db, 10, 3)

	resp := putEvent(t, app, event.EventID, dto.EventRequest{
		EventTitle:      "Christmas Carol Night",
		EventIsActive:   true,
		EventQuotaTotal: 20,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var fresh model.EventModel
	require.NoError(t, db.First(&fresh, "event_id = ?", event.EventID).Error)
	assert.Equal(t, 20, fresh.EventQuotaTotal)
	assert.Equal(t, 13, fresh.EventQuotaLeft, "the 10 added spots must become available")
}

func TestUpdateEventShrinkingCapacityClamps(t *testing.T) {
	app, db := setupAdminApp(t)

	t.Run("clamps to the new total", func(t *testing.T) {
		event := seedEvent(t, db, 10, 10)

		resp := putEvent(t, app, event.EventID, dto.EventRequest{
			EventTitle:      "Christmas Carol Night",
			EventIsActive:   true,
			EventQuotaTotal: 4,
		})
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var fresh model.EventModel
		require.NoError(t, db.First(&fresh, "event_id = ?", event.EventID).Error)
		assert.Equal(t, 4, fresh.EventQuotaTotal)
		assert.Equal(t, 4, fresh.EventQuotaLeft)
	})

	t.Run("never goes below zero", func(t *testing.T) {
		// 7 taken, 3 left; cutting capacity to 5 leaves it oversubscribed.
		event := seedEvent(t, db, 10, 3)

		resp := putEvent(t, app, event.EventID, dto.EventRequest{
			EventTitle:      "Christmas Carol Night",
			EventIsActive:   true,
			EventQuotaTotal: 5,
		})
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var fresh model.EventModel
		require.NoError(t, db.First(&fresh, "event_id = ?", event.EventID).Error)
		assert.Equal(t, 5, fresh.EventQuotaTotal)
		assert.Equal(t, 0, fresh.EventQuotaLeft)
	})
}

func TestUpdateEventKeepsCounterWhenCapacityUnchanged(t *testing.T) {
	app, db := setupAdminApp(t)
	event := seedEvent(t, db, 10, 6)

	// An edit that only touches copy must not disturb the live counter.
	resp := putEvent(t, app, event.EventID, dto.EventRequest{
		EventTitle:      "Christmas Carol Night and Supper",
		EventIsActive:   true,
		EventQuotaTotal: 10,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var fresh model.EventModel
	require.NoError(t, db.First(&fresh, "event_id = ?", event.EventID).Error)
	assert.Equal(t, "Christmas Carol Night and Supper", fresh.EventTitle)
	assert.Equal(t, 10, fresh.EventQuotaTotal)
	assert.Equal(t, 6, fresh.EventQuotaLeft)
}

func TestDeleteEventRemovesRegistrations(t *testing.T) {
	app, db := setupAdminApp(t)
	event := seedEvent(t, db, 10, 8)

	for _, email := range []string{"alice@example.com", "bob@example.com"} {
		p := &model.EventParticipantModel{
			EventParticipantEventID:  event.EventID,
			EventParticipantEmail:    email,
			EventParticipantFullName: "Member",
		}
		require.NoError(t, db.Create(p).Error)
	}

	httpReq := httptest.NewRequest(http.MethodDelete, "/api/a/events/"+event.EventID.String(), nil)
	resp, err := app.Test(httpReq, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var events int64
	require.NoError(t, db.Unscoped().Model(&model.EventModel{}).Where("event_id = ?", event.EventID).Count(&events).Error)
	assert.Zero(t, events, "the event row must be gone for good")

	var participants int64
	require.NoError(t, db.Model(&model.EventParticipantModel{}).
		Where("event_participant_event_id = ?", event.EventID).Count(&participants).Error)
	assert.Zero(t, participants, "registrations must not outlive their event")
}
