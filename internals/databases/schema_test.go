package database

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	donationModel "github.com/rayto1224/ksbc-web/internals/features/activities/donations/model"
	eventModel "github.com/rayto1224/ksbc-web/internals/features/activities/events/model"
	fellowshipModel "github.com/rayto1224/ksbc-web/internals/features/contents/fellowship/model"
	homeModel "github.com/rayto1224/ksbc-web/internals/features/contents/home/model"
	newsletterModel "github.com/rayto1224/ksbc-web/internals/features/contents/newsletters/model"
	pageModel "github.com/rayto1224/ksbc-web/internals/features/contents/pages/model"
	worshipModel "github.com/rayto1224/ksbc-web/internals/features/contents/worships/model"
	authModel "github.com/rayto1224/ksbc-web/internals/features/users/auth/model"
	userModel "github.com/rayto1224/ksbc-web/internals/features/users/user/model"
)

// Production schema comes from the SQL scripts under migrations/, but the
// tests build theirs with AutoMigrate on sqlite. Every model must keep its
// gorm tags portable enough for that to work.
func TestAutoMigrateAllModelsOnSQLite(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&authModel.RefreshTokenModel{},
		&authModel.TokenBlacklistModel{},
		&eventModel.EventModel{},
		&eventModel.EventParticipantModel{},
		&donationModel.DonationModel{},
		&worshipModel.WorshipSermonModel{},
		&fellowshipModel.FellowshipGroupModel{},
		&newsletterModel.NewsletterModel{},
		&homeModel.MinistryModel{},
		&homeModel.PrayerModel{},
		&pageModel.PageModel{},
	))

	// A tagged event round-trips through the sqlite text representation.
	event := &eventModel.EventModel{
		EventTitle: "Easter Sunrise Service",
		EventTags:  eventModel.EventTags{"worship", "outdoor"},
	}
	require.NoError(t, db.Create(event).Error)

	var fetched eventModel.EventModel
	require.NoError(t, db.First(&fetched, "event_id = ?", event.EventID).Error)
	require.Equal(t, eventModel.EventTags{"worship", "outdoor"}, fetched.EventTags)
}
