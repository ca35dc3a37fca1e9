package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rayto1224/ksbc-web/internals/features/activities/events/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&_pragma=busy_timeout(5000)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps the shared in-memory database alive and
	// serializes concurrent writers the way tests need.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.EventModel{}, &model.EventParticipantModel{}))
	t.Cleanup(func() {
		db.Exec("DELETE FROM event_participants")
		db.Exec("DELETE FROM events")
	})
	return db
}

func newOpenEvent(t *testing.T, db *gorm.DB, quota int) *model.EventModel {
	t.Helper()
	deadline := time.Now().AddDate(0, 0, 7)
	start := time.Now().AddDate(0, 0, 14)
	event := &model.EventModel{
		EventTitle:               "Summer Retreat",
		EventIsActive:            true,
		EventStartDate:           &start,
		EventApplicationDeadline: &deadline,
		EventQuotaTotal:          quota,
		EventQuotaLeft:           quota,
	}
	require.NoError(t, db.Create(event).Error)
	return event
}

type mailerSpy struct {
	calls int
	fail  bool
}

func (m *mailerSpy) SendRegistrationConfirmation(event *model.EventModel, p *model.EventParticipantModel) error {
	m.calls++
	if m.fail {
		return errors.New("smtp unreachable")
	}
	return nil
}

func TestRegisterHappyPath(t *testing.T) {
	db := setupTestDB(t)
	event := newOpenEvent(t, db, 5)
	spy := &mailerSpy{}
	svc := NewRegistrationService(db, spy)

	p, warning, err := svc.Register(context.Background(), event.EventID, RegisterInput{
		Email:    "Alice@Example.COM",
		FullName: "Alice Chan",
	}, nil)
	require.NoError(t, err)
	assert.Empty(t, warning)
	assert.Equal(t, "alice@example.com", p.EventParticipantEmail, "email is normalized")
	assert.Equal(t, 1, spy.calls)

	var reloaded model.EventModel
	require.NoError(t, db.First(&reloaded, "event_id = ?", event.EventID).Error)
	assert.Equal(t, 4, reloaded.EventQuotaLeft)
}

func TestRegisterMailFailureIsWarningOnly(t *testing.T) {
	db := setupTestDB(t)
	event := newOpenEvent(t, db, 5)
	svc := NewRegistrationService(db, &mailerSpy{fail: true})

	p, warning, err := svc.Register(context.Background(), event.EventID, RegisterInput{
		Email: "bob@example.com",
	}, nil)
	require.NoError(t, err, "mail failure never rolls back the registration")
	assert.NotEmpty(t, warning)
	assert.NotNil(t, p)

	var count int64
	db.Model(&model.EventParticipantModel{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestRegisterPreconditions(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRegistrationService(db, nil)
	ctx := context.Background()

	t.Run("unknown event", func(t *testing.T) {
		_, _, err := svc.Register(ctx, uuid.New(), RegisterInput{Email: "a@b.com"}, nil)
		assert.ErrorIs(t, err, ErrEventNotFound)
	})

	t.Run("announcement rejects registration", func(t *testing.T) {
		deadline := time.Now().AddDate(0, 0, 7)
		ann := &model.EventModel{
			EventTitle:               "Building Closure",
			EventIsAnnouncement:      true,
			EventApplicationDeadline: &deadline,
		}
		require.NoError(t, db.Create(ann).Error)

		_, _, err := svc.Register(ctx, ann.EventID, RegisterInput{Email: "a@b.com"}, nil)
		assert.ErrorIs(t, err, ErrEventNotFound, "announcements look like missing events")
	})

	t.Run("expired deadline", func(t *testing.T) {
		past := time.Now().AddDate(0, 0, -1)
		ended := &model.EventModel{
			EventTitle:               "Past Event",
			EventApplicationDeadline: &past,
			EventQuotaTotal:          5,
			EventQuotaLeft:           5,
		}
		require.NoError(t, db.Create(ended).Error)

		_, _, err := svc.Register(ctx, ended.EventID, RegisterInput{Email: "a@b.com"}, nil)
		assert.ErrorIs(t, err, ErrRegistrationClosed)
	})

	t.Run("fully booked", func(t *testing.T) {
		full := newOpenEvent(t, db, 1)
		require.NoError(t, db.Model(full).Update("event_quota_left", 0).Error)

		_, _, err := svc.Register(ctx, full.EventID, RegisterInput{Email: "a@b.com"}, nil)
		assert.ErrorIs(t, err, ErrEventFull)
	})

	t.Run("invalid email", func(t *testing.T) {
		event := newOpenEvent(t, db, 5)
		_, _, err := svc.Register(ctx, event.EventID, RegisterInput{Email: "not-an-email"}, nil)
		assert.ErrorIs(t, err, ErrInvalidEmail)
	})

	t.Run("duplicate email case-insensitive", func(t *testing.T) {
		event := newOpenEvent(t, db, 5)
		_, _, err := svc.Register(ctx, event.EventID, RegisterInput{Email: "carol@example.com"}, nil)
		require.NoError(t, err)

		_, _, err = svc.Register(ctx, event.EventID, RegisterInput{Email: "CAROL@example.com"}, nil)
		assert.ErrorIs(t, err, ErrAlreadyRegistered)
	})
}

func TestRegisterAuthedEmailOverridesForm(t *testing.T) {
	db := setupTestDB(t)
	event := newOpenEvent(t, db, 5)
	svc := NewRegistrationService(db, nil)

	authed := &AuthedIdentity{UserID: uuid.New(), Email: "member@ksbc.org.hk"}
	p, _, err := svc.Register(context.Background(), event.EventID, RegisterInput{
		Email: "somebody-else@example.com",
	}, authed)
	require.NoError(t, err)
	assert.Equal(t, "member@ksbc.org.hk", p.EventParticipantEmail)
	require.NotNil(t, p.EventParticipantUserID)
	assert.Equal(t, authed.UserID, *p.EventParticipantUserID)
}

func TestRegisterUnlimitedQuotaSkipsDecrement(t *testing.T) {
	db := setupTestDB(t)
	deadline := time.Now().AddDate(0, 0, 7)
	event := &model.EventModel{
		EventTitle:               "Open House",
		EventUnlimitedQuota:      true,
		EventApplicationDeadline: &deadline,
	}
	require.NoError(t, db.Create(event).Error)
	svc := NewRegistrationService(db, nil)

	for i := 0; i < 3; i++ {
		_, _, err := svc.Register(context.Background(), event.EventID, RegisterInput{
			Email: fmt.Sprintf("guest%d@example.com", i),
		}, nil)
		require.NoError(t, err)
	}

	var reloaded model.EventModel
	require.NoError(t, db.First(&reloaded, "event_id = ?", event.EventID).Error)
	assert.Equal(t, 0, reloaded.EventQuotaLeft)
}

// Q spots, N > Q registrants racing: exactly Q succeed, the rest see
// fully booked, and the counter lands on zero.
func TestRegisterConcurrentExactness(t *testing.T) {
	db := setupTestDB(t)
	const quota = 5
	const attempts = 20
	event := newOpenEvent(t, db, quota)
	svc := NewRegistrationService(db, nil)

	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = svc.Register(context.Background(), event.EventID, RegisterInput{
				Email: fmt.Sprintf("runner%d@example.com", i),
			}, nil)
		}(i)
	}
	wg.Wait()

	succeeded, full := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrEventFull):
			full++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, quota, succeeded)
	assert.Equal(t, attempts-quota, full)

	var reloaded model.EventModel
	require.NoError(t, db.First(&reloaded, "event_id = ?", event.EventID).Error)
	assert.Equal(t, 0, reloaded.EventQuotaLeft, "quota never goes negative")

	var count int64
	db.Model(&model.EventParticipantModel{}).Count(&count)
	assert.EqualValues(t, quota, count)
}

func TestWithdraw(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRegistrationService(db, nil)
	ctx := context.Background()

	register := func(t *testing.T, event *model.EventModel, email string) *model.EventParticipantModel {
		t.Helper()
		p, _, err := svc.Register(ctx, event.EventID, RegisterInput{Email: email}, nil)
		require.NoError(t, err)
		return p
	}

	t.Run("returns the spot", func(t *testing.T) {
		event := newOpenEvent(t, db, 3)
		p := register(t, event, "dan@example.com")

		outcome, err := svc.Withdraw(ctx, p.EventParticipantID, "dan@example.com")
		require.NoError(t, err)
		assert.Equal(t, OutcomeWithdrawn, outcome)

		var reloaded model.EventModel
		require.NoError(t, db.First(&reloaded, "event_id = ?", event.EventID).Error)
		assert.Equal(t, 3, reloaded.EventQuotaLeft)
	})

	t.Run("repeat withdrawal is idempotent", func(t *testing.T) {
		event := newOpenEvent(t, db, 3)
		p := register(t, event, "erin@example.com")

		_, err := svc.Withdraw(ctx, p.EventParticipantID, "erin@example.com")
		require.NoError(t, err)

		outcome, err := svc.Withdraw(ctx, p.EventParticipantID, "erin@example.com")
		require.NoError(t, err)
		assert.Equal(t, OutcomeAlreadyWithdrawn, outcome)

		var reloaded model.EventModel
		require.NoError(t, db.First(&reloaded, "event_id = ?", event.EventID).Error)
		assert.Equal(t, 3, reloaded.EventQuotaLeft, "no double increment")
	})

	t.Run("increment clamps at capacity", func(t *testing.T) {
		event := newOpenEvent(t, db, 3)
		p := register(t, event, "frank@example.com")

		// Admin shrinks the event after the registration; the withdrawal
		// must not push the counter past the new capacity.
		require.NoError(t, db.Model(event).Updates(map[string]interface{}{
			"event_quota_total": 2,
			"event_quota_left":  2,
		}).Error)

		_, err := svc.Withdraw(ctx, p.EventParticipantID, "frank@example.com")
		require.NoError(t, err)

		var reloaded model.EventModel
		require.NoError(t, db.First(&reloaded, "event_id = ?", event.EventID).Error)
		assert.Equal(t, 2, reloaded.EventQuotaLeft)
	})

	t.Run("expired event refuses withdrawal", func(t *testing.T) {
		event := newOpenEvent(t, db, 3)
		p := register(t, event, "grace@example.com")

		past := time.Now().AddDate(0, 0, -1)
		require.NoError(t, db.Model(event).Update("event_application_deadline", past).Error)

		_, err := svc.Withdraw(ctx, p.EventParticipantID, "grace@example.com")
		assert.ErrorIs(t, err, ErrEventEnded)
	})

	t.Run("wrong email reads as not found", func(t *testing.T) {
		event := newOpenEvent(t, db, 3)
		p := register(t, event, "henry@example.com")

		_, err := svc.Withdraw(ctx, p.EventParticipantID, "intruder@example.com")
		assert.ErrorIs(t, err, ErrParticipantNotFound)
	})

	t.Run("unknown participant", func(t *testing.T) {
		_, err := svc.Withdraw(ctx, uuid.New(), "nobody@example.com")
		assert.ErrorIs(t, err, ErrParticipantNotFound)
	})
}
