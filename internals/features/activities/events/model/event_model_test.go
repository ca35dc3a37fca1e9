package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rayto1224/ksbc-web/internals/configs"
)

func datePtr(t time.Time) *time.Time { return &t }

func TestEventIsExpired(t *testing.T) {
	yesterday := time.Now().AddDate(0, 0, -1)
	tomorrow := time.Now().AddDate(0, 0, 1)

	assert.False(t, (&EventModel{}).IsExpired(), "no deadline means always open")
	assert.True(t, (&EventModel{EventApplicationDeadline: datePtr(yesterday)}).IsExpired())
	assert.False(t, (&EventModel{EventApplicationDeadline: datePtr(tomorrow)}).IsExpired())

	// The deadline day itself still accepts registrations.
	today := time.Now()
	assert.False(t, (&EventModel{EventApplicationDeadline: datePtr(today)}).IsExpired())
}

func TestTodayUsesConfiguredLocation(t *testing.T) {
	orig := configs.AppLocation
	t.Cleanup(func() { configs.AppLocation = orig })

	// A fixed offset keeps the test independent of the host tz database.
	configs.AppLocation = time.FixedZone("UTC+8", 8*3600)

	today := Today()
	assert.Equal(t, configs.AppLocation, today.Location())
	h, m, s := today.Clock()
	assert.Zero(t, h)
	assert.Zero(t, m)
	assert.Zero(t, s)

	now := time.Now().In(configs.AppLocation)
	assert.Equal(t, now.Year(), today.Year())
	assert.Equal(t, now.YearDay(), today.YearDay())

	// Deadlines compare against the congregation's calendar day.
	assert.False(t, (&EventModel{EventApplicationDeadline: datePtr(today)}).IsExpired())
	assert.True(t, (&EventModel{EventApplicationDeadline: datePtr(today.AddDate(0, 0, -1))}).IsExpired())
}

func TestEventQuotaFull(t *testing.T) {
	assert.True(t, (&EventModel{EventQuotaTotal: 10, EventQuotaLeft: 0}).QuotaFull())
	assert.False(t, (&EventModel{EventQuotaTotal: 10, EventQuotaLeft: 1}).QuotaFull())
	assert.False(t, (&EventModel{EventUnlimitedQuota: true, EventQuotaLeft: 0}).QuotaFull(),
		"unlimited events are never full")
}

func TestEventDisplayPrice(t *testing.T) {
	tests := []struct {
		name  string
		event EventModel
		want  string
	}{
		{"free flag wins", EventModel{EventIsFree: true, EventFeeAmount: 50, EventFeeCurrency: "HKD"}, "Free"},
		{"zero fee is free", EventModel{EventFeeAmount: 0, EventFeeCurrency: "HKD"}, "Free"},
		{"paid", EventModel{EventFeeAmount: 150, EventFeeCurrency: "HKD"}, "150.00 HKD"},
		{"fractional", EventModel{EventFeeAmount: 99.5, EventFeeCurrency: "USD"}, "99.50 USD"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.event.DisplayPrice())
		})
	}
}

func TestRegistrationStatusPriority(t *testing.T) {
	yesterday := time.Now().AddDate(0, 0, -1)
	tomorrow := time.Now().AddDate(0, 0, 1)
	withdrawn := time.Now()

	openEvent := &EventModel{EventApplicationDeadline: datePtr(tomorrow), EventQuotaTotal: 10, EventQuotaLeft: 5}
	endedEvent := &EventModel{EventApplicationDeadline: datePtr(yesterday), EventQuotaTotal: 10, EventQuotaLeft: 5}
	fullEvent := &EventModel{EventApplicationDeadline: datePtr(tomorrow), EventQuotaTotal: 10, EventQuotaLeft: 0}

	tests := []struct {
		name        string
		participant EventParticipantModel
		event       *EventModel
		want        string
	}{
		{"accepted", EventParticipantModel{}, openEvent, StatusAccepted},
		{"full event rejects", EventParticipantModel{}, fullEvent, StatusRejected},
		{"ended event", EventParticipantModel{}, endedEvent, StatusEventEnded},
		{"withdrawn beats everything", EventParticipantModel{EventParticipantWithdrawalDate: &withdrawn}, endedEvent, StatusWithdrawn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.participant.RegistrationStatus(tt.event))
		})
	}
}
