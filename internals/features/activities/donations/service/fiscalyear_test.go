package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rayto1224/ksbc-web/internals/features/activities/donations/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFiscalYearLabel(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{date(2025, time.March, 31), "2024-2025"},
		{date(2025, time.April, 1), "2025-2026"},
		{date(2025, time.December, 31), "2025-2026"},
		{date(2026, time.January, 1), "2025-2026"},
		{date(2026, time.February, 28), "2025-2026"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FiscalYearLabel(tt.date), "date %s", tt.date.Format("2006-01-02"))
	}
}

func TestAggregate(t *testing.T) {
	userA := uuid.New()
	userB := uuid.New()

	donations := []model.DonationModel{
		{DonationUserID: userA, DonationAmount: 60, DonationDate: date(2025, time.May, 10), DonationStatus: model.StatusRecorded},
		{DonationUserID: userA, DonationAmount: 40, DonationDate: date(2026, time.February, 1), DonationStatus: model.StatusPaid},
		{DonationUserID: userB, DonationAmount: 80, DonationDate: date(2025, time.June, 15), DonationStatus: model.StatusRecorded},
		// March 2025 belongs to the previous financial year.
		{DonationUserID: userA, DonationAmount: 25, DonationDate: date(2025, time.March, 20), DonationStatus: model.StatusRecorded},
		// Pending and canceled gifts never count.
		{DonationUserID: userB, DonationAmount: 500, DonationDate: date(2025, time.July, 1), DonationStatus: model.StatusPending},
		{DonationUserID: userB, DonationAmount: 500, DonationDate: date(2025, time.July, 2), DonationStatus: model.StatusCanceled},
	}

	result := Aggregate(donations, "")

	require.Len(t, result.ByYearTotal, 2)
	assert.Equal(t, "2025-2026", result.ByYearTotal[0].FiscalYear, "newest year first")
	assert.Equal(t, 180.0, result.ByYearTotal[0].Total)
	assert.Equal(t, 3, result.ByYearTotal[0].Count)
	assert.Equal(t, "2024-2025", result.ByYearTotal[1].FiscalYear)
	assert.Equal(t, 25.0, result.ByYearTotal[1].Total)

	require.Len(t, result.ByUserAndYear, 3)
	totals := map[uuid.UUID]map[string]float64{}
	for _, g := range result.ByUserAndYear {
		if totals[g.UserID] == nil {
			totals[g.UserID] = map[string]float64{}
		}
		totals[g.UserID][g.FiscalYear] = g.Total
	}
	assert.Equal(t, 100.0, totals[userA]["2025-2026"])
	assert.Equal(t, 25.0, totals[userA]["2024-2025"])
	assert.Equal(t, 80.0, totals[userB]["2025-2026"])
}

func TestAggregateWithFilter(t *testing.T) {
	userA := uuid.New()
	donations := []model.DonationModel{
		{DonationUserID: userA, DonationAmount: 60, DonationDate: date(2025, time.May, 10), DonationStatus: model.StatusRecorded},
		{DonationUserID: userA, DonationAmount: 25, DonationDate: date(2025, time.March, 20), DonationStatus: model.StatusRecorded},
	}

	result := Aggregate(donations, "2024-2025")

	require.Len(t, result.ByYearTotal, 1)
	assert.Equal(t, "2024-2025", result.ByYearTotal[0].FiscalYear)
	assert.Equal(t, 25.0, result.ByYearTotal[0].Total)
	require.Len(t, result.ByUserAndYear, 1)
	assert.Equal(t, 25.0, result.ByUserAndYear[0].Total)
}

func TestAggregateEmpty(t *testing.T) {
	result := Aggregate(nil, "")
	assert.Empty(t, result.ByUserAndYear)
	assert.Empty(t, result.ByYearTotal)
}
