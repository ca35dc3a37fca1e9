package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/rayto1224/ksbc-web/internals/features/activities/donations/model"
)

// FiscalYearLabel maps a date onto the April–March financial year it belongs
// to: April through December of year Y is "Y-(Y+1)", January through March is
// "(Y-1)-Y". Labels sort correctly as strings because years are 4 digits.
func FiscalYearLabel(date time.Time) string {
	if date.Month() >= time.April {
		return fmt.Sprintf("%04d-%04d", date.Year(), date.Year()+1)
	}
	return fmt.Sprintf("%04d-%04d", date.Year()-1, date.Year())
}

type UserYearGroup struct {
	UserID     uuid.UUID             `json:"user_id"`
	FiscalYear string                `json:"financial_year"`
	Total      float64               `json:"total"`
	Donations  []model.DonationModel `json:"donations"`
}

type YearTotal struct {
	FiscalYear string  `json:"financial_year"`
	Total      float64 `json:"total"`
	Count      int     `json:"count"`
}

type AggregateResult struct {
	ByUserAndYear []UserYearGroup `json:"by_user_and_year"`
	ByYearTotal   []YearTotal     `json:"by_year_total"`
}

// Aggregate groups donations by financial year, per user and globally, in a
// single pass. Pending/expired/canceled gifts are skipped. An optional exact
// label filter ("YYYY-YYYY") restricts both outputs. All grouping happens in
// memory over the materialized records, which holds up only while the
// donation set stays small.
func Aggregate(donations []model.DonationModel, fiscalYearFilter string) AggregateResult {
	type userYearKey struct {
		userID uuid.UUID
		year   string
	}

	userGroups := make(map[userYearKey]*UserYearGroup)
	yearTotals := make(map[string]*YearTotal)

	for _, d := range donations {
		if !d.Counted() {
			continue
		}
		label := FiscalYearLabel(d.DonationDate)
		if fiscalYearFilter != "" && label != fiscalYearFilter {
			continue
		}

		key := userYearKey{userID: d.DonationUserID, year: label}
		group, ok := userGroups[key]
		if !ok {
			group = &UserYearGroup{UserID: d.DonationUserID, FiscalYear: label}
			userGroups[key] = group
		}
		group.Total += d.DonationAmount
		group.Donations = append(group.Donations, d)

		total, ok := yearTotals[label]
		if !ok {
			total = &YearTotal{FiscalYear: label}
			yearTotals[label] = total
		}
		total.Total += d.DonationAmount
		total.Count++
	}

	result := AggregateResult{
		ByUserAndYear: make([]UserYearGroup, 0, len(userGroups)),
		ByYearTotal:   make([]YearTotal, 0, len(yearTotals)),
	}
	for _, g := range userGroups {
		result.ByUserAndYear = append(result.ByUserAndYear, *g)
	}
	for _, t := range yearTotals {
		result.ByYearTotal = append(result.ByYearTotal, *t)
	}

	// Most recent financial year first.
	sort.Slice(result.ByUserAndYear, func(i, j int) bool {
		if result.ByUserAndYear[i].FiscalYear != result.ByUserAndYear[j].FiscalYear {
			return result.ByUserAndYear[i].FiscalYear > result.ByUserAndYear[j].FiscalYear
		}
		return result.ByUserAndYear[i].UserID.String() < result.ByUserAndYear[j].UserID.String()
	})
	sort.Slice(result.ByYearTotal, func(i, j int) bool {
		return result.ByYearTotal[i].FiscalYear > result.ByYearTotal[j].FiscalYear
	})

	return result
}
