package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeOrderClause(t *testing.T) {
	allowed := map[string]string{
		"date":   "donation_date",
		"amount": "donation_amount",
	}

	p := PageParams{SortBy: "amount", SortOrder: "asc"}
	clause, err := p.SafeOrderClause(allowed, "date")
	assert.NoError(t, err)
	assert.Equal(t, "donation_amount ASC", clause)

	// Unknown keys fall back to the default instead of reaching SQL.
	p = PageParams{SortBy: "donation_amount; DROP TABLE donations", SortOrder: "desc"}
	clause, err = p.SafeOrderClause(allowed, "date")
	assert.NoError(t, err)
	assert.Equal(t, "donation_date DESC", clause)

	_, err = PageParams{}.SafeOrderClause(allowed, "missing")
	assert.Error(t, err)
}

func TestBuildMeta(t *testing.T) {
	meta := BuildMeta(101, PageParams{Page: 2, PerPage: 25})
	assert.Equal(t, 5, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)

	meta = BuildMeta(0, PageParams{Page: 1, PerPage: 25})
	assert.Equal(t, 0, meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrev)
}
