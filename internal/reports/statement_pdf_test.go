package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamstosho/Finura/internal/summary"
)

func TestBuildStatementPDF(t *testing.T) {
	s := summary.BudgetSummary{
		BudgetID:   "b1",
		Month:      "January 2024",
		Income:     5000,
		TotalSpend: 3350,
		Remaining:  1650,
		Categories: []summary.CategoryBreakdown{
			{Name: "Food", Limit: 1000, Spent: 300, Remaining: 700, Percentage: 30},
			{Name: "Rent", Limit: 3000, Spent: 3000, Remaining: 0, Percentage: 100},
			{Name: "Misc", Limit: 0, Spent: 20, Over: true},
		},
	}

	got, err := BuildStatementPDF(s)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "%PDF", string(got[:4]))
}

func TestBuildStatementPDFEmptyBudget(t *testing.T) {
	got, err := BuildStatementPDF(summary.BudgetSummary{Month: "March 2024"})
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}
