package summary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamstosho/Finura/internal/budget"
	"github.com/adamstosho/Finura/internal/expense"
)

func exp(budgetID, category string, amount float64) expense.Expense {
	return expense.Expense{BudgetID: budgetID, Category: category, Amount: amount}
}

func TestComputeDashboardScenario(t *testing.T) {
	b := budget.Budget{
		ID:     "b1",
		Month:  "January 2024",
		Income: 5000,
		Categories: []budget.Category{
			{Name: "Food", Limit: 1000},
			{Name: "Rent", Limit: 3000},
		},
	}
	expenses := []expense.Expense{
		exp("b1", "Food", 300),
		exp("b1", "Rent", 3000),
		exp("b1", "Transport", 50),
	}

	s := Compute(b, expenses)

	assert.Equal(t, 3350.0, s.TotalSpend, "undeclared categories still count toward total")
	assert.Equal(t, 1650.0, s.Remaining)

	require.Len(t, s.Categories, 2, "Transport is not a declared category")

	food := s.Categories[0]
	assert.Equal(t, "Food", food.Name)
	assert.Equal(t, 300.0, food.Spent)
	assert.Equal(t, 700.0, food.Remaining)
	assert.Equal(t, 30.0, food.Percentage)
	assert.False(t, food.Over)

	rent := s.Categories[1]
	assert.Equal(t, "Rent", rent.Name)
	assert.Equal(t, 3000.0, rent.Spent)
	assert.Equal(t, 0.0, rent.Remaining)
	assert.Equal(t, 100.0, rent.Percentage)
	assert.False(t, rent.Over)
}

func TestTotalSpendOrderIndependent(t *testing.T) {
	a := []expense.Expense{exp("b", "x", 10), exp("b", "y", 20.5), exp("b", "z", 0.5)}
	b := []expense.Expense{a[2], a[0], a[1]}

	assert.Equal(t, TotalSpend(a), TotalSpend(b))
	assert.Equal(t, 31.0, TotalSpend(a))
}

func TestRemainingCanGoNegative(t *testing.T) {
	b := budget.Budget{Income: 1000}
	expenses := []expense.Expense{exp("b", "x", 1200)}

	assert.Equal(t, -200.0, Remaining(b, expenses), "budget-level remaining keeps its sign")
}

func TestCategoryRemainingClampsButPercentageDoesNot(t *testing.T) {
	b := budget.Budget{Categories: []budget.Category{{Name: "Fun", Limit: 500}}}
	rows := PerCategory(b, []expense.Expense{exp("b", "Fun", 700)})

	require.Len(t, rows, 1)
	assert.Equal(t, 0.0, rows[0].Remaining, "category remaining never reports negative")
	assert.Equal(t, 140.0, rows[0].Percentage)
	assert.True(t, rows[0].Over)
}

func TestZeroLimitCategory(t *testing.T) {
	b := budget.Budget{Categories: []budget.Category{{Name: "Misc", Limit: 0}}}

	rows := PerCategory(b, nil)
	require.Len(t, rows, 1)
	assert.Equal(t, 0.0, rows[0].Percentage, "limit 0, spent 0 yields percentage 0")
	assert.False(t, rows[0].Over)

	rows = PerCategory(b, []expense.Expense{exp("b", "Misc", 5)})
	require.Len(t, rows, 1)
	assert.Equal(t, 0.0, rows[0].Percentage, "no division by zero")
	assert.True(t, rows[0].Over, "spending against a zero limit flags the sentinel")
}

func TestPerCategoryMatchIsExact(t *testing.T) {
	b := budget.Budget{Categories: []budget.Category{{Name: "Food", Limit: 100}}}
	expenses := []expense.Expense{
		exp("b", "food", 10),
		exp("b", " Food", 10),
		exp("b", "Food", 25),
	}

	rows := PerCategory(b, expenses)
	require.Len(t, rows, 1)
	assert.Equal(t, 25.0, rows[0].Spent, "case and whitespace differences do not match")
	assert.Equal(t, 45.0, TotalSpend(expenses))
}

func TestPerCategoryDuplicateNames(t *testing.T) {
	b := budget.Budget{Categories: []budget.Category{
		{Name: "Food", Limit: 100},
		{Name: "Food", Limit: 200},
	}}

	rows := PerCategory(b, []expense.Expense{exp("b", "Food", 50)})
	require.Len(t, rows, 2, "duplicate names stay as separate declared rows")
	assert.Equal(t, 50.0, rows[0].Spent)
	assert.Equal(t, 50.0, rows[1].Spent)
	assert.Equal(t, 50.0, rows[0].Percentage)
	assert.Equal(t, 25.0, rows[1].Percentage)
}

func TestPerCategoryPreservesDeclaredOrder(t *testing.T) {
	b := budget.Budget{Categories: []budget.Category{
		{Name: "Zeta", Limit: 1},
		{Name: "Alpha", Limit: 1},
		{Name: "Mid", Limit: 1},
	}}

	rows := PerCategory(b, nil)
	require.Len(t, rows, 3)
	assert.Equal(t, "Zeta", rows[0].Name)
	assert.Equal(t, "Alpha", rows[1].Name)
	assert.Equal(t, "Mid", rows[2].Name)
}

func TestMonthlyTrendTakesSuffixInSuppliedOrder(t *testing.T) {
	budgets := []budget.Budget{
		{ID: "b1", Month: "October 2023", Income: 100},
		{ID: "b2", Month: "November 2023", Income: 200},
		{ID: "b3", Month: "December 2023", Income: 300},
	}
	byBudget := map[string][]expense.Expense{
		"b2": {exp("b2", "x", 50)},
		"b3": {exp("b3", "x", 350)},
	}

	points := MonthlyTrend(budgets, byBudget, 2)
	require.Len(t, points, 2)

	assert.Equal(t, "November 2023", points[0].Month)
	assert.Equal(t, 50.0, points[0].TotalSpend)
	assert.Equal(t, 150.0, points[0].Savings)

	assert.Equal(t, "December 2023", points[1].Month)
	assert.Equal(t, 350.0, points[1].TotalSpend)
	assert.Equal(t, -50.0, points[1].Savings, "savings can go negative")
}

func TestMonthlyTrendWindowLargerThanList(t *testing.T) {
	budgets := []budget.Budget{{ID: "b1", Month: "May 2024", Income: 10}}

	points := MonthlyTrend(budgets, nil, 6)
	require.Len(t, points, 1)
	assert.Equal(t, 0.0, points[0].TotalSpend, "missing expense map entries read as zero spend")
}

func TestCurrentMonthBudget(t *testing.T) {
	budgets := []budget.Budget{
		{ID: "b1", Month: "January 2024"},
		{ID: "b2", Month: "February 2024"},
	}

	b, ok := CurrentMonthBudget(budgets, "February 2024")
	require.True(t, ok)
	assert.Equal(t, "b2", b.ID)

	_, ok = CurrentMonthBudget(budgets, "March 2024")
	assert.False(t, ok, "missing current month is an empty state, not an error")
}

func TestMonthLabel(t *testing.T) {
	ts := time.Date(2024, time.February, 10, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "February 2024", MonthLabel(ts))
}
