// Package summary derives dashboard metrics from a budget and its
// expenses. All computation here is pure; handlers feed it rows from
// two independent reads, so a write landing between those reads may or
// may not show up in one response. That window is accepted for a
// dashboard and not papered over.
package summary

import (
	"time"

	"github.com/adamstosho/Finura/internal/budget"
	"github.com/adamstosho/Finura/internal/expense"
)

// CategoryBreakdown reports one declared category. Remaining is
// clamped at zero while Percentage runs past 100 on overspend; the
// budget-level remaining is the signed figure. When Limit is zero and
// anything was spent, Over is the sentinel and Percentage stays 0
// rather than dividing by zero.
type CategoryBreakdown struct {
	Name       string  `json:"name"`
	Limit      float64 `json:"limit"`
	Spent      float64 `json:"spent"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"`
	Over       bool    `json:"over"`
}

type BudgetSummary struct {
	BudgetID   string              `json:"budget_id"`
	Month      string              `json:"month"`
	Income     float64             `json:"income"`
	TotalSpend float64             `json:"total_spend"`
	Remaining  float64             `json:"remaining"`
	Categories []CategoryBreakdown `json:"categories"`
}

type TrendPoint struct {
	Month      string  `json:"month"`
	Income     float64 `json:"income"`
	TotalSpend float64 `json:"total_spend"`
	Savings    float64 `json:"savings"`
}

// TotalSpend sums every expense amount, declared category or not.
func TotalSpend(expenses []expense.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// Remaining is income minus total spend. Negative means overspend and
// the sign carries through unclamped.
func Remaining(b budget.Budget, expenses []expense.Expense) float64 {
	return b.Income - TotalSpend(expenses)
}

// PerCategory breaks spending down by the budget's declared categories,
// in declared order. Matching is exact and case-sensitive; expenses
// whose category matches nothing declared are left out here but still
// count toward TotalSpend.
func PerCategory(b budget.Budget, expenses []expense.Expense) []CategoryBreakdown {
	out := make([]CategoryBreakdown, 0, len(b.Categories))
	for _, cat := range b.Categories {
		var spent float64
		for _, e := range expenses {
			if e.Category == cat.Name {
				spent += e.Amount
			}
		}

		row := CategoryBreakdown{
			Name:      cat.Name,
			Limit:     cat.Limit,
			Spent:     spent,
			Remaining: cat.Limit - spent,
			Over:      spent > cat.Limit,
		}
		if row.Remaining < 0 {
			row.Remaining = 0
		}
		if cat.Limit > 0 {
			row.Percentage = spent / cat.Limit * 100
		}
		out = append(out, row)
	}
	return out
}

// Compute assembles the full summary for one budget. The expense slice
// must already be restricted to that budget's id.
func Compute(b budget.Budget, expenses []expense.Expense) BudgetSummary {
	return BudgetSummary{
		BudgetID:   b.ID,
		Month:      b.Month,
		Income:     b.Income,
		TotalSpend: TotalSpend(expenses),
		Remaining:  Remaining(b, expenses),
		Categories: PerCategory(b, expenses),
	}
}

// MonthlyTrend produces one point per budget over the last window
// entries of the list as supplied. Month labels are free text, so the
// sequencing is whatever order the caller stored the budgets in; there
// is no date parsing or sorting here.
func MonthlyTrend(budgets []budget.Budget, expensesByBudget map[string][]expense.Expense, window int) []TrendPoint {
	if window > 0 && len(budgets) > window {
		budgets = budgets[len(budgets)-window:]
	}

	out := make([]TrendPoint, 0, len(budgets))
	for _, b := range budgets {
		spend := TotalSpend(expensesByBudget[b.ID])
		out = append(out, TrendPoint{
			Month:      b.Month,
			Income:     b.Income,
			TotalSpend: spend,
			Savings:    b.Income - spend,
		})
	}
	return out
}

// MonthLabel renders the label budgets are keyed by, e.g. "March 2026".
func MonthLabel(t time.Time) string {
	return t.Format("January 2006")
}

// CurrentMonthBudget finds the budget whose month label exactly equals
// label. Absence is a normal empty state, not an error: a user who has
// not set up the current month simply has no dashboard yet.
func CurrentMonthBudget(budgets []budget.Budget, label string) (budget.Budget, bool) {
	for _, b := range budgets {
		if b.Month == label {
			return b, true
		}
	}
	return budget.Budget{}, false
}
