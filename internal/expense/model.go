package expense

import (
	"errors"
	"time"
)

// Expense belongs to a budget, not directly to a user; ownership is
// resolved through the budget reference. The category is free text and
// is matched against the budget's declared categories only at
// aggregation time, never at write time.
type Expense struct {
	ID        string    `json:"id"`
	BudgetID  string    `json:"budget"`
	Category  string    `json:"category"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateExpenseRequest struct {
	BudgetID string   `json:"budgetId"`
	Category string   `json:"category"`
	Amount   *float64 `json:"amount"`
	Date     string   `json:"date"`
	Note     *string  `json:"note"`
}

var (
	errBudgetRequired   = errors.New("budgetId required")
	errCategoryRequired = errors.New("category required")
	errAmountRequired   = errors.New("amount required")
	errNegativeAmount   = errors.New("amount must not be negative")
	errDateRequired     = errors.New("date required")
	errBadDate          = errors.New("date must be RFC3339 or YYYY-MM-DD")
)

func (r CreateExpenseRequest) Validate() error {
	if r.BudgetID == "" {
		return errBudgetRequired
	}
	if r.Category == "" {
		return errCategoryRequired
	}
	if r.Amount == nil {
		return errAmountRequired
	}
	if *r.Amount < 0 {
		return errNegativeAmount
	}
	if r.Date == "" {
		return errDateRequired
	}
	return nil
}

// ParseDate accepts the two formats clients actually send: a full
// RFC3339 timestamp or a bare date from an HTML date input.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, errBadDate
}
