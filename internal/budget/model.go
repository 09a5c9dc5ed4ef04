package budget

import (
	"errors"
	"time"
)

// Category is one spending bucket inside a budget. Names are matched
// against expense categories by exact string equality; duplicates are
// allowed and each declared row aggregates independently.
type Category struct {
	Name  string  `json:"name"`
	Limit float64 `json:"limit"`
}

type Budget struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	Month      string     `json:"month"`
	Income     float64    `json:"income"`
	Categories []Category `json:"categories"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type CreateBudgetRequest struct {
	Month      string     `json:"month"`
	Income     *float64   `json:"income"`
	Categories []Category `json:"categories"`
}

// UpdateBudgetRequest carries a partial update. Nil fields are left
// untouched; a non-nil Categories replaces the whole list.
type UpdateBudgetRequest struct {
	Month      *string     `json:"month"`
	Income     *float64    `json:"income"`
	Categories *[]Category `json:"categories"`
}

var (
	errMonthRequired  = errors.New("month required")
	errIncomeRequired = errors.New("income required")
	errNegativeIncome = errors.New("income must not be negative")
	errNegativeLimit  = errors.New("category limit must not be negative")
	errCategoryName   = errors.New("category name required")
)

func (r CreateBudgetRequest) Validate() error {
	if r.Month == "" {
		return errMonthRequired
	}
	if r.Income == nil {
		return errIncomeRequired
	}
	if *r.Income < 0 {
		return errNegativeIncome
	}
	return validateCategories(r.Categories)
}

func (r UpdateBudgetRequest) Validate() error {
	if r.Month != nil && *r.Month == "" {
		return errMonthRequired
	}
	if r.Income != nil && *r.Income < 0 {
		return errNegativeIncome
	}
	if r.Categories != nil {
		return validateCategories(*r.Categories)
	}
	return nil
}

func validateCategories(cats []Category) error {
	for _, c := range cats {
		if c.Name == "" {
			return errCategoryName
		}
		if c.Limit < 0 {
			return errNegativeLimit
		}
	}
	return nil
}
