package summary

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/adamstosho/Finura/internal/budget"
	"github.com/adamstosho/Finura/internal/expense"
)

const defaultTrendWindow = 6

type Handler struct {
	Budgets  *budget.Repository
	Expenses *expense.Repository
}

func NewHandler(budgets *budget.Repository, expenses *expense.Repository) *Handler {
	return &Handler{Budgets: budgets, Expenses: expenses}
}

// CurrentSummaryResponse wraps the no-budgetId case, where the budget
// for the current month label may simply not exist yet.
type CurrentSummaryResponse struct {
	Month   string         `json:"month"`
	Found   bool           `json:"found"`
	Summary *BudgetSummary `json:"summary,omitempty"`
}

// GetSummary returns the aggregate for one budget (?budgetId=...), or
// for the current-month budget when the query param is omitted.
func (h *Handler) GetSummary(c *fiber.Ctx) error {
	userID, err := extractUserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	budgetID := strings.TrimSpace(c.Query("budgetId"))
	if budgetID != "" {
		if _, err := uuid.Parse(budgetID); err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Budget not found")
		}

		b, err := h.Budgets.Get(userContext(c), userID, budgetID)
		if errors.Is(err, pgx.ErrNoRows) {
			return fiber.NewError(fiber.StatusNotFound, "Budget not found")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch budget: "+err.Error())
		}

		items, err := h.Expenses.ListByBudget(userContext(c), b.ID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to list expenses: "+err.Error())
		}

		s := Compute(*b, items)
		return c.JSON(s)
	}

	label := MonthLabel(time.Now())

	budgets, err := h.Budgets.ListByUser(userContext(c), userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list budgets: "+err.Error())
	}

	current, ok := CurrentMonthBudget(budgets, label)
	if !ok {
		return c.JSON(CurrentSummaryResponse{Month: label})
	}

	items, err := h.Expenses.ListByBudget(userContext(c), current.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list expenses: "+err.Error())
	}

	s := Compute(current, items)
	return c.JSON(CurrentSummaryResponse{Month: label, Found: true, Summary: &s})
}

// GetTrend returns income/spend/savings points for the caller's most
// recent budgets (?months=N, default 6).
func (h *Handler) GetTrend(c *fiber.Ctx) error {
	userID, err := extractUserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	window := defaultTrendWindow
	if v := strings.TrimSpace(c.Query("months")); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "months must be a positive integer")
		}
		window = parsed
	}

	budgets, err := h.Budgets.ListByUser(userContext(c), userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list budgets: "+err.Error())
	}

	if window < len(budgets) {
		budgets = budgets[len(budgets)-window:]
	}

	ids := make([]string, 0, len(budgets))
	for _, b := range budgets {
		ids = append(ids, b.ID)
	}

	byBudget, err := h.Expenses.MapByBudgets(userContext(c), ids)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list expenses: "+err.Error())
	}

	return c.JSON(MonthlyTrend(budgets, byBudget, window))
}

func extractUserID(c *fiber.Ctx) (string, error) {
	val := c.Locals("user_id")
	if val == nil {
		return "", errors.New("user id missing")
	}
	if uid, ok := val.(string); ok && strings.TrimSpace(uid) != "" {
		return uid, nil
	}
	return "", errors.New("user id missing")
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
