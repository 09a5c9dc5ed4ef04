package reports

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/adamstosho/Finura/internal/budget"
	"github.com/adamstosho/Finura/internal/expense"
	"github.com/adamstosho/Finura/internal/summary"
)

type Handler struct {
	Budgets  *budget.Repository
	Expenses *expense.Repository
}

func NewHandler(budgets *budget.Repository, expenses *expense.Repository) *Handler {
	return &Handler{Budgets: budgets, Expenses: expenses}
}

// BudgetStatement renders a downloadable PDF statement for one budget.
func (h *Handler) BudgetStatement(c *fiber.Ctx) error {
	userID, err := extractUserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id := strings.TrimSpace(c.Params("id"))
	if _, err := uuid.Parse(id); err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Budget not found")
	}

	b, err := h.Budgets.Get(userContext(c), userID, id)
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

	pdfBytes, err := BuildStatementPDF(summary.Compute(*b, items))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to build report: "+err.Error())
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="budget-%s.pdf"`, sanitizeFilename(b.Month)))
	return c.Send(pdfBytes)
}

func sanitizeFilename(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, s)
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
