package expense

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/adamstosho/Finura/internal/audit"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) CreateExpense(c *fiber.Ctx) error {
	userID, err := extractUserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if _, err := uuid.Parse(req.BudgetID); err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Budget not found")
	}

	date, err := ParseDate(req.Date)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	e := &Expense{
		BudgetID: req.BudgetID,
		Category: req.Category,
		Amount:   *req.Amount,
		Date:     date,
		Note:     req.Note,
	}

	err = h.Repo.Insert(userContext(c), userID, e)
	if errors.Is(err, pgx.ErrNoRows) {
		return fiber.NewError(fiber.StatusNotFound, "Budget not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to add expense: "+err.Error())
	}

	audit.Record(userContext(c), h.Repo.Pool, audit.Entry{
		UserID:     userID,
		Action:     "expense.create",
		EntityType: "expense",
		EntityID:   e.ID,
		IP:         c.IP(),
	})

	return c.Status(fiber.StatusCreated).JSON(e)
}

func (h *Handler) ListExpenses(c *fiber.Ctx) error {
	userID, err := extractUserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	budgetID := strings.TrimSpace(c.Query("budgetId"))
	if budgetID != "" {
		if _, err := uuid.Parse(budgetID); err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Budget not found")
		}
		items, err := h.Repo.ListByBudget(userContext(c), budgetID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to list expenses: "+err.Error())
		}
		return c.JSON(items)
	}

	items, err := h.Repo.ListByUser(userContext(c), userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list expenses: "+err.Error())
	}
	return c.JSON(items)
}

func (h *Handler) DeleteExpense(c *fiber.Ctx) error {
	userID, err := extractUserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id := strings.TrimSpace(c.Params("id"))
	if _, err := uuid.Parse(id); err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Expense not found")
	}

	err = h.Repo.Delete(userContext(c), userID, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return fiber.NewError(fiber.StatusNotFound, "Expense not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete expense: "+err.Error())
	}

	audit.Record(userContext(c), h.Repo.Pool, audit.Entry{
		UserID:     userID,
		Action:     "expense.delete",
		EntityType: "expense",
		EntityID:   id,
		IP:         c.IP(),
	})

	return c.JSON(fiber.Map{"message": "Expense removed"})
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
