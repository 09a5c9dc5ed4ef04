package budget

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

func (h *Handler) CreateBudget(c *fiber.Ctx) error {
	userID, err := extractUserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req CreateBudgetRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	b := &Budget{
		UserID:     userID,
		Month:      req.Month,
		Income:     *req.Income,
		Categories: req.Categories,
	}
	if b.Categories == nil {
		b.Categories = make([]Category, 0)
	}

	if err := h.Repo.Insert(userContext(c), b); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create budget: "+err.Error())
	}

	audit.Record(userContext(c), h.Repo.Pool, audit.Entry{
		UserID:     userID,
		Action:     "budget.create",
		EntityType: "budget",
		EntityID:   b.ID,
		IP:         c.IP(),
	})

	return c.Status(fiber.StatusCreated).JSON(b)
}

func (h *Handler) ListBudgets(c *fiber.Ctx) error {
	userID, err := extractUserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	items, err := h.Repo.ListByUser(userContext(c), userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list budgets: "+err.Error())
	}
	return c.JSON(items)
}

func (h *Handler) GetBudget(c *fiber.Ctx) error {
	userID, err := extractUserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := budgetIDParam(c)
	if err != nil {
		return err
	}

	b, err := h.Repo.Get(userContext(c), userID, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return fiber.NewError(fiber.StatusNotFound, "Budget not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch budget: "+err.Error())
	}
	return c.JSON(b)
}

func (h *Handler) UpdateBudget(c *fiber.Ctx) error {
	userID, err := extractUserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := budgetIDParam(c)
	if err != nil {
		return err
	}

	var req UpdateBudgetRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	b, err := h.Repo.Update(userContext(c), userID, id, req)
	if errors.Is(err, pgx.ErrNoRows) {
		return fiber.NewError(fiber.StatusNotFound, "Budget not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update budget: "+err.Error())
	}

	audit.Record(userContext(c), h.Repo.Pool, audit.Entry{
		UserID:     userID,
		Action:     "budget.update",
		EntityType: "budget",
		EntityID:   id,
		IP:         c.IP(),
	})

	return c.JSON(b)
}

func (h *Handler) DeleteBudget(c *fiber.Ctx) error {
	userID, err := extractUserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := budgetIDParam(c)
	if err != nil {
		return err
	}

	err = h.Repo.Delete(userContext(c), userID, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return fiber.NewError(fiber.StatusNotFound, "Budget not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete budget: "+err.Error())
	}

	audit.Record(userContext(c), h.Repo.Pool, audit.Entry{
		UserID:     userID,
		Action:     "budget.delete",
		EntityType: "budget",
		EntityID:   id,
		IP:         c.IP(),
	})

	return c.JSON(fiber.Map{"message": "Budget removed"})
}

// budgetIDParam validates the :id path segment. A malformed id can
// never name an existing budget, so it reads as a 404 rather than a
// database cast error.
func budgetIDParam(c *fiber.Ctx) (string, error) {
	raw := strings.TrimSpace(c.Params("id"))
	if _, err := uuid.Parse(raw); err != nil {
		return "", fiber.NewError(fiber.StatusNotFound, "Budget not found")
	}
	return raw, nil
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
