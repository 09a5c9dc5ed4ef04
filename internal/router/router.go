package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/adamstosho/Finura/internal/budget"
	"github.com/adamstosho/Finura/internal/expense"
	handlers "github.com/adamstosho/Finura/internal/http"
	"github.com/adamstosho/Finura/internal/reports"
	"github.com/adamstosho/Finura/internal/summary"
)

type Router struct {
	AuthHandler    *handlers.AuthHandler
	BudgetHandler  *budget.Handler
	ExpenseHandler *expense.Handler
	SummaryHandler *summary.Handler
	ReportsHandler *reports.Handler
	AuthMW         fiber.Handler
}

func (r *Router) RegisterRoutes(app *fiber.App) {
	if r.AuthHandler != nil {
		app.Post("/api/auth/register", RateLimitAuth(), r.AuthHandler.Register)
		app.Post("/api/auth/login", RateLimitAuth(), r.AuthHandler.Login)
		app.Put("/api/auth/settings", r.AuthMW, r.AuthHandler.UpdateSettings)
	}

	if r.BudgetHandler != nil {
		app.Post("/api/budget", r.AuthMW, r.BudgetHandler.CreateBudget)
		app.Get("/api/budget", r.AuthMW, r.BudgetHandler.ListBudgets)
		app.Get("/api/budget/:id", r.AuthMW, r.BudgetHandler.GetBudget)
		app.Put("/api/budget/:id", r.AuthMW, r.BudgetHandler.UpdateBudget)
		app.Delete("/api/budget/:id", r.AuthMW, r.BudgetHandler.DeleteBudget)
	}

	if r.ExpenseHandler != nil {
		app.Post("/api/expenses", r.AuthMW, r.ExpenseHandler.CreateExpense)
		app.Get("/api/expenses", r.AuthMW, r.ExpenseHandler.ListExpenses)
		app.Delete("/api/expenses/:id", r.AuthMW, r.ExpenseHandler.DeleteExpense)
	}

	if r.SummaryHandler != nil {
		app.Get("/api/summary", r.AuthMW, r.SummaryHandler.GetSummary)
		app.Get("/api/summary/trend", r.AuthMW, r.SummaryHandler.GetTrend)
	}

	if r.ReportsHandler != nil {
		app.Get("/api/reports/budget/:id", r.AuthMW, r.ReportsHandler.BudgetStatement)
	}
}
