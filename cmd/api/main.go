package main

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/adamstosho/Finura/internal/auth"
	"github.com/adamstosho/Finura/internal/budget"
	"github.com/adamstosho/Finura/internal/expense"
	apphttp "github.com/adamstosho/Finura/internal/http"
	"github.com/adamstosho/Finura/internal/reports"
	"github.com/adamstosho/Finura/internal/router"
	"github.com/adamstosho/Finura/internal/summary"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	secret := mustJWTSecret()

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("error creating pgx pool: %v", err)
	}
	defer pool.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		log.Fatalf("error pinging database: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "internal server error"

			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
				message = fiberErr.Message
			}

			return c.Status(code).JSON(fiber.Map{"error": message})
		},
	})

	app.Use(router.CorsMiddleware())
	app.Use(requestLogger())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Server is running")
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	budgetRepo := budget.NewRepository(pool)
	expenseRepo := expense.NewRepository(pool)

	r := &router.Router{
		AuthHandler:    &apphttp.AuthHandler{DB: pool, Secret: secret},
		BudgetHandler:  budget.NewHandler(budgetRepo),
		ExpenseHandler: expense.NewHandler(expenseRepo),
		SummaryHandler: summary.NewHandler(budgetRepo, expenseRepo),
		ReportsHandler: reports.NewHandler(budgetRepo, expenseRepo),
		AuthMW:         auth.Middleware(secret),
	}
	r.RegisterRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	log.Println("Listening on port", port)
	log.Fatal(app.Listen(":" + port))
}

func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		log.Printf("%s %s %d %s", c.Method(), c.Path(), status, time.Since(start))
		return err
	}
}

// mustJWTSecret loads JWT_SECRET from the environment or exits the process with a fatal log.
func mustJWTSecret() []byte {
	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	return []byte(secret)
}
