package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/adamstosho/Finura/internal/auth"
	"github.com/adamstosho/Finura/internal/domain"
)

type AuthHandler struct {
	DB     *pgxpool.Pool
	Secret []byte
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type settingsRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// authResponse mirrors the original API: account fields plus a fresh
// token on every auth-shaped response.
type authResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
	Token     string `json:"token"`
}

func (h *AuthHandler) respond(u domain.User) (authResponse, error) {
	token, err := auth.GenerateToken(h.Secret, u.ID)
	if err != nil {
		return authResponse{}, err
	}
	return authResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.UTC().Format("2006-01-02T15:04:05.000Z"),
		Token:     token,
	}, nil
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var body registerRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	body.Name = strings.TrimSpace(body.Name)
	body.Email = strings.TrimSpace(body.Email)
	if body.Name == "" || body.Email == "" || body.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Please provide all fields")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}

	u := domain.User{Name: body.Name, Email: body.Email, PasswordHash: string(hashed)}
	err = h.DB.QueryRow(
		userContext(c),
		`INSERT INTO users (name, email, password_hash)
         VALUES ($1, $2, $3)
         RETURNING id, created_at`,
		u.Name, u.Email, u.PasswordHash,
	).Scan(&u.ID, &u.CreatedAt)
	if isUniqueViolation(err) {
		// The original API used 400 here, not 409. Kept for client
		// compatibility.
		return fiber.NewError(fiber.StatusBadRequest, "User already exists")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not create user")
	}

	resp, err := h.respond(u)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not create token")
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body loginRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	var u domain.User
	err := h.DB.QueryRow(
		userContext(c),
		`SELECT id, name, email, password_hash, created_at FROM users WHERE email = $1`,
		strings.TrimSpace(body.Email),
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(body.Password)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}

	resp, err := h.respond(u)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not create token")
	}
	return c.JSON(resp)
}

// UpdateSettings changes name, email, or password. A password change
// needs the current password; name and email changes do not.
func (h *AuthHandler) UpdateSettings(c *fiber.Ctx) error {
	userID, err := extractUserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var body settingsRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	var u domain.User
	err = h.DB.QueryRow(
		userContext(c),
		`SELECT id, name, email, password_hash, created_at FROM users WHERE id = $1::uuid`,
		userID,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return fiber.NewError(fiber.StatusNotFound, "User not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch user")
	}

	if name := strings.TrimSpace(body.Name); name != "" {
		u.Name = name
	}
	if email := strings.TrimSpace(body.Email); email != "" {
		u.Email = email
	}

	if body.NewPassword != "" {
		if body.CurrentPassword == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Current password required to change password")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(body.CurrentPassword)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Current password is incorrect")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(body.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "internal error")
		}
		u.PasswordHash = string(hashed)
	}

	_, err = h.DB.Exec(
		userContext(c),
		`UPDATE users SET name = $2, email = $3, password_hash = $4 WHERE id = $1::uuid`,
		u.ID, u.Name, u.Email, u.PasswordHash,
	)
	if isUniqueViolation(err) {
		return fiber.NewError(fiber.StatusBadRequest, "User already exists")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update user")
	}

	resp, err := h.respond(u)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not create token")
	}
	return c.JSON(resp)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
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
