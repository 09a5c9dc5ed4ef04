package budget

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	Pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{Pool: pool}
}

// Insert stores a new budget for the user and fills in the generated
// id and timestamps.
func (r *Repository) Insert(ctx context.Context, b *Budget) error {
	cats, err := json.Marshal(b.Categories)
	if err != nil {
		return err
	}

	return r.Pool.QueryRow(
		ctx,
		`INSERT INTO budgets (user_id, month, income, categories)
         VALUES ($1::uuid, $2, $3, $4::jsonb)
         RETURNING id, created_at, updated_at`,
		b.UserID, b.Month, b.Income, cats,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

// ListByUser returns the user's budgets in insertion order. Trend
// consumers take a suffix of this list, so the ordering matters.
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]Budget, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT id, user_id, month, income, categories, created_at, updated_at
		FROM budgets
		WHERE user_id = $1::uuid
		ORDER BY created_at ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Budget, 0)
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Get looks a budget up by (owner, id). Ownership is part of the
// predicate so a foreign budget reads the same as a missing one.
func (r *Repository) Get(ctx context.Context, userID, id string) (*Budget, error) {
	row := r.Pool.QueryRow(ctx, `
		SELECT id, user_id, month, income, categories, created_at, updated_at
		FROM budgets
		WHERE id = $1::uuid AND user_id = $2::uuid
	`, id, userID)

	b, err := scanBudget(row)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Update applies the non-nil fields of req. A provided category list
// replaces the stored one wholesale; there is no merge by name.
func (r *Repository) Update(ctx context.Context, userID, id string, req UpdateBudgetRequest) (*Budget, error) {
	var cats []byte
	if req.Categories != nil {
		var err error
		cats, err = json.Marshal(*req.Categories)
		if err != nil {
			return nil, err
		}
	}

	row := r.Pool.QueryRow(ctx, `
		UPDATE budgets
		SET month      = COALESCE($3, month),
		    income     = COALESCE($4, income),
		    categories = COALESCE($5::jsonb, categories),
		    updated_at = NOW()
		WHERE id = $1::uuid AND user_id = $2::uuid
		RETURNING id, user_id, month, income, categories, created_at, updated_at
	`, id, userID, req.Month, req.Income, cats)

	b, err := scanBudget(row)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Delete removes the budget only. Expenses pointing at it are left in
// place as orphans; they stay retrievable by budget id.
func (r *Repository) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.Pool.Exec(ctx,
		`DELETE FROM budgets WHERE id = $1::uuid AND user_id = $2::uuid`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanBudget(row pgx.Row) (Budget, error) {
	var (
		b        Budget
		catsJSON []byte
	)
	if err := row.Scan(&b.ID, &b.UserID, &b.Month, &b.Income, &catsJSON, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return Budget{}, err
	}
	b.Categories = make([]Category, 0)
	if len(catsJSON) > 0 {
		if err := json.Unmarshal(catsJSON, &b.Categories); err != nil {
			return Budget{}, err
		}
	}
	return b, nil
}
