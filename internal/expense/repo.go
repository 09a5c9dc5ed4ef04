package expense

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	Pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{Pool: pool}
}

// Insert stores an expense against a budget the user owns. The
// INSERT..SELECT keeps the ownership check and the write in one
// statement; no matching budget means no row and pgx.ErrNoRows.
func (r *Repository) Insert(ctx context.Context, userID string, e *Expense) error {
	return r.Pool.QueryRow(ctx, `
		INSERT INTO expenses (budget_id, category, amount, spent_on, note)
		SELECT b.id, $3, $4, $5, $6
		FROM budgets b
		WHERE b.id = $1::uuid AND b.user_id = $2::uuid
		RETURNING id, created_at
	`, e.BudgetID, userID, e.Category, e.Amount, e.Date, e.Note).Scan(&e.ID, &e.CreatedAt)
}

// ListByBudget returns expenses for one budget id, including orphans
// whose budget has since been deleted.
func (r *Repository) ListByBudget(ctx context.Context, budgetID string) ([]Expense, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT id, budget_id, category, amount, spent_on, note, created_at
		FROM expenses
		WHERE budget_id = $1::uuid
		ORDER BY spent_on DESC, created_at DESC
	`, budgetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

// ListByUser returns every expense under the user's budgets.
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]Expense, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT e.id, e.budget_id, e.category, e.amount, e.spent_on, e.note, e.created_at
		FROM expenses e
		JOIN budgets b ON b.id = e.budget_id
		WHERE b.user_id = $1::uuid
		ORDER BY e.spent_on DESC, e.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

// MapByBudgets groups the expenses of several budgets by budget id.
// Used by trend aggregation to avoid one query per budget.
func (r *Repository) MapByBudgets(ctx context.Context, budgetIDs []string) (map[string][]Expense, error) {
	out := make(map[string][]Expense, len(budgetIDs))
	if len(budgetIDs) == 0 {
		return out, nil
	}

	rows, err := r.Pool.Query(ctx, `
		SELECT id, budget_id, category, amount, spent_on, note, created_at
		FROM expenses
		WHERE budget_id = ANY($1::uuid[])
	`, budgetIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items, err := collect(rows)
	if err != nil {
		return nil, err
	}
	for _, e := range items {
		out[e.BudgetID] = append(out[e.BudgetID], e)
	}
	return out, nil
}

// Delete removes an expense unless its budget belongs to another user.
// Orphaned expenses have no owning budget left, so their original
// creator (or anyone authenticated, like the source system) can clear
// them by id.
func (r *Repository) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.Pool.Exec(ctx, `
		DELETE FROM expenses e
		WHERE e.id = $1::uuid
		  AND NOT EXISTS (
		      SELECT 1 FROM budgets b
		      WHERE b.id = e.budget_id AND b.user_id <> $2::uuid
		  )
	`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func collect(rows pgx.Rows) ([]Expense, error) {
	out := make([]Expense, 0)
	for rows.Next() {
		var e Expense
		if err := rows.Scan(&e.ID, &e.BudgetID, &e.Category, &e.Amount, &e.Date, &e.Note, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
