package expense

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestCreateExpenseRequestValidate(t *testing.T) {
	valid := CreateExpenseRequest{
		BudgetID: "5b0b3f9e-0000-0000-0000-000000000000",
		Category: "Food",
		Amount:   f(12.5),
		Date:     "2024-01-15",
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(r *CreateExpenseRequest)
		wantErr string
	}{
		{"missing budget", func(r *CreateExpenseRequest) { r.BudgetID = "" }, "budgetId required"},
		{"missing category", func(r *CreateExpenseRequest) { r.Category = "" }, "category required"},
		{"missing amount", func(r *CreateExpenseRequest) { r.Amount = nil }, "amount required"},
		{"negative amount", func(r *CreateExpenseRequest) { r.Amount = f(-1) }, "amount must not be negative"},
		{"missing date", func(r *CreateExpenseRequest) { r.Date = "" }, "date required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			assert.EqualError(t, req.Validate(), tt.wantErr)
		})
	}

	t.Run("zero amount is allowed", func(t *testing.T) {
		req := valid
		req.Amount = f(0)
		assert.NoError(t, req.Validate())
	})

	t.Run("note is optional", func(t *testing.T) {
		req := valid
		req.Note = nil
		assert.NoError(t, req.Validate())
	})
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseDate("2024-01-15T08:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 8, got.Hour())

	_, err = ParseDate("15/01/2024")
	assert.Error(t, err)
}
