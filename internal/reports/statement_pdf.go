package reports

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"github.com/adamstosho/Finura/internal/summary"
)

// BuildStatementPDF lays out a one page budget statement: headline
// figures, then a category table.
func BuildStatementPDF(s summary.BudgetSummary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Finura Budget Statement", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Finura Budget Statement")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Month: %s", s.Month))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Income: %.2f", s.Income))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Total Spend: %.2f", s.TotalSpend))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Remaining: %.2f", s.Remaining))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Category Breakdown")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(60, 7, "Category")
	pdf.Cell(35, 7, "Limit")
	pdf.Cell(35, 7, "Spent")
	pdf.Cell(35, 7, "Remaining")
	pdf.Cell(25, 7, "Used")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 11)
	for _, row := range s.Categories {
		pdf.Cell(60, 7, row.Name)
		pdf.Cell(35, 7, fmt.Sprintf("%.2f", row.Limit))
		pdf.Cell(35, 7, fmt.Sprintf("%.2f", row.Spent))
		pdf.Cell(35, 7, fmt.Sprintf("%.2f", row.Remaining))
		if row.Over && row.Limit == 0 {
			pdf.Cell(25, 7, "OVER")
		} else {
			pdf.Cell(25, 7, fmt.Sprintf("%.1f%%", row.Percentage))
		}
		pdf.Ln(7)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
