package payslip

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/Simplici0/netpay/internal/money"
)

// WritePDF writes the payslip as a single A4 page.
func WritePDF(w io.Writer, s Slip) error {
	symbol := s.symbol()

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	if s.Reference != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Reference: %s", s.Reference)))
		pdf.Ln(10)
	}

	section := func(title string, lines []Line) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, title)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 12)
		for _, l := range lines {
			pdf.CellFormat(80, 7, tr(l.Label), "", 0, "L", false, 0, "")
			pdf.CellFormat(60, 7, tr(money.Format(symbol, l.Amount)), "", 1, "R", false, 0, "")
		}
		pdf.Ln(4)
	}

	section("Earnings", Earnings(s.Result))
	section("Deductions", Deductions(s.Result))
	section("Summary", Summary(s.Result))

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write payslip pdf: %w", err)
	}
	return nil
}
