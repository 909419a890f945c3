// Package payslip renders a deduction result as labelled lines, plain text or PDF.
package payslip

import (
	"fmt"
	"io"

	"github.com/Simplici0/netpay/internal/deductions"
	"github.com/Simplici0/netpay/internal/money"
)

// Display labels.
const (
	LabelSocialInsurance    = "SSS"
	LabelSocialInsuranceMDF = "SSS MDF"
	LabelHealthInsurance    = "PhilHealth"
	LabelHousingFund        = "Pag-IBIG"
	LabelWithholdingTax     = "Withholding Tax"
	LabelTakeHomePay        = "Take-home pay"

	LabelBasicIncome     = "Basic pay"
	LabelOtherTaxables   = "Other taxables"
	LabelNonTaxables     = "Non-taxables"
	LabelTotalEarnings   = "Total earnings"
	LabelTotalDeductions = "Total deductions"
)

// Line is a single labelled amount.
type Line struct {
	Label  string
	Amount float64
}

// Slip is everything printed on a payslip.
type Slip struct {
	Reference string
	Symbol    string
	Result    deductions.Result
}

// Deductions returns the deduction lines in display order.
func Deductions(r deductions.Result) []Line {
	return []Line{
		{Label: LabelSocialInsurance, Amount: r.Breakdown.SocialInsurance},
		{Label: LabelSocialInsuranceMDF, Amount: r.Breakdown.SocialInsuranceMDF},
		{Label: LabelHealthInsurance, Amount: r.Breakdown.HealthInsurance},
		{Label: LabelHousingFund, Amount: r.Breakdown.HousingFund},
		{Label: LabelWithholdingTax, Amount: r.Breakdown.WithholdingTax},
	}
}

// Earnings returns the income lines a result was computed from.
func Earnings(r deductions.Result) []Line {
	return []Line{
		{Label: LabelBasicIncome, Amount: r.Income.BasicIncome},
		{Label: LabelOtherTaxables, Amount: r.Income.OtherTaxables},
		{Label: LabelNonTaxables, Amount: r.Income.NonTaxables},
	}
}

// Summary returns the totals closing a payslip, ending with take-home pay.
func Summary(r deductions.Result) []Line {
	return []Line{
		{Label: LabelTotalEarnings, Amount: r.Totals.TotalEarnings},
		{Label: LabelTotalDeductions, Amount: r.Totals.TotalDeductions},
		{Label: LabelTakeHomePay, Amount: r.Totals.TakeHomePay},
	}
}

// Format renders l as "Label: Php0.00".
func (l Line) Format(symbol string) string {
	return fmt.Sprintf("%s: %s", l.Label, money.Format(symbol, l.Amount))
}

func (s Slip) symbol() string {
	if s.Symbol == "" {
		return money.DefaultSymbol
	}
	return s.Symbol
}

// WriteText writes the payslip as plain text.
func WriteText(w io.Writer, s Slip) error {
	symbol := s.symbol()
	ew := &errWriter{w: w}

	if s.Reference != "" {
		ew.printf("Reference: %s\n\n", s.Reference)
	}
	for _, l := range Earnings(s.Result) {
		ew.printf("%s\n", l.Format(symbol))
	}
	ew.printf("\nBreakdown of salary deductions:\n")
	for _, l := range Deductions(s.Result) {
		ew.printf("%s\n", l.Format(symbol))
	}
	ew.printf("\n")
	for _, l := range Summary(s.Result) {
		ew.printf("%s\n", l.Format(symbol))
	}

	if ew.err != nil {
		return fmt.Errorf("write payslip text: %w", ew.err)
	}
	return nil
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
