package main

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Simplici0/netpay/internal/deductions"
	"github.com/Simplici0/netpay/internal/money"
	"github.com/Simplici0/netpay/internal/payslip"
)

// defaultBasicPay is 21.5 working days at 750 a day.
const defaultBasicPay = 750 * 21.5

type incomeForm struct {
	BasicPay      string
	OtherTaxables string
	NonTaxables   string
}

type calculatorViewData struct {
	baseViewData
	Form        incomeForm
	Deductions  []payslip.Line
	TakeHomePay payslip.Line
}

func (s *server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.renderTemplate(w, http.StatusOK, "calculator.html", calculatorViewData{
		Form: incomeForm{
			BasicPay:      strconv.FormatFloat(defaultBasicPay, 'f', 2, 64),
			OtherTaxables: "0.00",
			NonTaxables:   "0.00",
		},
	})
}

func (s *server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form := readIncomeForm(r)
	income, err := form.parse()
	if err != nil {
		s.renderTemplate(w, http.StatusBadRequest, "calculator.html", calculatorViewData{
			baseViewData: baseViewData{ErrorMessage: err.Error()},
			Form:         form,
		})
		return
	}

	result := deductions.Calculate(income)
	s.log.WithField("basicIncome", income.BasicIncome).Debug("calculated take-home pay")

	s.renderTemplate(w, http.StatusOK, "calculator.html", calculatorViewData{
		Form:        form,
		Deductions:  payslip.Deductions(result),
		TakeHomePay: payslip.Line{Label: payslip.LabelTakeHomePay, Amount: result.Totals.TakeHomePay},
	})
}

func (s *server) handleCalculateText(w http.ResponseWriter, r *http.Request) {
	slip, ok := s.slipFromForm(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := payslip.WriteText(&buf, slip); err != nil {
		s.log.WithError(err).Error("render text payslip")
		http.Error(w, "failed to render payslip", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *server) handleCalculatePDF(w http.ResponseWriter, r *http.Request) {
	slip, ok := s.slipFromForm(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := payslip.WritePDF(&buf, slip); err != nil {
		s.log.WithError(err).Error("render pdf payslip")
		http.Error(w, "failed to render payslip", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="payslip-%s.pdf"`, slip.Reference))
	_, _ = buf.WriteTo(w)
}

func (s *server) slipFromForm(w http.ResponseWriter, r *http.Request) (payslip.Slip, bool) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return payslip.Slip{}, false
	}

	income, err := readIncomeForm(r).parse()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return payslip.Slip{}, false
	}

	return payslip.Slip{
		Reference: s.newReference(),
		Symbol:    s.symbol(),
		Result:    deductions.Calculate(income),
	}, true
}

func readIncomeForm(r *http.Request) incomeForm {
	return incomeForm{
		BasicPay:      strings.TrimSpace(r.FormValue("basic_pay")),
		OtherTaxables: strings.TrimSpace(r.FormValue("other_taxables")),
		NonTaxables:   strings.TrimSpace(r.FormValue("non_taxables")),
	}
}

func (f incomeForm) parse() (deductions.Income, error) {
	var income deductions.Income

	if f.BasicPay == "" {
		return income, fmt.Errorf("basic pay is required")
	}

	var err error
	if income.BasicIncome, err = parseNonNegativeFloat(f.BasicPay, "basic pay"); err != nil {
		return income, err
	}
	if income.OtherTaxables, err = parseOptionalAmount(f.OtherTaxables, "other taxables"); err != nil {
		return income, err
	}
	if income.NonTaxables, err = parseOptionalAmount(f.NonTaxables, "non-taxables"); err != nil {
		return income, err
	}

	return income, nil
}

func parseOptionalAmount(raw, field string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	return parseNonNegativeFloat(raw, field)
}

// parseNonNegativeFloat accepts thousands separators, e.g. "16,125.00".
func parseNonNegativeFloat(raw, field string) (float64, error) {
	value, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("%s %w", field, money.ErrNotANumber)
	}
	if err := money.CheckAmount(value); err != nil {
		return 0, fmt.Errorf("%s %w", field, err)
	}
	return value, nil
}
