package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/samber/lo"

	"github.com/Simplici0/netpay/internal/deductions"
	"github.com/Simplici0/netpay/internal/money"
	"github.com/Simplici0/netpay/internal/payslip"
)

const maxRequestBytes = 1 << 16

type calculateRequest struct {
	BasicIncome   *float64 `json:"basicIncome"`
	OtherTaxables float64  `json:"otherTaxables"`
	NonTaxables   float64  `json:"nonTaxables"`
}

type formattedLine struct {
	Label     string  `json:"label"`
	Amount    float64 `json:"amount"`
	Formatted string  `json:"formatted"`
}

type calculateResponse struct {
	Reference string            `json:"reference"`
	Result    deductions.Result `json:"result"`
	Lines     []formattedLine   `json:"lines"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *server) handleAPICalculate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)

	var req calculateRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	income, err := req.income()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	result := deductions.Calculate(income)
	lines := append(payslip.Deductions(result), payslip.Summary(result)...)

	writeJSON(w, http.StatusOK, calculateResponse{
		Reference: s.newReference(),
		Result:    result,
		Lines: lo.Map(lines, func(l payslip.Line, _ int) formattedLine {
			return formattedLine{Label: l.Label, Amount: l.Amount, Formatted: money.Format(s.symbol(), l.Amount)}
		}),
	})
}

func (req calculateRequest) income() (deductions.Income, error) {
	if req.BasicIncome == nil {
		return deductions.Income{}, fmt.Errorf("basicIncome is required")
	}

	income := deductions.Income{
		BasicIncome:   *req.BasicIncome,
		OtherTaxables: req.OtherTaxables,
		NonTaxables:   req.NonTaxables,
	}
	fields := []struct {
		name  string
		value float64
	}{
		{"basicIncome", income.BasicIncome},
		{"otherTaxables", income.OtherTaxables},
		{"nonTaxables", income.NonTaxables},
	}
	for _, f := range fields {
		if err := money.CheckAmount(f.value); err != nil {
			return deductions.Income{}, fmt.Errorf("%s %w", f.name, err)
		}
	}
	return income, nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
