// Package money formats peso amounts for display.
package money

import (
	"errors"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultSymbol is the currency prefix used when none is configured.
const DefaultSymbol = "Php"

// MaxAmount is the largest income figure accepted for a single field. Sums of
// accepted fields stay finite and well inside decimal's float conversion.
const MaxAmount = 1e12

var (
	ErrNotANumber = errors.New("must be a number")
	ErrNegative   = errors.New("must be greater than or equal to 0")
	ErrTooLarge   = errors.New("must not exceed 1,000,000,000,000")
)

// CheckAmount reports whether amount is a usable income figure.
func CheckAmount(amount float64) error {
	switch {
	case math.IsNaN(amount) || math.IsInf(amount, 0):
		return ErrNotANumber
	case amount < 0:
		return ErrNegative
	case amount > MaxAmount:
		return ErrTooLarge
	}
	return nil
}

// Round returns amount rounded half away from zero to centavos.
func Round(amount float64) decimal.Decimal {
	return decimal.NewFromFloat(amount).Round(2)
}

// Format renders amount as symbol followed by a two-decimal figure with comma
// thousands separators, e.g. "Php16,125.00". Negative amounts get a leading minus.
func Format(symbol string, amount float64) string {
	d := Round(amount)

	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	whole, frac, _ := strings.Cut(d.StringFixed(2), ".")
	return sign + symbol + groupThousands(whole) + "." + frac
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
