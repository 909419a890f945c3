package deductions

import "math"

const (
	housingFundLowerBound = 1000.0
	housingFundUpperBound = 1500.0
	housingFundLowRate    = 0.01
	housingFundHighRate   = 0.02
	housingFundCap        = 100.0

	healthInsurancePremium = 0.04
)

// Income represents the three monthly amounts a calculation is based on.
// OtherTaxables and NonTaxables default to 0.
type Income struct {
	BasicIncome   float64 `json:"basicIncome"`
	OtherTaxables float64 `json:"otherTaxables"`
	NonTaxables   float64 `json:"nonTaxables"`
}

// Breakdown contains every deduction line of the calculation.
type Breakdown struct {
	SocialInsurance    float64 `json:"socialInsurance"`
	SocialInsuranceMDF float64 `json:"socialInsuranceMdf"`
	HealthInsurance    float64 `json:"healthInsurance"`
	HousingFund        float64 `json:"housingFund"`
	WithholdingTax     float64 `json:"withholdingTax"`
}

// Totals contains roll-up values of the calculation.
type Totals struct {
	TaxableIncome   float64 `json:"taxableIncome"`
	TotalDeductions float64 `json:"totalDeductions"`
	TotalEarnings   float64 `json:"totalEarnings"`
	TakeHomePay     float64 `json:"takeHomePay"`
}

// Result groups the full calculation output.
type Result struct {
	Income    Income    `json:"income"`
	Breakdown Breakdown `json:"breakdown"`
	Totals    Totals    `json:"totals"`
}

// Calculator computes statutory deductions for a single Income.
// The zero value calculates for a zero income. It is safe for concurrent use.
type Calculator struct {
	income Income
}

// New returns a Calculator for income.
func New(income Income) Calculator {
	return Calculator{income: income}
}

// Income returns the amounts the calculator was built from.
func (c Calculator) Income() Income {
	return c.income
}

// HousingFund returns the employee's housing fund (Pag-IBIG) contribution.
func (c Calculator) HousingFund() float64 {
	basic := c.income.BasicIncome

	var contribution float64
	switch {
	case basic < housingFundLowerBound:
		contribution = 0
	case basic <= housingFundUpperBound:
		contribution = basic * housingFundLowRate
	default:
		contribution = basic * housingFundHighRate
	}

	return math.Min(contribution, housingFundCap)
}

// HealthInsurance returns the employee's half of the health insurance (PhilHealth) premium.
func (c Calculator) HealthInsurance() float64 {
	return c.income.BasicIncome * healthInsurancePremium / 2
}

// SocialInsuranceSplit returns the social insurance (SSS) regular contribution
// and the mandatory provident fund share separately.
func (c Calculator) SocialInsuranceSplit() (contribution, mdf float64) {
	basic := c.income.BasicIncome
	if basic == 0 {
		return 0, 0
	}

	i, pos := SocialInsuranceTable.Lookup(basic)
	if pos != Within || i == 0 {
		// Nothing below the first real bracket and nothing above the table has
		// its own row; both fall back to the top bracket.
		return topContribution.Regular, topContribution.MDF
	}

	row := SocialInsuranceTable[i].Value
	return row.Regular, row.MDF
}

// SocialInsurance returns the social insurance contribution including the provident fund.
func (c Calculator) SocialInsurance() float64 {
	contribution, mdf := c.SocialInsuranceSplit()
	return contribution + mdf
}

// TaxableIncome returns basic and other taxable income net of the three
// mandatory contributions.
func (c Calculator) TaxableIncome() float64 {
	contributions := c.SocialInsurance() + c.HousingFund() + c.HealthInsurance()
	return c.income.BasicIncome + c.income.OtherTaxables - contributions
}

// WithholdingTax returns the monthly withholding tax on TaxableIncome.
func (c Calculator) WithholdingTax() float64 {
	return withholdingTax(c.TaxableIncome())
}

func withholdingTax(taxable float64) float64 {
	i, pos := WithholdingTaxTable.Lookup(taxable)
	if pos == Below {
		return 0
	}

	row := WithholdingTaxTable[i]
	return row.Value.Base + (taxable-row.Threshold)*row.Value.Rate
}

// TotalDeductions returns the sum of all contributions and the withholding tax.
func (c Calculator) TotalDeductions() float64 {
	return c.SocialInsurance() + c.HousingFund() + c.HealthInsurance() + c.WithholdingTax()
}

// TotalEarnings returns basic, other taxable and non-taxable income combined.
func (c Calculator) TotalEarnings() float64 {
	return c.income.BasicIncome + c.income.OtherTaxables + c.income.NonTaxables
}

// TakeHomePay returns TotalEarnings less TotalDeductions.
func (c Calculator) TakeHomePay() float64 {
	return c.TotalEarnings() - c.TotalDeductions()
}

// Result computes every line and total at once.
func (c Calculator) Result() Result {
	contribution, mdf := c.SocialInsuranceSplit()

	return Result{
		Income: c.income,
		Breakdown: Breakdown{
			SocialInsurance:    contribution,
			SocialInsuranceMDF: mdf,
			HealthInsurance:    c.HealthInsurance(),
			HousingFund:        c.HousingFund(),
			WithholdingTax:     c.WithholdingTax(),
		},
		Totals: Totals{
			TaxableIncome:   c.TaxableIncome(),
			TotalDeductions: c.TotalDeductions(),
			TotalEarnings:   c.TotalEarnings(),
			TakeHomePay:     c.TakeHomePay(),
		},
	}
}

// Calculate computes the deductions and take-home pay for income.
func Calculate(income Income) Result {
	return New(income).Result()
}
