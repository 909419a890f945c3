package deductions

import "github.com/samber/lo"

// Contribution is the employee share of one social insurance bracket.
type Contribution struct {
	Regular float64
	MDF     float64
}

// TaxBracket is the base tax and marginal rate of one withholding bracket.
type TaxBracket struct {
	Base float64
	Rate float64
}

const (
	socialInsuranceRows  = 45
	socialInsuranceFlat  = 35 // first row where the regular share stops growing
	socialInsuranceStart = 3250.0
	socialInsuranceStep  = 500.0
	contributionStart    = 135.0
	contributionStep     = 22.5
	contributionCeiling  = 900.0
	mdfStep              = 22.5
	mdfCeiling           = 225.0
)

// topContribution applies to incomes above the table and to incomes below its
// first real bracket.
var topContribution = Contribution{Regular: contributionCeiling, MDF: mdfCeiling}

// SocialInsuranceTable is the monthly salary credit table: a leading zero row
// followed by brackets every 500 from 3250 to 24750.
var SocialInsuranceTable = Table[Contribution](lo.Times(socialInsuranceRows, func(i int) Row[Contribution] {
	row := Row[Contribution]{}
	if i > 0 {
		row.Threshold = socialInsuranceStart + socialInsuranceStep*float64(i-1)
	}
	if i < socialInsuranceFlat {
		row.Value.Regular = contributionStart + contributionStep*float64(i)
	} else {
		row.Value.Regular = contributionCeiling
		row.Value.MDF = mdfStep * float64(i-socialInsuranceFlat+1)
	}
	return row
}))

// WithholdingTaxTable holds the monthly withholding brackets.
var WithholdingTaxTable = Table[TaxBracket]{
	{Threshold: 0, Value: TaxBracket{Base: 0, Rate: 0}},
	{Threshold: 20834, Value: TaxBracket{Base: 0, Rate: 0.20}},
	{Threshold: 33333, Value: TaxBracket{Base: 2500, Rate: 0.25}},
	{Threshold: 66667, Value: TaxBracket{Base: 10833.33, Rate: 0.30}},
	{Threshold: 166667, Value: TaxBracket{Base: 40833.33, Rate: 0.32}},
	{Threshold: 666667, Value: TaxBracket{Base: 200833.33, Rate: 0.35}},
}
