package deductions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableLookup(t *testing.T) {
	table := Table[string]{
		{Threshold: 0, Value: "a"},
		{Threshold: 10, Value: "b"},
		{Threshold: 20, Value: "c"},
	}

	cases := []struct {
		x     float64
		index int
		pos   Position
	}{
		{x: -1, index: 0, pos: Below},
		{x: 0, index: 0, pos: Within},
		{x: 9.99, index: 0, pos: Within},
		{x: 10, index: 1, pos: Within},
		{x: 19.99, index: 1, pos: Within},
		{x: 20, index: 2, pos: Above},
		{x: 1000, index: 2, pos: Above},
	}

	for _, tc := range cases {
		index, pos := table.Lookup(tc.x)
		assert.Equal(t, tc.index, index, "index for %v", tc.x)
		assert.Equal(t, tc.pos, pos, "position for %v", tc.x)
	}
}

func TestSocialInsuranceTableShape(t *testing.T) {
	require.Len(t, SocialInsuranceTable, 45)

	thresholds := SocialInsuranceTable.Thresholds()
	assert.Equal(t, 0.0, thresholds[0])
	assert.Equal(t, 3250.0, thresholds[1])
	assert.Equal(t, 24750.0, thresholds[len(thresholds)-1])
	assert.IsIncreasing(t, thresholds)

	assert.Equal(t, Contribution{Regular: 135}, SocialInsuranceTable[0].Value)
	assert.Equal(t, Contribution{Regular: 900}, SocialInsuranceTable[34].Value)
	assert.Equal(t, Contribution{Regular: 900, MDF: 22.5}, SocialInsuranceTable[35].Value)
	assert.Equal(t, topContribution, SocialInsuranceTable[44].Value)
}

func TestWithholdingTaxTableShape(t *testing.T) {
	assert.Equal(t, []float64{0, 20834, 33333, 66667, 166667, 666667}, WithholdingTaxTable.Thresholds())
	assert.IsIncreasing(t, WithholdingTaxTable.Thresholds())
}
