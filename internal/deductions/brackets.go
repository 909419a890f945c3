package deductions

import "github.com/samber/lo"

// Position describes where an input landed relative to a Table.
type Position int

const (
	// Below means the first threshold already exceeds the input.
	Below Position = iota
	// Within means a later threshold exceeded the input and the row before it was selected.
	Within
	// Above means no threshold exceeds the input; the last row is selected.
	Above
)

// Row is a single bracket: Value applies from Threshold up to the next row's threshold.
type Row[T any] struct {
	Threshold float64
	Value     T
}

// Table is an ascending list of bracket rows.
type Table[T any] []Row[T]

// Lookup finds the first row whose threshold strictly exceeds x and returns
// the row before it. An input below the first threshold selects the first row
// and reports Below; an input at or past the last threshold selects the last
// row and reports Above. The returned index is always a valid row index.
func (t Table[T]) Lookup(x float64) (int, Position) {
	_, i, ok := lo.FindIndexOf(t, func(r Row[T]) bool {
		return r.Threshold > x
	})
	switch {
	case !ok:
		return len(t) - 1, Above
	case i == 0:
		return 0, Below
	default:
		return i - 1, Within
	}
}

// Thresholds returns the row thresholds in order.
func (t Table[T]) Thresholds() []float64 {
	return lo.Map(t, func(r Row[T], _ int) float64 {
		return r.Threshold
	})
}
