package metrics

import (
	"github.com/annolab/agreement/rating"
)

// PercentAgreement returns the fraction of paired, observed positions
// where the two raters gave the same score, as a percentage. There is
// no chance correction; treat it as a supplementary measure next to the
// chance-corrected coefficients.
func PercentAgreement(a, b []rating.Cell) Result {
	x, y := rating.PairedValues(a, b)
	if len(x) == 0 {
		return Undefined(ReasonInsufficientData, "no paired observations", 0)
	}
	match := 0
	for i := range x {
		if x[i] == y[i] {
			match++
		}
	}
	pct := float64(match) / float64(len(x)) * 100
	return Result{
		Value:          pct,
		Defined:        true,
		Interpretation: InterpretPercentAgreement(pct),
		N:              len(x),
	}
}

// ConfusionMatrix counts (a=i, b=j) pairs over the explicit label set.
// The result is always len(labels) square, so categories that never
// occur still appear as zero rows and columns. Pairs whose value is
// outside labels are ignored.
func ConfusionMatrix(a, b []rating.Cell, labels []float64) [][]int {
	idx := make(map[float64]int, len(labels))
	for i, l := range labels {
		idx[l] = i
	}
	cm := make([][]int, len(labels))
	for i := range cm {
		cm[i] = make([]int, len(labels))
	}
	x, y := rating.PairedValues(a, b)
	for i := range x {
		r, okR := idx[x[i]]
		c, okC := idx[y[i]]
		if okR && okC {
			cm[r][c]++
		}
	}
	return cm
}
