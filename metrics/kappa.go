package metrics

import (
	"fmt"
	"math"
	"sort"

	"github.com/annolab/agreement/rating"
)

// CohenKappa computes agreement beyond chance for exactly two raters,
// optionally weighted for ordinal scales. With rating.WeightQuadratic
// the cost of disagreeing between categories i and j grows as (i-j)²,
// so a two-category miss costs four times an adjacent one.
//
// On identical, varied inputs the result is exactly 1.0. When every
// rating falls in a single category the chance agreement is 1 and the
// coefficient is undefined (degenerate variance), not 1.0.
func CohenKappa(a, b []rating.Cell, scheme rating.WeightScheme) Result {
	if !scheme.Valid() {
		return Undefined(ReasonInvalidArgument, fmt.Sprintf("unrecognized weight scheme %v", scheme), 0)
	}
	x, y := rating.PairedValues(a, b)
	n := len(x)
	if n < 2 {
		return Undefined(ReasonInsufficientData, fmt.Sprintf("need at least 2 paired observations, have %d", n), n)
	}

	cats, idx := categoryIndex(x, y)
	k := len(cats)

	// Joint and marginal proportions.
	joint := make([][]float64, k)
	for i := range joint {
		joint[i] = make([]float64, k)
	}
	p1 := make([]float64, k)
	p2 := make([]float64, k)
	inv := 1 / float64(n)
	for i := range x {
		r, c := idx[x[i]], idx[y[i]]
		joint[r][c] += inv
		p1[r] += inv
		p2[c] += inv
	}

	// Weighted observed and expected disagreement.
	var wObs, wExp float64
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			w := disagreementWeight(scheme, i, j)
			wObs += w * joint[i][j]
			wExp += w * p1[i] * p2[j]
		}
	}
	if wExp == 0 {
		return Undefined(ReasonDegenerateVariance,
			"chance agreement is 1: all ratings fall in a single category", n)
	}
	kappa := 1 - wObs/wExp

	// Approximate standard error from the unweighted agreement
	// proportions, then a 95% CI clamped to [-1, 1].
	var po, pe float64
	for i := 0; i < k; i++ {
		po += joint[i][i]
		pe += p1[i] * p2[i]
	}
	var se float64
	if pe < 1 {
		se = math.Sqrt(po * (1 - po) / (float64(n) * (1 - pe) * (1 - pe)))
	}
	const z = 1.96
	return Result{
		Value:          kappa,
		Defined:        true,
		StandardError:  se,
		CILower:        math.Max(-1, kappa-z*se),
		CIUpper:        math.Min(1, kappa+z*se),
		HasCI:          true,
		Interpretation: InterpretKappa(kappa),
		N:              n,
	}
}

// disagreementWeight returns the cost of rater one choosing category i
// while rater two chooses j, for categories indexed in scale order.
func disagreementWeight(scheme rating.WeightScheme, i, j int) float64 {
	d := float64(i - j)
	switch scheme {
	case rating.WeightLinear:
		return math.Abs(d)
	case rating.WeightQuadratic:
		return d * d
	default: // WeightNone
		if i != j {
			return 1
		}
		return 0
	}
}

// categoryIndex returns the sorted distinct values across both columns
// and a value-to-index map over them.
func categoryIndex(x, y []float64) ([]float64, map[float64]int) {
	seen := make(map[float64]struct{}, len(x))
	for _, v := range x {
		seen[v] = struct{}{}
	}
	for _, v := range y {
		seen[v] = struct{}{}
	}
	cats := make([]float64, 0, len(seen))
	for v := range seen {
		cats = append(cats, v)
	}
	sort.Float64s(cats)
	idx := make(map[float64]int, len(cats))
	for i, v := range cats {
		idx[v] = i
	}
	return cats, idx
}
