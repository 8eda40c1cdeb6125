package metrics

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/annolab/agreement/rating"
)

// FleissKappa generalizes Cohen's kappa to more than two raters on
// categorical data. The formula assumes a fixed rater count per unit:
// a unit with missing ratings would be silently miscomputed, so any
// incomplete unit makes the whole result insufficient-data. Use
// Krippendorff's alpha for ragged matrices.
//
// When chance agreement is exactly 1 (every assignment identical
// everywhere) the result is 1.0 by convention.
func FleissKappa(m *rating.Matrix) Result {
	n := m.Units()
	k := m.Raters()
	if n < 1 || k < 2 {
		return Undefined(ReasonInsufficientData,
			fmt.Sprintf("need at least 1 unit and 2 raters, have %d units × %d raters", n, k), n)
	}
	for u := 0; u < n; u++ {
		if got := len(m.RowValues(u)); got != k {
			return Undefined(ReasonInsufficientData,
				fmt.Sprintf("unit %d has %d of %d ratings; Fleiss' kappa requires a complete matrix", u, got, k), n)
		}
	}

	values := m.ObservedValues()
	idx := make(map[float64]int, len(values))
	for i, v := range values {
		idx[v] = i
	}

	// Per-unit agreement proportion P_i from the per-category counts,
	// and the category marginals across all assignments.
	pj := make([]float64, len(values))
	var pBar float64
	kf := float64(k)
	for u := 0; u < n; u++ {
		counts := make([]float64, len(values))
		for _, v := range m.RowValues(u) {
			counts[idx[v]]++
		}
		var sumSq float64
		for i, c := range counts {
			sumSq += c * c
			pj[i] += c
		}
		pBar += (sumSq - kf) / (kf * (kf - 1))
	}
	pBar /= float64(n)
	for i := range pj {
		pj[i] /= float64(n) * kf
	}

	pExp := floats.Dot(pj, pj)
	if pExp >= 1 {
		return Result{Value: 1, Defined: true, Interpretation: InterpretKappa(1), N: n}
	}
	kappa := (pBar - pExp) / (1 - pExp)
	return Result{
		Value:          kappa,
		Defined:        true,
		Interpretation: InterpretKappa(kappa),
		N:              n,
	}
}
