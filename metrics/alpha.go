package metrics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/annolab/agreement/rating"
)

// AlphaComputer computes Krippendorff's alpha for a rating matrix at a
// declared level of measurement. It is an injected strategy: callers
// who have a vetted external implementation can supply it, and the
// built-in CoincidenceAlpha is the reference fallback. Implementations
// are cross-validated in tests, not assumed equivalent.
type AlphaComputer interface {
	Alpha(m *rating.Matrix, level rating.Level) Result
}

// KrippendorffAlpha computes alpha with the built-in computer.
func KrippendorffAlpha(m *rating.Matrix, level rating.Level) Result {
	return CoincidenceAlpha{}.Alpha(m, level)
}

// CoincidenceAlpha is the built-in coincidence-matrix implementation of
// Krippendorff's alpha (Krippendorff 2004, §11). It handles any rater
// count and tolerates missing cells: a unit with k observed ratings
// contributes k·(k-1) ordered value pairs, units with fewer than two
// contribute nothing.
type CoincidenceAlpha struct{}

// Alpha implements AlphaComputer. The result is undefined when fewer
// than two distinct values were observed, when no unit has two codable
// ratings, or when the expected disagreement is zero.
func (CoincidenceAlpha) Alpha(m *rating.Matrix, level rating.Level) Result {
	if !level.Valid() {
		return Undefined(ReasonInvalidArgument, fmt.Sprintf("unrecognized level of measurement %v", level), 0)
	}
	values := m.ObservedValues()
	nv := len(values)
	if nv < 2 {
		return Undefined(ReasonInsufficientData,
			fmt.Sprintf("need at least 2 distinct observed values, have %d", nv), m.PairableUnits())
	}
	idx := make(map[float64]int, nv)
	for i, v := range values {
		idx[v] = i
	}

	// Coincidence matrix: co.At(i, j) counts ordered pairs of values
	// (values[i], values[j]) co-occurring within a unit. Symmetric with
	// same-value pairs on the diagonal.
	co := mat.NewSymDense(nv, nil)
	for u := 0; u < m.Units(); u++ {
		vals := m.RowValues(u)
		if len(vals) < 2 {
			continue
		}
		counts := make([]float64, nv)
		for _, v := range vals {
			counts[idx[v]]++
		}
		for i := 0; i < nv; i++ {
			if counts[i] == 0 {
				continue
			}
			co.SetSym(i, i, co.At(i, i)+counts[i]*(counts[i]-1))
			for j := i + 1; j < nv; j++ {
				if counts[j] > 0 {
					co.SetSym(i, j, co.At(i, j)+counts[i]*counts[j])
				}
			}
		}
	}

	// Marginal weights per category and the total pairable count.
	nk := make([]float64, nv)
	for i := 0; i < nv; i++ {
		for j := 0; j < nv; j++ {
			nk[i] += co.At(i, j)
		}
	}
	total := floats.Sum(nk)
	if total < 2 {
		return Undefined(ReasonInsufficientData, "no unit has 2 or more codable ratings", m.PairableUnits())
	}

	delta := deltaMatrix(level, values, nk)

	// Observed disagreement over coincidences, expected disagreement
	// over marginal products, each with its pairable-count normalizer.
	var dObs, dExp float64
	for i := 0; i < nv; i++ {
		for j := 0; j < nv; j++ {
			if i == j {
				continue
			}
			dObs += co.At(i, j) * delta[i][j]
			dExp += nk[i] * nk[j] * delta[i][j]
		}
	}
	dObs /= total
	dExp /= total * (total - 1)
	if dExp == 0 {
		return Undefined(ReasonDegenerateVariance,
			"expected disagreement is zero: no variance across ratings", m.PairableUnits())
	}

	alpha := 1 - dObs/dExp
	return Result{
		Value:          alpha,
		Defined:        true,
		Interpretation: InterpretAlpha(alpha),
		N:              m.PairableUnits(),
	}
}

// deltaMatrix builds the symmetric disagreement metric over category
// pairs for the given level:
//
//	nominal:        1 for any two different categories
//	ordinal:        squared cumulative marginal mass between the two
//	                categories, endpoints half-counted (Krippendorff's
//	                ordinal metric; adjacent categories are cheaper
//	                than distant ones, scaled by how often the
//	                in-between categories occur)
//	interval/ratio: squared value difference
func deltaMatrix(level rating.Level, values, nk []float64) [][]float64 {
	nv := len(values)
	d := make([][]float64, nv)
	for i := range d {
		d[i] = make([]float64, nv)
	}
	for i := 0; i < nv; i++ {
		for j := i + 1; j < nv; j++ {
			var w float64
			switch level {
			case rating.Nominal:
				w = 1
			case rating.Ordinal:
				var mass float64
				for g := i; g <= j; g++ {
					mass += nk[g]
				}
				mass -= (nk[i] + nk[j]) / 2
				w = mass * mass
			default: // interval, ratio
				w = math.Pow(values[i]-values[j], 2)
			}
			d[i][j] = w
			d[j][i] = w
		}
	}
	return d
}
