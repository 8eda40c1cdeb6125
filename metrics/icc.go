package metrics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/annolab/agreement/rating"
)

// ICC computes ICC(2,1): two-way random effects, absolute agreement,
// single measure, via the standard ANOVA decomposition. Units with any
// missing rating are dropped before analysis. The 95% CI comes from the
// F statistic MS_rows/MS_error transformed back into the ICC scale.
func ICC(m *rating.Matrix) Result {
	cm := m.CompleteRows()
	n := cm.Units()
	k := cm.Raters()
	if n < 2 || k < 2 {
		return Undefined(ReasonInsufficientData,
			fmt.Sprintf("need at least 2 complete units and 2 raters, have %d units × %d raters", n, k), n)
	}

	// Grand, per-unit, and per-rater means.
	var grand float64
	unitMeans := make([]float64, n)
	raterMeans := make([]float64, k)
	for u := 0; u < n; u++ {
		for r := 0; r < k; r++ {
			v, _ := cm.At(u, r)
			grand += v
			unitMeans[u] += v
			raterMeans[r] += v
		}
	}
	grand /= float64(n * k)
	for u := range unitMeans {
		unitMeans[u] /= float64(k)
	}
	for r := range raterMeans {
		raterMeans[r] /= float64(n)
	}

	// Sums of squares for units (rows), raters (columns), and residual.
	var ssTotal, ssRows, ssCols float64
	for u := 0; u < n; u++ {
		ssRows += math.Pow(unitMeans[u]-grand, 2)
		for r := 0; r < k; r++ {
			v, _ := cm.At(u, r)
			ssTotal += math.Pow(v-grand, 2)
		}
	}
	ssRows *= float64(k)
	for r := 0; r < k; r++ {
		ssCols += math.Pow(raterMeans[r]-grand, 2)
	}
	ssCols *= float64(n)
	ssErr := ssTotal - ssRows - ssCols
	if ssErr < 0 {
		ssErr = 0 // float round-off on near-perfect fits
	}

	dfRows := float64(n - 1)
	dfCols := float64(k - 1)
	dfErr := dfRows * dfCols
	msRows := ssRows / dfRows
	msCols := ssCols / dfCols
	msErr := ssErr / dfErr

	if msErr == 0 {
		return Undefined(ReasonNumericInstability,
			"zero residual variance: the F statistic is unbounded", n)
	}
	den := msRows + (float64(k)-1)*msErr + float64(k)*(msCols-msErr)/float64(n)
	if den == 0 {
		return Undefined(ReasonDegenerateVariance, "no variance across units or raters", n)
	}
	icc := (msRows - msErr) / den

	// 95% CI from the F distribution's 2.5/97.5 percentiles.
	f := msRows / msErr
	fdist := distuv.F{D1: dfRows, D2: dfErr}
	fLower := f / fdist.Quantile(0.975)
	fUpper := f / fdist.Quantile(0.025)
	lo := (fLower - 1) / (fLower + float64(k) - 1)
	hi := (fUpper - 1) / (fUpper + float64(k) - 1)

	return Result{
		Value:          icc,
		Defined:        true,
		CILower:        lo,
		CIUpper:        hi,
		HasCI:          true,
		Interpretation: InterpretICC(icc),
		N:              n,
	}
}
