package metrics

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/annolab/agreement/rating"
)

// Correlation is a correlation coefficient with its two-sided p-value
// from the t distribution. Correlations are only meaningful for
// ordinal-or-finer scales; the orchestrator gates them accordingly.
type Correlation struct {
	Result
	PValue float64 `json:"p_value,omitempty"`
}

// PearsonR computes Pearson's product-moment correlation over the
// paired observations. Requires at least 3 pairs.
func PearsonR(a, b []rating.Cell) Correlation {
	x, y := rating.PairedValues(a, b)
	if len(x) < 3 {
		return Correlation{Result: Undefined(ReasonInsufficientData,
			fmt.Sprintf("need at least 3 paired observations, have %d", len(x)), len(x))}
	}
	return finishCorrelation(stat.Correlation(x, y, nil), len(x))
}

// SpearmanRho computes Spearman's rank correlation: Pearson's r over
// average ranks, so ties share a rank. Rank-based, hence the preferred
// correlation for ordinal scales.
func SpearmanRho(a, b []rating.Cell) Correlation {
	x, y := rating.PairedValues(a, b)
	if len(x) < 3 {
		return Correlation{Result: Undefined(ReasonInsufficientData,
			fmt.Sprintf("need at least 3 paired observations, have %d", len(x)), len(x))}
	}
	return finishCorrelation(stat.Correlation(averageRanks(x), averageRanks(y), nil), len(x))
}

func finishCorrelation(r float64, n int) Correlation {
	if math.IsNaN(r) {
		return Correlation{Result: Undefined(ReasonDegenerateVariance,
			"zero variance in at least one rater's scores", n)}
	}
	return Correlation{
		Result: Result{Value: r, Defined: true, N: n},
		PValue: correlationPValue(r, n),
	}
}

// correlationPValue is the two-sided p-value for H0: rho = 0, from
// t = r·sqrt((n-2)/(1-r²)) with n-2 degrees of freedom.
func correlationPValue(r float64, n int) float64 {
	if math.Abs(r) >= 1 {
		return 0
	}
	t := r * math.Sqrt(float64(n-2)/(1-r*r))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 2)}
	return 2 * dist.CDF(-math.Abs(t))
}

// averageRanks replaces values with 1-based ranks, ties receiving the
// mean of the ranks they span.
func averageRanks(x []float64) []float64 {
	order := make([]int, len(x))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return x[order[i]] < x[order[j]] })

	ranks := make([]float64, len(x))
	for i := 0; i < len(order); {
		j := i
		for j+1 < len(order) && x[order[j+1]] == x[order[i]] {
			j++
		}
		mean := float64(i+j)/2 + 1
		for g := i; g <= j; g++ {
			ranks[order[g]] = mean
		}
		i = j + 1
	}
	return ranks
}
