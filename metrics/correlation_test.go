package metrics

import (
	"math"
	"testing"

	"github.com/annolab/agreement/rating"
)

func TestPearsonPerfectLinear(t *testing.T) {
	a := rating.Column([]float64{0, 1, 2, 3, 4})
	b := rating.Column([]float64{10, 12, 14, 16, 18})
	r := PearsonR(a, b)
	if !r.Defined {
		t.Fatalf("Pearson undefined: %v", r.Interpretation)
	}
	if math.Abs(r.Value-1.0) > 1e-12 {
		t.Errorf("Pearson r = %v, want 1.0", r.Value)
	}
	if r.PValue > 1e-9 {
		t.Errorf("p-value = %v, want ~0 for |r| = 1", r.PValue)
	}
}

func TestSpearmanMonotoneNonlinear(t *testing.T) {
	// Monotone but curved: Spearman sees perfect rank agreement,
	// Pearson does not.
	a := rating.Column([]float64{1, 2, 3, 4, 5})
	b := rating.Column([]float64{1, 4, 9, 16, 25})
	sp := SpearmanRho(a, b)
	pe := PearsonR(a, b)
	if !sp.Defined || !pe.Defined {
		t.Fatalf("undefined: %v / %v", sp.Interpretation, pe.Interpretation)
	}
	if math.Abs(sp.Value-1.0) > 1e-12 {
		t.Errorf("Spearman rho = %v, want 1.0", sp.Value)
	}
	if pe.Value >= 1 {
		t.Errorf("Pearson r = %v, want below 1 on curved data", pe.Value)
	}
}

func TestSpearmanHandlesTies(t *testing.T) {
	a := rating.Column([]float64{0, 1, 1, 2})
	b := rating.Column([]float64{0, 1, 1, 2})
	r := SpearmanRho(a, b)
	if !r.Defined {
		t.Fatalf("Spearman undefined: %v", r.Interpretation)
	}
	if math.Abs(r.Value-1.0) > 1e-12 {
		t.Errorf("Spearman rho = %v, want 1.0 with shared ties", r.Value)
	}
}

func TestCorrelationAntithetic(t *testing.T) {
	a := rating.Column([]float64{0, 1, 2, 3})
	b := rating.Column([]float64{3, 2, 1, 0})
	r := PearsonR(a, b)
	if math.Abs(r.Value+1.0) > 1e-12 {
		t.Errorf("Pearson r = %v, want -1.0", r.Value)
	}
}

func TestCorrelationNeedsThreePairs(t *testing.T) {
	a := rating.Column([]float64{0, 1})
	b := rating.Column([]float64{0, 1})
	if r := PearsonR(a, b); r.Defined || r.Reason != ReasonInsufficientData {
		t.Errorf("Pearson on 2 pairs = %+v, want insufficient data", r)
	}
	if r := SpearmanRho(a, b); r.Defined || r.Reason != ReasonInsufficientData {
		t.Errorf("Spearman on 2 pairs = %+v, want insufficient data", r)
	}
}

func TestCorrelationConstantColumn(t *testing.T) {
	a := rating.Column([]float64{1, 1, 1, 1})
	b := rating.Column([]float64{0, 1, 2, 3})
	r := PearsonR(a, b)
	if r.Defined {
		t.Fatalf("Expected undefined correlation against a constant column, got %v", r.Value)
	}
	if r.Reason != ReasonDegenerateVariance {
		t.Errorf("Reason = %v, want degenerate variance", r.Reason)
	}
}

func TestCorrelationPValueRange(t *testing.T) {
	a := rating.Column([]float64{0, 2, 1, 2, 0, 1, 2, 1})
	b := rating.Column([]float64{0, 1, 1, 2, 1, 1, 2, 0})
	r := PearsonR(a, b)
	if !r.Defined {
		t.Fatalf("Pearson undefined: %v", r.Interpretation)
	}
	if r.PValue <= 0 || r.PValue >= 1 {
		t.Errorf("p-value = %v, want strictly inside (0, 1)", r.PValue)
	}
}

func TestAverageRanks(t *testing.T) {
	got := averageRanks([]float64{10, 20, 20, 30})
	want := []float64{1, 2.5, 2.5, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("averageRanks[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
