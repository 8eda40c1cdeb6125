package rating

import (
	"testing"
)

func TestFromColumns(t *testing.T) {
	m, err := FromColumns(Column([]float64{0, 1, 2}), Column([]float64{0, 1, 1}))
	if err != nil {
		t.Fatalf("FromColumns: %v", err)
	}
	if m.Units() != 3 || m.Raters() != 2 {
		t.Errorf("Expected 3×2 matrix, got %d×%d", m.Units(), m.Raters())
	}
	v, ok := m.At(2, 1)
	if !ok || v != 1 {
		t.Errorf("At(2,1) = %v, %v; want 1, true", v, ok)
	}
}

func TestFromColumnsRagged(t *testing.T) {
	_, err := FromColumns(Column([]float64{0, 1}), Column([]float64{0}))
	if err == nil {
		t.Error("Expected error for ragged columns")
	}
	_, err = FromColumns(Column([]float64{0, 1}))
	if err == nil {
		t.Error("Expected error for a single column")
	}
}

func TestRowValuesSkipsMissing(t *testing.T) {
	m := NewMatrix(2, 3)
	m.Set(0, 0, 1)
	m.Set(0, 2, 2)
	m.Set(1, 1, 0)

	got := m.RowValues(0)
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("RowValues(0) = %v, want [1 2]", got)
	}
	if !m.HasMissing() {
		t.Error("Expected HasMissing to be true")
	}
	if m.PairableUnits() != 1 {
		t.Errorf("PairableUnits = %d, want 1", m.PairableUnits())
	}
}

func TestCompleteRows(t *testing.T) {
	m := NewMatrix(3, 2)
	m.Set(0, 0, 1)
	m.Set(0, 1, 2)
	m.Set(1, 0, 3) // second cell missing
	m.Set(2, 0, 4)
	m.Set(2, 1, 5)

	cm := m.CompleteRows()
	if cm.Units() != 2 {
		t.Fatalf("CompleteRows kept %d units, want 2", cm.Units())
	}
	if v, _ := cm.At(1, 1); v != 5 {
		t.Errorf("At(1,1) = %v, want 5", v)
	}
}

func TestObservedValuesSortedDistinct(t *testing.T) {
	m, _ := FromColumns(Column([]float64{2, 0, 2}), Column([]float64{1, 0, 2}))
	got := m.ObservedValues()
	want := []float64{0, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("ObservedValues = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ObservedValues[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestResampleMovesRowsTogether(t *testing.T) {
	m, _ := FromColumns(Column([]float64{0, 1, 2}), Column([]float64{10, 11, 12}))
	r := m.Resample([]int{2, 2, 0})
	if r.Units() != 3 {
		t.Fatalf("Resample units = %d, want 3", r.Units())
	}
	if a, _ := r.At(0, 0); a != 2 {
		t.Errorf("resampled At(0,0) = %v, want 2", a)
	}
	if b, _ := r.At(0, 1); b != 12 {
		t.Errorf("resampled At(0,1) = %v, want 12", b)
	}
	// Mutating the resample must not touch the source.
	r.Set(0, 0, 99)
	if v, _ := m.At(2, 0); v != 2 {
		t.Errorf("source mutated by resample: At(2,0) = %v", v)
	}
}

func TestPairedValues(t *testing.T) {
	a := []Cell{Some(1), None(), Some(3), Some(4)}
	b := []Cell{Some(1), Some(2), None(), Some(5)}
	x, y := PairedValues(a, b)
	if len(x) != 2 || len(y) != 2 {
		t.Fatalf("PairedValues kept %d pairs, want 2", len(x))
	}
	if x[1] != 4 || y[1] != 5 {
		t.Errorf("second pair = (%v, %v), want (4, 5)", x[1], y[1])
	}
}
