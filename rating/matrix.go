// Package rating holds the data model for inter-rater reliability
// analysis: a unit × rater grid of scores with explicit missing cells,
// plus the closed enumerations for measurement level and kappa weights.
package rating

import (
	"fmt"
	"sort"
)

// Cell is a single rating slot. Missing ratings are represented
// explicitly rather than through NaN sentinels, so "valid pair"
// filtering is an ordinary predicate instead of floating-point
// comparison semantics.
type Cell struct {
	Value   float64
	Present bool
}

// Some returns an observed rating.
func Some(v float64) Cell {
	return Cell{Value: v, Present: true}
}

// None returns a missing rating.
func None() Cell {
	return Cell{}
}

// Column converts fully observed scores into a rater column.
func Column(values []float64) []Cell {
	out := make([]Cell, len(values))
	for i, v := range values {
		out[i] = Some(v)
	}
	return out
}

// Matrix is a unit × rater grid of ratings. Rows are units (the items
// being rated), columns are raters. A Matrix is built fresh per call
// from caller-supplied data; the engine keeps no state across calls.
type Matrix struct {
	cells  [][]Cell
	raters int
}

// NewMatrix returns an all-missing units × raters grid.
func NewMatrix(units, raters int) *Matrix {
	cells := make([][]Cell, units)
	for u := range cells {
		cells[u] = make([]Cell, raters)
	}
	return &Matrix{cells: cells, raters: raters}
}

// FromColumns builds a matrix from per-rater columns. All columns must
// have the same length (one entry per unit).
func FromColumns(cols ...[]Cell) (*Matrix, error) {
	if len(cols) < 2 {
		return nil, fmt.Errorf("need at least 2 rater columns, have %d", len(cols))
	}
	units := len(cols[0])
	for i, c := range cols[1:] {
		if len(c) != units {
			return nil, fmt.Errorf("rater column %d has %d units, want %d", i+1, len(c), units)
		}
	}
	m := NewMatrix(units, len(cols))
	for r, col := range cols {
		for u, c := range col {
			m.cells[u][r] = c
		}
	}
	return m, nil
}

// FromPair builds a two-rater matrix from two equal-length columns.
func FromPair(a, b []Cell) (*Matrix, error) {
	return FromColumns(a, b)
}

// Units returns the number of rows.
func (m *Matrix) Units() int {
	return len(m.cells)
}

// Raters returns the number of columns.
func (m *Matrix) Raters() int {
	return m.raters
}

// At returns the rating for unit u by rater r and whether it is present.
func (m *Matrix) At(u, r int) (float64, bool) {
	c := m.cells[u][r]
	return c.Value, c.Present
}

// Set records a rating for unit u by rater r.
func (m *Matrix) Set(u, r int, v float64) {
	m.cells[u][r] = Some(v)
}

// Clear marks the cell for unit u, rater r as missing.
func (m *Matrix) Clear(u, r int) {
	m.cells[u][r] = None()
}

// RowValues returns the observed values in unit u, in rater order.
func (m *Matrix) RowValues(u int) []float64 {
	out := make([]float64, 0, m.raters)
	for _, c := range m.cells[u] {
		if c.Present {
			out = append(out, c.Value)
		}
	}
	return out
}

// HasMissing reports whether any cell is missing.
func (m *Matrix) HasMissing() bool {
	for _, row := range m.cells {
		for _, c := range row {
			if !c.Present {
				return true
			}
		}
	}
	return false
}

// CompleteRows returns a copy containing only the units with no missing
// ratings. ICC analyzes this subset.
func (m *Matrix) CompleteRows() *Matrix {
	out := &Matrix{raters: m.raters}
	for _, row := range m.cells {
		complete := true
		for _, c := range row {
			if !c.Present {
				complete = false
				break
			}
		}
		if complete {
			kept := make([]Cell, m.raters)
			copy(kept, row)
			out.cells = append(out.cells, kept)
		}
	}
	return out
}

// PairableUnits counts units with at least two observed ratings. These
// are the units that contribute rater pairs to any agreement metric.
func (m *Matrix) PairableUnits() int {
	n := 0
	for u := range m.cells {
		if len(m.RowValues(u)) >= 2 {
			n++
		}
	}
	return n
}

// ObservedValues returns the sorted distinct values present anywhere in
// the matrix.
func (m *Matrix) ObservedValues() []float64 {
	seen := make(map[float64]struct{})
	for _, row := range m.cells {
		for _, c := range row {
			if c.Present {
				seen[c.Value] = struct{}{}
			}
		}
	}
	out := make([]float64, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Float64s(out)
	return out
}

// Resample returns a new matrix whose rows are m's rows at the given
// indices, in order. A unit's ratings move together, which is what the
// bootstrap requires. Indices may repeat.
func (m *Matrix) Resample(idx []int) *Matrix {
	out := &Matrix{raters: m.raters, cells: make([][]Cell, len(idx))}
	for i, u := range idx {
		row := make([]Cell, m.raters)
		copy(row, m.cells[u])
		out.cells[i] = row
	}
	return out
}

// PairedValues returns the values at positions where both columns have
// an observed rating.
func PairedValues(a, b []Cell) (x, y []float64) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i].Present && b[i].Present {
			x = append(x, a[i].Value)
			y = append(y, b[i].Value)
		}
	}
	return x, y
}
