package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annolab/agreement/internal/monitoring"
	"github.com/annolab/agreement/rating"
)

func init() {
	monitoring.SetLogger(nil)
}

// syntheticPair builds an n-unit two-rater matrix on a 0-2 scale where
// every tenth unit disagrees by one category.
func syntheticPair(t *testing.T, n int) *rating.Matrix {
	t.Helper()
	a := make([]float64, n)
	b := make([]float64, n)
	for i := 0; i < n; i++ {
		v := float64(i % 3)
		a[i] = v
		b[i] = v
		if i%10 == 0 {
			b[i] = float64((i + 1) % 3)
		}
	}
	m, err := rating.FromColumns(rating.Column(a), rating.Column(b))
	require.NoError(t, err)
	return m
}

func TestBootstrapAlphaCI(t *testing.T) {
	t.Parallel()

	t.Run("produces a CI that brackets the point estimate", func(t *testing.T) {
		t.Parallel()
		m := syntheticPair(t, 100)
		r := BootstrapAlphaCI(m, rating.Ordinal, nil, BootstrapConfig{Resamples: 500, Seed: 7})
		require.True(t, r.Defined)
		require.True(t, r.HasCI)
		assert.LessOrEqual(t, r.CILower, r.Value)
		assert.GreaterOrEqual(t, r.CIUpper, r.Value)
		assert.LessOrEqual(t, r.CIUpper, 1.0)
		assert.Greater(t, r.StandardError, 0.0)
		assert.Equal(t, 500, r.Resamples)
	})

	t.Run("CI shrinks as the unit count grows", func(t *testing.T) {
		t.Parallel()
		small := BootstrapAlphaCI(syntheticPair(t, 50), rating.Ordinal, nil,
			BootstrapConfig{Resamples: 400, Seed: 11})
		large := BootstrapAlphaCI(syntheticPair(t, 500), rating.Ordinal, nil,
			BootstrapConfig{Resamples: 400, Seed: 11})
		require.True(t, small.HasCI)
		require.True(t, large.HasCI)
		assert.GreaterOrEqual(t, small.CIUpper-small.CILower, large.CIUpper-large.CILower)
	})

	t.Run("reproducible for a fixed seed regardless of workers", func(t *testing.T) {
		t.Parallel()
		m := syntheticPair(t, 60)
		serial := BootstrapAlphaCI(m, rating.Ordinal, nil,
			BootstrapConfig{Resamples: 300, Seed: 42, Workers: 1})
		parallel := BootstrapAlphaCI(m, rating.Ordinal, nil,
			BootstrapConfig{Resamples: 300, Seed: 42, Workers: 8})
		assert.Equal(t, serial.CILower, parallel.CILower)
		assert.Equal(t, serial.CIUpper, parallel.CIUpper)
		assert.Equal(t, serial.FailedResamples, parallel.FailedResamples)
	})

	t.Run("counts failed resamples instead of hiding them", func(t *testing.T) {
		t.Parallel()
		// Two constant units and one mixed unit: resamples that draw
		// only the constant units have no variance and fail.
		m, err := rating.FromColumns(
			[]rating.Cell{rating.Some(0), rating.Some(0), rating.Some(0)},
			[]rating.Cell{rating.Some(0), rating.Some(0), rating.Some(1)},
		)
		require.NoError(t, err)
		r := BootstrapAlphaCI(m, rating.Nominal, nil,
			BootstrapConfig{Resamples: 300, Seed: 3, MinSuccesses: 50})
		require.True(t, r.Defined)
		assert.Positive(t, r.FailedResamples)
		assert.True(t, r.HasCI, "enough resamples succeed to report a CI")
	})

	t.Run("omits the CI below the success threshold", func(t *testing.T) {
		t.Parallel()
		m, err := rating.FromColumns(
			[]rating.Cell{rating.Some(0), rating.Some(0), rating.Some(0)},
			[]rating.Cell{rating.Some(0), rating.Some(0), rating.Some(1)},
		)
		require.NoError(t, err)
		// Demand that every resample succeed; some cannot.
		r := BootstrapAlphaCI(m, rating.Nominal, nil,
			BootstrapConfig{Resamples: 300, Seed: 3, MinSuccesses: 300})
		require.True(t, r.Defined, "point estimate survives")
		assert.False(t, r.HasCI)
		assert.Positive(t, r.FailedResamples)
	})

	t.Run("undefined point estimate skips resampling", func(t *testing.T) {
		t.Parallel()
		m, err := rating.FromColumns(
			rating.Column([]float64{1, 1}),
			rating.Column([]float64{1, 1}),
		)
		require.NoError(t, err)
		r := BootstrapAlphaCI(m, rating.Ordinal, nil, BootstrapConfig{Resamples: 100, Seed: 1})
		assert.False(t, r.Defined)
		assert.False(t, r.HasCI)
		assert.Equal(t, ReasonInsufficientData, r.Reason)
	})

	t.Run("uses an injected computer", func(t *testing.T) {
		t.Parallel()
		m := syntheticPair(t, 10)
		stub := stubAlpha{value: 0.5}
		r := BootstrapAlphaCI(m, rating.Ordinal, stub, BootstrapConfig{Resamples: 120, Seed: 1})
		require.True(t, r.Defined)
		assert.Equal(t, 0.5, r.Value)
		assert.True(t, r.HasCI)
		// Every resample returns the same alpha, so the interval is a point.
		assert.Equal(t, 0.5, r.CILower)
		assert.Equal(t, 0.5, r.CIUpper)
	})
}

type stubAlpha struct {
	value float64
}

func (s stubAlpha) Alpha(_ *rating.Matrix, _ rating.Level) Result {
	return Result{Value: s.value, Defined: true, Interpretation: InterpretAlpha(s.value)}
}
