package metrics

import (
	"math/rand"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/annolab/agreement/internal/monitoring"
	"github.com/annolab/agreement/rating"
)

// BootstrapConfig controls the unit-resampling bootstrap used for
// Krippendorff's alpha confidence intervals. The zero value picks the
// defaults noted per field.
type BootstrapConfig struct {
	// Resamples is the number of bootstrap resamples. Default 1000.
	Resamples int
	// Confidence is the CI mass, in (0, 1). Default 0.95.
	Confidence float64
	// Workers bounds the parallel resample computations. Default
	// GOMAXPROCS. The result is independent of Workers.
	Workers int
	// Seed makes runs reproducible. The same seed yields the same CI
	// regardless of worker count.
	Seed int64
	// MinSuccesses is the minimum number of resamples that must produce
	// a defined alpha before a CI is reported; below it the point
	// estimate stands alone rather than carrying a misleadingly narrow
	// interval. Default 100.
	MinSuccesses int
}

func (c BootstrapConfig) withDefaults() BootstrapConfig {
	if c.Resamples <= 0 {
		c.Resamples = 1000
	}
	if c.Confidence <= 0 || c.Confidence >= 1 {
		c.Confidence = 0.95
	}
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.MinSuccesses <= 0 {
		c.MinSuccesses = 100
	}
	return c
}

// BootstrapAlpha is an alpha point estimate with a bootstrap percentile
// CI and resample accounting. FailedResamples counts resamples whose
// alpha came back undefined (typically all-constant resamples); they
// are reported rather than silently discarded.
type BootstrapAlpha struct {
	Result
	Resamples       int `json:"resamples"`
	FailedResamples int `json:"failed_resamples"`
}

// BootstrapAlphaCI computes Krippendorff's alpha and a percentile
// confidence interval by resampling units with replacement, keeping all
// of a unit's ratings together, and recomputing alpha on each resample.
// A nil computer uses the built-in CoincidenceAlpha. If the point
// estimate itself is undefined, it is returned as-is with no resampling.
func BootstrapAlphaCI(m *rating.Matrix, level rating.Level, computer AlphaComputer, cfg BootstrapConfig) BootstrapAlpha {
	cfg = cfg.withDefaults()
	if computer == nil {
		computer = CoincidenceAlpha{}
	}

	point := computer.Alpha(m, level)
	out := BootstrapAlpha{Result: point, Resamples: cfg.Resamples}
	if !point.Defined {
		return out
	}

	units := m.Units()
	alphas := make([]float64, cfg.Resamples)
	ok := make([]bool, cfg.Resamples)

	// Each resample gets its own RNG seeded by its index, so the
	// stream per resample is fixed no matter how work is divided
	// across workers.
	var g errgroup.Group
	g.SetLimit(cfg.Workers)
	for i := 0; i < cfg.Resamples; i++ {
		i := i
		g.Go(func() error {
			rng := rand.New(rand.NewSource(cfg.Seed + int64(i)))
			idx := make([]int, units)
			for j := range idx {
				idx[j] = rng.Intn(units)
			}
			r := computer.Alpha(m.Resample(idx), level)
			if r.Defined {
				alphas[i] = r.Value
				ok[i] = true
			}
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	kept := make([]float64, 0, cfg.Resamples)
	for i := range alphas {
		if ok[i] {
			kept = append(kept, alphas[i])
		}
	}
	out.FailedResamples = cfg.Resamples - len(kept)

	if len(kept) < cfg.MinSuccesses {
		monitoring.Logf("bootstrap: %d of %d resamples produced a defined alpha (minimum %d); omitting CI",
			len(kept), cfg.Resamples, cfg.MinSuccesses)
		return out
	}

	sort.Float64s(kept)
	tail := (1 - cfg.Confidence) / 2
	out.CILower = stat.Quantile(tail, stat.Empirical, kept, nil)
	out.CIUpper = stat.Quantile(1-tail, stat.Empirical, kept, nil)
	out.HasCI = true
	if len(kept) >= 2 {
		out.StandardError = stat.StdDev(kept, nil)
	}
	return out
}
