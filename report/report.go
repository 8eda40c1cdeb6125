// Package report assembles the metric kernels into the public analysis
// entry points: the two-rater bundle, the multi-rater bundle, and the
// comprehensive multi-source comparison. Reports are plain data; how an
// undefined metric is displayed is the consumer's decision.
package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/annolab/agreement/metrics"
	"github.com/annolab/agreement/rating"
)

// PairReport bundles every metric applicable to a two-rater comparison
// at the declared level. Pointer fields are nil when the level makes
// the metric inapplicable (e.g. no kappa for interval data, no ICC for
// nominal data).
type PairReport struct {
	Level             string                  `json:"level"`
	N                 int                     `json:"n"`
	PercentAgreement  metrics.Result          `json:"percent_agreement"`
	KrippendorffAlpha metrics.Result          `json:"krippendorff_alpha"`
	AlphaBootstrap    *metrics.BootstrapAlpha `json:"alpha_bootstrap,omitempty"`
	CohenKappa        *metrics.Result         `json:"cohen_kappa,omitempty"`
	WeightedKappa     *metrics.Result         `json:"weighted_kappa,omitempty"`
	ICC               *metrics.Result         `json:"icc,omitempty"`
	PearsonR          *metrics.Correlation    `json:"pearson_r,omitempty"`
	SpearmanRho       *metrics.Correlation    `json:"spearman_rho,omitempty"`
	Labels            []float64               `json:"labels,omitempty"`
	ConfusionMatrix   [][]int                 `json:"confusion_matrix,omitempty"`
}

// ComputeAll runs the full two-rater battery: always percent agreement
// and Krippendorff's alpha; unweighted Cohen's kappa for nominal and
// ordinal scales, quadratic-weighted kappa additionally for ordinal;
// ICC and both correlations for ordinal-or-finer scales. A confusion
// matrix is included only when WithLabels supplies the label set.
func ComputeAll(a, b []rating.Cell, level rating.Level, opts ...Option) PairReport {
	o := buildOptions(opts)
	if !level.Valid() {
		bad := metrics.Undefined(metrics.ReasonInvalidArgument,
			fmt.Sprintf("unrecognized level of measurement %v", level), 0)
		return PairReport{Level: level.String(), PercentAgreement: bad, KrippendorffAlpha: bad}
	}

	x, _ := rating.PairedValues(a, b)
	rep := PairReport{Level: level.String(), N: len(x)}
	rep.PercentAgreement = metrics.PercentAgreement(a, b)

	m, err := rating.FromPair(a, b)
	if err != nil {
		rep.KrippendorffAlpha = metrics.Undefined(metrics.ReasonInvalidArgument, err.Error(), len(x))
		return rep
	}
	rep.KrippendorffAlpha = o.alpha.Alpha(m, level)
	if o.bootstrap != nil {
		ba := metrics.BootstrapAlphaCI(m, level, o.alpha, *o.bootstrap)
		rep.AlphaBootstrap = &ba
	}

	if level == rating.Nominal || level == rating.Ordinal {
		ck := metrics.CohenKappa(a, b, rating.WeightNone)
		rep.CohenKappa = &ck
		if level == rating.Ordinal {
			wk := metrics.CohenKappa(a, b, rating.WeightQuadratic)
			rep.WeightedKappa = &wk
		}
	}
	if o.labels != nil {
		rep.Labels = o.labels
		rep.ConfusionMatrix = metrics.ConfusionMatrix(a, b, o.labels)
	}
	if level.Ranked() {
		icc := metrics.ICC(m)
		rep.ICC = &icc
		pr := metrics.PearsonR(a, b)
		rep.PearsonR = &pr
		sr := metrics.SpearmanRho(a, b)
		rep.SpearmanRho = &sr
	}
	return rep
}

// MultiRaterReport bundles the metrics applicable to three or more
// raters on a common ordinal scale. FleissKappa gates itself: it is an
// insufficient-data result whenever the matrix has missing cells.
type MultiRaterReport struct {
	Units             int                     `json:"units"`
	Raters            int                     `json:"raters"`
	KrippendorffAlpha metrics.Result          `json:"krippendorff_alpha"`
	AlphaBootstrap    *metrics.BootstrapAlpha `json:"alpha_bootstrap,omitempty"`
	ICC               metrics.Result          `json:"icc"`
	FleissKappa       metrics.Result          `json:"fleiss_kappa"`
}

// ComputeMultiRater runs the multi-rater battery over an already
// pivoted unit × rater matrix, treating the scale as ordinal per the
// upstream contract.
func ComputeMultiRater(m *rating.Matrix, opts ...Option) MultiRaterReport {
	o := buildOptions(opts)
	rep := MultiRaterReport{
		Units:             m.Units(),
		Raters:            m.Raters(),
		KrippendorffAlpha: o.alpha.Alpha(m, rating.Ordinal),
		ICC:               metrics.ICC(m),
		FleissKappa:       metrics.FleissKappa(m),
	}
	if o.bootstrap != nil {
		ba := metrics.BootstrapAlphaCI(m, rating.Ordinal, o.alpha, *o.bootstrap)
		rep.AlphaBootstrap = &ba
	}
	return rep
}

// Source is one named coding source (a human annotator or an automated
// classifier) with its per-unit ratings.
type Source struct {
	Name    string
	Ratings []rating.Cell
}

// PairComparison is the pairwise diagnostic view between two sources.
type PairComparison struct {
	SourceA          string         `json:"source_a"`
	SourceB          string         `json:"source_b"`
	PercentAgreement metrics.Result `json:"percent_agreement"`
	WeightedKappa    metrics.Result `json:"weighted_kappa"`
}

// ComprehensiveReport layers pairwise quadratic-weighted kappa over the
// multi-rater metrics, giving both a holistic and a per-pair view of
// three or more coding sources.
type ComprehensiveReport struct {
	RunID             string           `json:"run_id"`
	GeneratedAt       time.Time        `json:"generated_at"`
	Sources           []string         `json:"sources"`
	MultiRater        MultiRaterReport `json:"multi_rater"`
	Pairwise          []PairComparison `json:"pairwise"`
	MeanPairwiseKappa metrics.Result   `json:"mean_pairwise_kappa"`
}

// ComputeComprehensive compares two or more named sources over the same
// units. It returns an error only for structurally invalid input
// (fewer than two sources, ragged columns); metric-level degeneracies
// surface inside the report as undefined results.
func ComputeComprehensive(sources []Source, opts ...Option) (*ComprehensiveReport, error) {
	if len(sources) < 2 {
		return nil, fmt.Errorf("comprehensive analysis needs at least 2 sources, have %d", len(sources))
	}
	cols := make([][]rating.Cell, len(sources))
	names := make([]string, len(sources))
	for i, s := range sources {
		cols[i] = s.Ratings
		names[i] = s.Name
	}
	m, err := rating.FromColumns(cols...)
	if err != nil {
		return nil, fmt.Errorf("building rating matrix: %w", err)
	}

	rep := &ComprehensiveReport{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Sources:     names,
		MultiRater:  ComputeMultiRater(m, opts...),
	}

	var sum float64
	var defined int
	for i := 0; i < len(sources); i++ {
		for j := i + 1; j < len(sources); j++ {
			pc := PairComparison{
				SourceA:          sources[i].Name,
				SourceB:          sources[j].Name,
				PercentAgreement: metrics.PercentAgreement(sources[i].Ratings, sources[j].Ratings),
				WeightedKappa:    metrics.CohenKappa(sources[i].Ratings, sources[j].Ratings, rating.WeightQuadratic),
			}
			rep.Pairwise = append(rep.Pairwise, pc)
			if pc.WeightedKappa.Defined {
				sum += pc.WeightedKappa.Value
				defined++
			}
		}
	}
	if defined > 0 {
		mean := sum / float64(defined)
		rep.MeanPairwiseKappa = metrics.Result{
			Value:          mean,
			Defined:        true,
			Interpretation: metrics.InterpretKappa(mean),
			N:              defined,
		}
	} else {
		rep.MeanPairwiseKappa = metrics.Undefined(metrics.ReasonInsufficientData,
			"no source pair produced a defined weighted kappa", 0)
	}
	return rep, nil
}
