package report

import "github.com/annolab/agreement/metrics"

type options struct {
	alpha     metrics.AlphaComputer
	bootstrap *metrics.BootstrapConfig
	labels    []float64
}

// Option adjusts how a report is computed.
type Option func(*options)

// WithAlphaComputer swaps the Krippendorff's alpha implementation, e.g.
// for a vetted external computer. The default is the built-in
// coincidence-matrix implementation.
func WithAlphaComputer(c metrics.AlphaComputer) Option {
	return func(o *options) {
		if c != nil {
			o.alpha = c
		}
	}
}

// WithBootstrap adds a bootstrap confidence interval for Krippendorff's
// alpha to the report, using the given resampling configuration.
func WithBootstrap(cfg metrics.BootstrapConfig) Option {
	return func(o *options) {
		o.bootstrap = &cfg
	}
}

// WithLabels fixes the category label set used for the confusion matrix.
// When set, ComputeAll includes a len(labels) x len(labels) confusion
// matrix in the pair report; values outside the label set are ignored.
func WithLabels(labels []float64) Option {
	return func(o *options) {
		o.labels = labels
	}
}

func buildOptions(opts []Option) options {
	o := options{alpha: metrics.CoincidenceAlpha{}}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
