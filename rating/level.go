package rating

import "fmt"

// Level is the caller-declared level of measurement for a set of ratings.
// It selects the disagreement metric inside Krippendorff's alpha and
// gates which coefficients are meaningful at all (ICC and rank
// correlations need at least an ordering).
type Level int

const (
	Nominal Level = iota
	Ordinal
	Interval
	Ratio
)

func (l Level) String() string {
	switch l {
	case Nominal:
		return "nominal"
	case Ordinal:
		return "ordinal"
	case Interval:
		return "interval"
	case Ratio:
		return "ratio"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Valid reports whether l is one of the declared levels. Compute entry
// points check this first and reject unknown values instead of silently
// defaulting to a level.
func (l Level) Valid() bool {
	return l >= Nominal && l <= Ratio
}

// Ranked reports whether scores at this level carry an ordering
// (ordinal or finer). ICC and correlation coefficients require it.
func (l Level) Ranked() bool {
	return l >= Ordinal && l <= Ratio
}

// Continuous reports whether numeric distances between scores are
// meaningful (interval or ratio).
func (l Level) Continuous() bool {
	return l == Interval || l == Ratio
}

// ParseLevel maps a level name to its Level.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "nominal":
		return Nominal, nil
	case "ordinal":
		return Ordinal, nil
	case "interval":
		return Interval, nil
	case "ratio":
		return Ratio, nil
	}
	return 0, fmt.Errorf("unknown level of measurement %q", s)
}

// WeightScheme selects the disagreement weighting for Cohen's kappa.
// WeightQuadratic is the recommended scheme for ordinal scales: being
// off by two categories costs four times being off by one.
type WeightScheme int

const (
	WeightNone WeightScheme = iota
	WeightLinear
	WeightQuadratic
)

func (w WeightScheme) String() string {
	switch w {
	case WeightNone:
		return "none"
	case WeightLinear:
		return "linear"
	case WeightQuadratic:
		return "quadratic"
	default:
		return fmt.Sprintf("weights(%d)", int(w))
	}
}

// Valid reports whether w is one of the declared schemes.
func (w WeightScheme) Valid() bool {
	return w >= WeightNone && w <= WeightQuadratic
}

// ParseWeightScheme maps a scheme name to its WeightScheme.
func ParseWeightScheme(s string) (WeightScheme, error) {
	switch s {
	case "none":
		return WeightNone, nil
	case "linear":
		return WeightLinear, nil
	case "quadratic":
		return WeightQuadratic, nil
	}
	return 0, fmt.Errorf("unknown weight scheme %q", s)
}
