// Package metrics implements the agreement-metric kernels (percent
// agreement, Cohen's and Fleiss' kappa, Krippendorff's alpha, ICC) and
// their confidence estimators. Every kernel is a pure function of its
// inputs and always returns a Result: degenerate inputs produce an
// undefined Result with a reason, never an error or a panic.
package metrics

import "fmt"

// Reason classifies why a metric came back undefined.
type Reason int

const (
	ReasonNone Reason = iota
	// ReasonInsufficientData: fewer valid pairs or units than the
	// metric's minimum.
	ReasonInsufficientData
	// ReasonDegenerateVariance: zero expected disagreement, e.g. every
	// rating identical, which zeroes the chance-correction denominator.
	ReasonDegenerateVariance
	// ReasonNumericInstability: ill-conditioned ANOVA, e.g. zero
	// residual variance making the F statistic unbounded.
	ReasonNumericInstability
	// ReasonInvalidArgument: a Level or WeightScheme outside the closed
	// enumeration was rejected at the boundary.
	ReasonInvalidArgument
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return ""
	case ReasonInsufficientData:
		return "insufficient_data"
	case ReasonDegenerateVariance:
		return "degenerate_variance"
	case ReasonNumericInstability:
		return "numeric_instability"
	case ReasonInvalidArgument:
		return "invalid_argument"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// MarshalText renders the reason name in JSON reports.
func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Result is the outcome of a single agreement metric. Undefined is a
// first-class outcome: Defined is false, Reason says why, and
// Interpretation carries a human-readable explanation. Callers decide
// how to surface undefined values (typically a dash); the engine never
// decides display behavior.
type Result struct {
	Value          float64 `json:"value"`
	Defined        bool    `json:"defined"`
	StandardError  float64 `json:"standard_error,omitempty"`
	CILower        float64 `json:"ci_lower,omitempty"`
	CIUpper        float64 `json:"ci_upper,omitempty"`
	HasCI          bool    `json:"has_ci,omitempty"`
	Interpretation string  `json:"interpretation,omitempty"`
	N              int     `json:"n"`
	Reason         Reason  `json:"reason,omitempty"`
}

// Undefined builds the undefined-outcome Result used when a kernel
// traps a degenerate condition.
func Undefined(reason Reason, why string, n int) Result {
	return Result{Interpretation: why, N: n, Reason: reason}
}
