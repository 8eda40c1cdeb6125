package metrics

// Qualitative bands for the agreement coefficients, per the published
// guidelines each metric is conventionally read against. Pure lookups.

// InterpretKappa buckets a kappa value per Landis & Koch (1977).
func InterpretKappa(k float64) string {
	switch {
	case k < 0:
		return "poor (worse than chance)"
	case k < 0.20:
		return "slight"
	case k < 0.40:
		return "fair"
	case k < 0.60:
		return "moderate"
	case k < 0.80:
		return "substantial"
	default:
		return "almost perfect"
	}
}

// InterpretAlpha buckets Krippendorff's alpha per Krippendorff (2004):
// below 0.667 conclusions should be rejected, 0.800 and above supports
// definite conclusions.
func InterpretAlpha(a float64) string {
	switch {
	case a < 0.667:
		return "insufficient (reject conclusions)"
	case a < 0.800:
		return "tentative conclusions"
	default:
		return "definite conclusions"
	}
}

// InterpretICC buckets an intraclass correlation per Koo & Li (2016).
func InterpretICC(v float64) string {
	switch {
	case v < 0.50:
		return "poor"
	case v < 0.75:
		return "moderate"
	case v < 0.90:
		return "good"
	default:
		return "excellent"
	}
}

// InterpretPercentAgreement buckets raw percent agreement. Percent
// agreement has no chance correction, so these bands are looser than
// the coefficient bands and supplementary only.
func InterpretPercentAgreement(p float64) string {
	switch {
	case p < 50:
		return "very low"
	case p < 70:
		return "low"
	case p < 85:
		return "moderate"
	default:
		return "high"
	}
}
