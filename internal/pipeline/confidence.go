package pipeline

// Confidence score weights. They sum to 1 so OverallScore stays in [0,1].
const (
	WeightCoverage        = 0.4
	WeightMatchConfidence = 0.3
	WeightCompliance      = 0.3
)

// Recommendation thresholds over OverallScore.
const (
	ReadyThreshold       = 0.8
	NeedsReviewThreshold = 0.5
)

// ScoreConfidence aggregates requirement coverage, average match confidence
// and compliance fulfillment into a ConfidenceReport. The result is a
// deterministic function of its inputs: no randomness, no clock.
//
// An empty requirement set yields the zero report with an escalate
// recommendation. When requirements exist but none are compliance-category,
// compliance is vacuously satisfied (1.0).
func ScoreConfidence(requirements []Requirement, matches []Match) ConfidenceReport {
	if len(requirements) == 0 {
		return ConfidenceReport{Recommendation: RecommendationEscalate}
	}

	matchedBy := make(map[string]Match, len(matches))
	for _, m := range matches {
		matchedBy[m.RequirementID] = m
	}

	nonGap := 0
	confidenceSum := 0.0
	complianceTotal := 0
	complianceMet := 0
	for _, req := range requirements {
		m, ok := matchedBy[req.ID]
		covered := ok && !m.IsGap()
		if covered {
			nonGap++
			confidenceSum += m.Confidence
		}
		if req.Category == CategoryCompliance {
			complianceTotal++
			if covered {
				complianceMet++
			}
		}
	}

	report := ConfidenceReport{
		CoveragePct:   float64(nonGap) / float64(len(requirements)),
		CompliancePct: 1.0,
	}
	if nonGap > 0 {
		report.AvgMatchConfidence = confidenceSum / float64(nonGap)
	}
	if complianceTotal > 0 {
		report.CompliancePct = float64(complianceMet) / float64(complianceTotal)
	}

	report.OverallScore = WeightCoverage*report.CoveragePct +
		WeightMatchConfidence*report.AvgMatchConfidence +
		WeightCompliance*report.CompliancePct
	report.Recommendation = recommend(report.OverallScore)
	return report
}

func recommend(score float64) string {
	switch {
	case score >= ReadyThreshold:
		return RecommendationReady
	case score >= NeedsReviewThreshold:
		return RecommendationNeedsReview
	default:
		return RecommendationEscalate
	}
}
