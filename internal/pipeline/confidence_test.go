package pipeline

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScoreConfidenceEmptyRequirementsEscalates(t *testing.T) {
	report := ScoreConfidence(nil, nil)
	if report.OverallScore != 0 {
		t.Fatalf("expected overall 0, got %f", report.OverallScore)
	}
	if report.Recommendation != RecommendationEscalate {
		t.Fatalf("expected escalate, got %s", report.Recommendation)
	}
	if report.CoveragePct != 0 || report.AvgMatchConfidence != 0 || report.CompliancePct != 0 {
		t.Fatalf("expected zero report, got %+v", report)
	}
}

func TestScoreConfidenceFullCoverageIsReady(t *testing.T) {
	requirements := []Requirement{
		{ID: "REQ-001", Category: CategoryCompliance},
		{ID: "REQ-002", Category: CategoryTechnical},
	}
	matches := []Match{
		{RequirementID: "REQ-001", SKU: "A", Confidence: 1.0},
		{RequirementID: "REQ-002", SKU: "B", Confidence: 1.0},
	}

	report := ScoreConfidence(requirements, matches)
	if !almostEqual(report.OverallScore, 1.0) {
		t.Fatalf("expected overall 1.0, got %f", report.OverallScore)
	}
	if report.Recommendation != RecommendationReady {
		t.Fatalf("expected ready, got %s", report.Recommendation)
	}
}

func TestScoreConfidenceWeightsComponents(t *testing.T) {
	requirements := []Requirement{
		{ID: "REQ-001", Category: CategoryCompliance},
		{ID: "REQ-002", Category: CategoryTechnical},
	}
	matches := []Match{
		{RequirementID: "REQ-001", SKU: "A", Confidence: 0.5},
		{RequirementID: "REQ-002"},
	}

	report := ScoreConfidence(requirements, matches)
	if !almostEqual(report.CoveragePct, 0.5) {
		t.Fatalf("expected coverage 0.5, got %f", report.CoveragePct)
	}
	if !almostEqual(report.AvgMatchConfidence, 0.5) {
		t.Fatalf("expected avg confidence 0.5, got %f", report.AvgMatchConfidence)
	}
	if !almostEqual(report.CompliancePct, 1.0) {
		t.Fatalf("expected compliance 1.0, got %f", report.CompliancePct)
	}
	// 0.4*0.5 + 0.3*0.5 + 0.3*1.0 = 0.65
	if !almostEqual(report.OverallScore, 0.65) {
		t.Fatalf("expected overall 0.65, got %f", report.OverallScore)
	}
	if report.Recommendation != RecommendationNeedsReview {
		t.Fatalf("expected needs_review, got %s", report.Recommendation)
	}
}

func TestScoreConfidenceComplianceVacuousWithoutComplianceRequirements(t *testing.T) {
	requirements := []Requirement{
		{ID: "REQ-001", Category: CategoryTechnical},
	}
	matches := []Match{{RequirementID: "REQ-001"}}

	report := ScoreConfidence(requirements, matches)
	if !almostEqual(report.CompliancePct, 1.0) {
		t.Fatalf("expected vacuous compliance 1.0, got %f", report.CompliancePct)
	}
	// 0.4*0 + 0.3*0 + 0.3*1.0 = 0.3
	if !almostEqual(report.OverallScore, 0.3) {
		t.Fatalf("expected overall 0.3, got %f", report.OverallScore)
	}
	if report.Recommendation != RecommendationEscalate {
		t.Fatalf("expected escalate, got %s", report.Recommendation)
	}
}

func TestScoreConfidenceUnmetComplianceDragsScore(t *testing.T) {
	requirements := []Requirement{
		{ID: "REQ-001", Category: CategoryCompliance},
		{ID: "REQ-002", Category: CategoryCompliance},
	}
	matches := []Match{
		{RequirementID: "REQ-001", SKU: "A", Confidence: 1.0},
		{RequirementID: "REQ-002"},
	}

	report := ScoreConfidence(requirements, matches)
	if !almostEqual(report.CompliancePct, 0.5) {
		t.Fatalf("expected compliance 0.5, got %f", report.CompliancePct)
	}
}

func TestCoverageMonotonicity(t *testing.T) {
	requirements := []Requirement{
		{ID: "REQ-001", Category: CategoryTechnical},
		{ID: "REQ-002", Category: CategoryTechnical},
		{ID: "REQ-003", Category: CategoryTechnical},
	}

	// Turn gaps into matches one at a time; coverage must never decrease.
	prev := -1.0
	for matched := 0; matched <= len(requirements); matched++ {
		matches := make([]Match, len(requirements))
		for i := range requirements {
			matches[i] = Match{RequirementID: requirements[i].ID}
			if i < matched {
				matches[i].SKU = "A"
				matches[i].Confidence = 0.5
			}
		}
		report := ScoreConfidence(requirements, matches)
		if report.CoveragePct < prev {
			t.Fatalf("coverage decreased from %f to %f at %d matches", prev, report.CoveragePct, matched)
		}
		prev = report.CoveragePct
	}
}

func TestRecommendThresholds(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{1.0, RecommendationReady},
		{0.8, RecommendationReady},
		{0.79, RecommendationNeedsReview},
		{0.5, RecommendationNeedsReview},
		{0.49, RecommendationEscalate},
		{0, RecommendationEscalate},
	}
	for _, tc := range cases {
		if got := recommend(tc.score); got != tc.want {
			t.Fatalf("score %f: expected %s, got %s", tc.score, tc.want, got)
		}
	}
}
