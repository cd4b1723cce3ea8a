package pipeline

import (
	"strings"
	"testing"
	"time"
)

func compileFixture() CompileInput {
	return CompileInput{
		Title:       "Cloud Infrastructure RFP",
		Customer:    "Meridian Industries",
		Reference:   "RFP-20260115-ab12",
		GeneratedAt: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
		Discovery:   Discovery{Industry: "manufacturing", Scale: ScaleEnterprise, Urgency: UrgencyStandard},
		Requirements: []Requirement{
			{ID: "REQ-001", Text: "Cloud storage required", Category: CategoryTechnical},
			{ID: "REQ-002", Text: "GDPR compliance needed", Category: CategoryCompliance},
		},
		Matches: []Match{
			{RequirementID: "REQ-001", SKU: "A", Confidence: 0.5},
			{RequirementID: "REQ-002"},
		},
		Quote: Quote{
			Lines:      []PriceLine{{SKU: "A", Name: "Cloud Storage", Quantity: 1, UnitPrice: 1000, LineTotal: 1000}},
			GrandTotal: 1000,
		},
		Report: ConfidenceReport{
			CoveragePct:        0.5,
			AvgMatchConfidence: 0.5,
			CompliancePct:      0,
			OverallScore:       0.35,
			Recommendation:     RecommendationEscalate,
		},
	}
}

func TestCompileSectionOrdering(t *testing.T) {
	doc := Compile(compileFixture())

	sections := []string{
		"PROPOSAL FOR: Cloud Infrastructure RFP",
		"PREPARED FOR: Meridian Industries",
		"REF: RFP-20260115-ab12",
		"EXECUTIVE SUMMARY",
		"REQUIREMENTS COVERAGE",
		"PRICING PROPOSAL",
		"RECOMMENDATION",
	}
	last := -1
	for _, section := range sections {
		idx := strings.Index(doc, section)
		if idx < 0 {
			t.Fatalf("missing section %q in:\n%s", section, doc)
		}
		if idx <= last {
			t.Fatalf("section %q out of order in:\n%s", section, doc)
		}
		last = idx
	}
}

func TestCompileMarksGapsAndMatches(t *testing.T) {
	doc := Compile(compileFixture())

	if !strings.Contains(doc, "REQ-001 [technical] Cloud storage required -> A") {
		t.Fatalf("expected matched requirement line, got:\n%s", doc)
	}
	if !strings.Contains(doc, "REQ-002 [compliance] GDPR compliance needed -> GAP") {
		t.Fatalf("expected gap line, got:\n%s", doc)
	}
	if !strings.Contains(doc, "TOTAL PROPOSED: ₹1000.00") {
		t.Fatalf("expected grand total, got:\n%s", doc)
	}
}

func TestCompileOmitsPricingWithoutLines(t *testing.T) {
	in := compileFixture()
	in.Quote = Quote{}
	doc := Compile(in)

	if strings.Contains(doc, "PRICING PROPOSAL") {
		t.Fatalf("pricing section must be omitted when the quote is empty:\n%s", doc)
	}
}

func TestCompileEmptyRequirements(t *testing.T) {
	in := compileFixture()
	in.Requirements = nil
	in.Matches = nil
	in.Quote = Quote{}
	in.Report = ConfidenceReport{Recommendation: RecommendationEscalate}
	doc := Compile(in)

	if !strings.Contains(doc, "No requirements could be identified") {
		t.Fatalf("expected empty-RFP summary, got:\n%s", doc)
	}
	if !strings.Contains(doc, "(none extracted)") {
		t.Fatalf("expected empty coverage marker, got:\n%s", doc)
	}
	if !strings.Contains(doc, "escalate") {
		t.Fatalf("expected escalate recommendation, got:\n%s", doc)
	}
}

func TestCompileDefaultsBlankHeaderFields(t *testing.T) {
	in := compileFixture()
	in.Title = ""
	in.Customer = "  "
	doc := Compile(in)

	if !strings.Contains(doc, "PROPOSAL FOR: RFP Response") {
		t.Fatalf("expected default title, got:\n%s", doc)
	}
	if !strings.Contains(doc, "PREPARED FOR: Customer") {
		t.Fatalf("expected default customer, got:\n%s", doc)
	}
}

func TestCompileDeterministic(t *testing.T) {
	in := compileFixture()
	if Compile(in) != Compile(in) {
		t.Fatalf("expected identical documents for identical inputs")
	}
}
