package pipeline

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"rfp-backend/internal/catalog"
)

func TestRunSingleMatchScenario(t *testing.T) {
	cat := testCatalog(t, []catalog.Item{
		{SKU: "A", Name: "Cloud Storage", UnitPrice: 1000, Keywords: []string{"cloud", "storage"}},
	})
	raw := RawRFP{
		Title:    "Storage RFP",
		Customer: "Acme",
		Text:     "We require cloud storage compliance certification.",
	}

	result, err := Run(cat, raw, "RFP-20260115-ab12", time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(result.Requirements) != 1 {
		t.Fatalf("expected 1 requirement, got %d", len(result.Requirements))
	}
	if result.Requirements[0].Category != CategoryCompliance {
		t.Fatalf("expected compliance category, got %s", result.Requirements[0].Category)
	}

	if len(result.Matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(result.Matches))
	}
	match := result.Matches[0]
	if match.SKU != "A" || match.Confidence <= 0 {
		t.Fatalf("expected match to A with positive confidence, got %+v", match)
	}

	if len(result.Quote.Lines) != 1 {
		t.Fatalf("expected 1 price line, got %d", len(result.Quote.Lines))
	}
	if result.Quote.Lines[0].LineTotal != 1000 {
		t.Fatalf("expected line total 1000, got %f", result.Quote.Lines[0].LineTotal)
	}

	// coverage 1.0, avg match 0.5, compliance 1.0 -> 0.4 + 0.15 + 0.3 = 0.85
	if result.Report.Recommendation != RecommendationReady {
		t.Fatalf("expected ready, got %s (score %f)", result.Report.Recommendation, result.Report.OverallScore)
	}
	if !strings.Contains(result.ResponseText, "REF: RFP-20260115-ab12") {
		t.Fatalf("response must carry the reference:\n%s", result.ResponseText)
	}
}

func TestRunNoKeywordHitsEscalates(t *testing.T) {
	cat := testCatalog(t, []catalog.Item{
		{SKU: "A", Name: "Cloud Storage", UnitPrice: 1000, Keywords: []string{"cloud", "storage"}},
	})
	raw := RawRFP{Text: "Greetings from our friendly office"}

	result, err := Run(cat, raw, "RFP-20260115-cd34", time.Now().UTC())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(result.Requirements) != 0 || len(result.Matches) != 0 || len(result.Quote.Lines) != 0 {
		t.Fatalf("expected empty stages, got %+v", result)
	}
	if result.Report.OverallScore != 0 {
		t.Fatalf("expected overall 0, got %f", result.Report.OverallScore)
	}
	if result.Report.Recommendation != RecommendationEscalate {
		t.Fatalf("expected escalate, got %s", result.Report.Recommendation)
	}
}

func TestRunRequiresCatalog(t *testing.T) {
	_, err := Run(nil, RawRFP{Text: "cloud storage"}, "ref", time.Now().UTC())
	if !errors.Is(err, ErrNoCatalog) {
		t.Fatalf("expected ErrNoCatalog, got %v", err)
	}
}

func TestRunDeterministic(t *testing.T) {
	cat := testCatalog(t, []catalog.Item{
		{SKU: "A", Name: "Cloud Storage", UnitPrice: 1000, Keywords: []string{"cloud", "storage"}},
		{SKU: "B", Name: "Security Suite", UnitPrice: 2500, Keywords: []string{"security", "encryption", "iso"}},
	})
	raw := RawRFP{
		Title:    "Infra RFP",
		Customer: "Acme",
		Text: "1. Cloud storage with encryption at rest\n" +
			"2. ISO certification evidence required\n" +
			"3. Transparent pricing with volume discounts",
	}
	at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	first, err := Run(cat, raw, "RFP-20260301-ef56", at)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	second, err := Run(cat, raw, "RFP-20260301-ef56", at)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results for identical inputs")
	}
}
