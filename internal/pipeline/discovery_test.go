package pipeline

import "testing"

func TestDiscoverClassifiesFromText(t *testing.T) {
	raw := RawRFP{
		Text: "Urgent RFP from a global manufacturing corporation for plant automation",
	}
	got := Discover(raw)

	if got.Industry != "manufacturing" {
		t.Fatalf("expected manufacturing, got %s", got.Industry)
	}
	if got.Scale != ScaleEnterprise {
		t.Fatalf("expected enterprise, got %s", got.Scale)
	}
	if got.Urgency != UrgencyUrgent {
		t.Fatalf("expected urgent, got %s", got.Urgency)
	}
}

func TestDiscoverIndustryHintWins(t *testing.T) {
	raw := RawRFP{
		Industry: "Healthcare",
		Text:     "Plant automation for our factory",
	}
	got := Discover(raw)
	if got.Industry != "healthcare" {
		t.Fatalf("expected hint to win, got %s", got.Industry)
	}
}

func TestDiscoverDefaults(t *testing.T) {
	got := Discover(RawRFP{Text: "Short note with no markers"})
	if got.Industry != IndustryGeneral {
		t.Fatalf("expected general, got %s", got.Industry)
	}
	if got.Scale != ScaleSME {
		t.Fatalf("expected sme, got %s", got.Scale)
	}
	if got.Urgency != UrgencyStandard {
		t.Fatalf("expected standard, got %s", got.Urgency)
	}
}

func TestDiscoverMidmarketMarkers(t *testing.T) {
	got := Discover(RawRFP{Text: "Our business needs a point of sale for every retail store"})
	if got.Scale != ScaleMidmarket {
		t.Fatalf("expected midmarket, got %s", got.Scale)
	}
	if got.Industry != "retail" {
		t.Fatalf("expected retail, got %s", got.Industry)
	}
}
