// Package pipeline implements the RFP response pipeline: discovery,
// requirement extraction, product matching, pricing, confidence scoring and
// response compilation. Every stage is a pure function over in-memory data;
// the only shared input is the read-only product catalog, passed in
// explicitly. Data flows strictly forward and identical inputs always produce
// identical outputs.
package pipeline

import "time"

// RawRFP is an ingested RFP submission. Immutable once created.
type RawRFP struct {
	Title       string
	Customer    string
	Industry    string
	SubmittedBy string
	Text        string
}

// Requirement categories, in documented tie-break priority order:
// compliance > technical > commercial.
const (
	CategoryCompliance = "compliance"
	CategoryTechnical  = "technical"
	CategoryCommercial = "commercial"
)

// Requirement is a single statement extracted from RFP text. Never mutated
// after extraction.
type Requirement struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Category string   `json:"category"`
	Keywords []string `json:"keywords"`
}

// Match links a requirement to its best catalog item. An empty SKU denotes a
// gap: no catalog item scored at or above MatchThreshold.
type Match struct {
	RequirementID string  `json:"requirementId"`
	SKU           string  `json:"sku,omitempty"`
	Confidence    float64 `json:"confidence"`
}

// IsGap reports whether the match is a gap.
func (m Match) IsGap() bool {
	return m.SKU == ""
}

// PriceLine is one quoted line item. LineTotal is always
// UnitPrice * Quantity * (1 - DiscountPct).
type PriceLine struct {
	SKU         string  `json:"sku"`
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	DiscountPct float64 `json:"discountPct"`
	LineTotal   float64 `json:"lineTotal"`
}

// Quote is the ordered set of price lines plus the grand total. All amounts
// are in a single fixed currency; formatting is a presentation concern.
type Quote struct {
	Lines      []PriceLine `json:"lines"`
	GrandTotal float64     `json:"grandTotal"`
}

// Recommendation values derived from the overall confidence score.
const (
	RecommendationReady       = "ready"
	RecommendationNeedsReview = "needs_review"
	RecommendationEscalate    = "escalate"
)

// ConfidenceReport aggregates coverage, match quality and compliance
// fulfillment into a single deterministic score.
type ConfidenceReport struct {
	CoveragePct        float64 `json:"coveragePct"`
	AvgMatchConfidence float64 `json:"avgMatchConfidence"`
	CompliancePct      float64 `json:"compliancePct"`
	OverallScore       float64 `json:"overallScore"`
	Recommendation     string  `json:"recommendation"`
}

// Discovery is coarse RFP metadata classified from the submission text.
type Discovery struct {
	Industry string `json:"industry"`
	Scale    string `json:"scale"`
	Urgency  string `json:"urgency"`
}

// Result aggregates every stage's output for one pipeline run.
type Result struct {
	Discovery    Discovery         `json:"discovery"`
	Requirements []Requirement     `json:"requirements"`
	Matches      []Match           `json:"matches"`
	Quote        Quote             `json:"quote"`
	Report       ConfidenceReport  `json:"report"`
	ResponseText string            `json:"responseText"`
	GeneratedAt  time.Time         `json:"generatedAt"`
}
