package pipeline

import (
	"fmt"
	"strings"
	"time"
)

const sectionRule = "─────────────────────────────────────────────────────"

// CompileInput carries everything the response compiler needs. Reference and
// GeneratedAt come from the caller so the compilation itself stays a pure
// string transformation.
type CompileInput struct {
	Title        string
	Customer     string
	Reference    string
	GeneratedAt  time.Time
	Discovery    Discovery
	Requirements []Requirement
	Matches      []Match
	Quote        Quote
	Report       ConfidenceReport
}

// Compile renders the proposal response document with fixed section ordering:
// header, executive summary, requirements coverage, pricing table,
// recommendation. The pricing table is omitted when the quote has no lines.
func Compile(in CompileInput) string {
	var b strings.Builder

	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = "RFP Response"
	}
	customer := strings.TrimSpace(in.Customer)
	if customer == "" {
		customer = "Customer"
	}

	fmt.Fprintf(&b, "PROPOSAL FOR: %s\n", title)
	fmt.Fprintf(&b, "PREPARED FOR: %s\n", customer)
	fmt.Fprintf(&b, "DATE: %s\n", in.GeneratedAt.UTC().Format("January 2, 2006"))
	fmt.Fprintf(&b, "REF: %s\n", in.Reference)

	matched := 0
	for _, m := range in.Matches {
		if !m.IsGap() {
			matched++
		}
	}

	b.WriteString("\nEXECUTIVE SUMMARY\n")
	b.WriteString(sectionRule + "\n")
	if len(in.Requirements) == 0 {
		b.WriteString("No requirements could be identified in the submitted RFP text.\n")
		b.WriteString("Please review the source document before responding.\n")
	} else {
		fmt.Fprintf(&b,
			"Thank you for the opportunity to respond to your RFP. Our solution addresses\n%d of the %d requirements identified (%.1f%% coverage) for a %s-scale %s engagement.\n",
			matched, len(in.Requirements), in.Report.CoveragePct*100,
			in.Discovery.Scale, in.Discovery.Industry)
	}

	b.WriteString("\nREQUIREMENTS COVERAGE\n")
	b.WriteString(sectionRule + "\n")
	if len(in.Requirements) == 0 {
		b.WriteString("(none extracted)\n")
	} else {
		skuByReq := make(map[string]string, len(in.Matches))
		for _, m := range in.Matches {
			skuByReq[m.RequirementID] = m.SKU
		}
		for _, req := range in.Requirements {
			status := "GAP"
			if sku := skuByReq[req.ID]; sku != "" {
				status = sku
			}
			fmt.Fprintf(&b, "%s [%s] %s -> %s\n", req.ID, req.Category, req.Text, status)
		}
	}

	if len(in.Quote.Lines) > 0 {
		b.WriteString("\nPRICING PROPOSAL\n")
		b.WriteString(sectionRule + "\n")
		for _, line := range in.Quote.Lines {
			fmt.Fprintf(&b, "%s  %s  qty %d  @ ₹%.2f  (discount %.0f%%)  = ₹%.2f\n",
				line.SKU, line.Name, line.Quantity, line.UnitPrice,
				line.DiscountPct*100, line.LineTotal)
		}
		fmt.Fprintf(&b, "TOTAL PROPOSED: ₹%.2f\n", in.Quote.GrandTotal)
	}

	b.WriteString("\nRECOMMENDATION\n")
	b.WriteString(sectionRule + "\n")
	fmt.Fprintf(&b, "Overall confidence: %.2f (coverage %.1f%%, avg match %.2f, compliance %.1f%%)\n",
		in.Report.OverallScore, in.Report.CoveragePct*100,
		in.Report.AvgMatchConfidence, in.Report.CompliancePct*100)
	fmt.Fprintf(&b, "Next action: %s\n", recommendationText(in.Report.Recommendation))

	return b.String()
}

func recommendationText(rec string) string {
	switch rec {
	case RecommendationReady:
		return "ready: submit the proposal as compiled"
	case RecommendationNeedsReview:
		return "needs review: have the bid desk verify gaps before submission"
	default:
		return "escalate: route to a solution architect for manual drafting"
	}
}
