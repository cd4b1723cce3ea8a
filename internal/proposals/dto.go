package proposals

import (
	"time"

	"rfp-backend/internal/pipeline"
)

// CreateRequest is the payload for submitting an RFP.
type CreateRequest struct {
	Title      string `json:"title"`
	Customer   string `json:"customer"`
	Industry   string `json:"industry"`
	Text       string `json:"text"`
	DocumentID string `json:"documentId"`
}

// ProposalSummary is the listing view of a proposal, without the full
// pipeline result.
type ProposalSummary struct {
	ProposalID       string    `json:"proposalId"`
	Reference        string    `json:"reference"`
	Title            string    `json:"title"`
	Customer         string    `json:"customer"`
	Status           string    `json:"status"`
	RequirementCount int       `json:"requirementCount"`
	MatchedCount     int       `json:"matchedCount"`
	OverallScore     float64   `json:"overallScore"`
	Recommendation   string    `json:"recommendation,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ProposalResponse is the detail view, including every stage's output.
type ProposalResponse struct {
	ProposalSummary
	DocumentID   string           `json:"documentId,omitempty"`
	Result       *pipeline.Result `json:"result,omitempty"`
	ErrorMessage string           `json:"errorMessage,omitempty"`
}

func toSummary(p Proposal) ProposalSummary {
	return ProposalSummary{
		ProposalID:       p.ID,
		Reference:        p.Reference,
		Title:            p.Title,
		Customer:         p.Customer,
		Status:           p.Status,
		RequirementCount: p.RequirementCount,
		MatchedCount:     p.MatchedCount,
		OverallScore:     p.OverallScore,
		Recommendation:   p.Recommendation,
		CreatedAt:        p.CreatedAt,
	}
}

func toResponse(p Proposal) ProposalResponse {
	return ProposalResponse{
		ProposalSummary: toSummary(p),
		DocumentID:      p.DocumentID,
		Result:          p.Result,
		ErrorMessage:    p.ErrorMessage,
	}
}
