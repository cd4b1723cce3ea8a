package proposals

import (
	"time"

	"rfp-backend/internal/pipeline"
)

// Proposal statuses. There is no queued/processing state: the pipeline runs
// synchronously inside the request that creates the proposal.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Proposal is one RFP submission and the pipeline output produced for it.
type Proposal struct {
	ID               string
	Reference        string
	UserID           string
	DocumentID       string
	Title            string
	Customer         string
	Status           string
	RequirementCount int
	MatchedCount     int
	OverallScore     float64
	Recommendation   string
	Result           *pipeline.Result
	ResponseText     string
	ErrorMessage     string
	CreatedAt        time.Time
}
