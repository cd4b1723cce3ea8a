package proposals

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"rfp-backend/internal/catalog"
	"rfp-backend/internal/pipeline"
	"rfp-backend/internal/rfpdocs"
	"rfp-backend/internal/shared/metrics"
	"rfp-backend/internal/shared/telemetry"
)

// Service runs the pipeline for RFP submissions and records the outcome.
// The catalog is loaded once at startup and shared read-only across
// invocations; every run gets its own requirement/match/quote instances.
type Service struct {
	Repo    Repo
	Docs    *rfpdocs.Service
	Catalog *catalog.Catalog
}

// CreateInput is one RFP submission. Exactly one of Text or DocumentID must
// be set; DocumentID wins when both are present.
type CreateInput struct {
	Title      string
	Customer   string
	Industry   string
	Text       string
	DocumentID string
}

// Create runs the full pipeline synchronously and persists the proposal.
// Empty extracted text is not an error: the proposal completes with zero
// requirements and an escalate recommendation. Configuration errors (unknown
// SKU from the matcher) store a failed proposal and are returned to the
// caller.
func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Proposal, error) {
	if userID == "" {
		return Proposal{}, errors.New("userID is required")
	}
	if strings.TrimSpace(in.Text) == "" && strings.TrimSpace(in.DocumentID) == "" {
		return Proposal{}, fmt.Errorf("%w: text or documentId is required", ErrInvalidInput)
	}

	text := in.Text
	documentID := strings.TrimSpace(in.DocumentID)
	if documentID != "" {
		extracted, err := s.Docs.ExtractText(ctx, userID, documentID)
		if err != nil {
			if errors.Is(err, rfpdocs.ErrNotFound) {
				return Proposal{}, fmt.Errorf("%w: document %s", ErrNotFound, documentID)
			}
			return Proposal{}, fmt.Errorf("extract document %s: %w", documentID, err)
		}
		text = extracted
	}

	now := time.Now().UTC()
	proposal := Proposal{
		ID:         uuid.NewString(),
		UserID:     userID,
		DocumentID: documentID,
		Title:      strings.TrimSpace(in.Title),
		Customer:   strings.TrimSpace(in.Customer),
		CreatedAt:  now,
	}
	proposal.Reference = referenceFor(proposal.ID, now)

	raw := pipeline.RawRFP{
		Title:       proposal.Title,
		Customer:    proposal.Customer,
		Industry:    in.Industry,
		SubmittedBy: userID,
		Text:        text,
	}

	metrics.IncProposalStarted()
	started := time.Now()
	result, err := pipeline.Run(s.Catalog, raw, proposal.Reference, now)
	metrics.ObservePipelineDurationMs(float64(time.Since(started).Microseconds()) / 1000.0)

	if err != nil {
		metrics.IncProposalFailed()
		proposal.Status = StatusFailed
		proposal.ErrorMessage = err.Error()
		if repoErr := s.Repo.Create(ctx, proposal); repoErr != nil {
			return Proposal{}, repoErr
		}
		telemetry.Error("proposal.failed", map[string]any{
			"proposal_id": proposal.ID,
			"user_id":     userID,
			"error":       err.Error(),
		})
		return proposal, err
	}

	metrics.IncProposalCompleted()
	proposal.Status = StatusCompleted
	proposal.Result = &result
	proposal.ResponseText = result.ResponseText
	proposal.RequirementCount = len(result.Requirements)
	proposal.MatchedCount = countMatched(result.Matches)
	proposal.OverallScore = result.Report.OverallScore
	proposal.Recommendation = result.Report.Recommendation

	if err := s.Repo.Create(ctx, proposal); err != nil {
		return Proposal{}, err
	}

	telemetry.Info("proposal.completed", map[string]any{
		"proposal_id":    proposal.ID,
		"user_id":        userID,
		"requirements":   proposal.RequirementCount,
		"matched":        proposal.MatchedCount,
		"overall_score":  proposal.OverallScore,
		"recommendation": proposal.Recommendation,
	})
	return proposal, nil
}

// Get returns a proposal by ID.
func (s *Service) Get(ctx context.Context, userID, proposalID string) (Proposal, error) {
	if proposalID == "" {
		return Proposal{}, errors.New("proposalID is required")
	}
	return s.Repo.GetByID(ctx, userID, proposalID)
}

// List returns proposals for a user ordered newest-first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Proposal, error) {
	if userID == "" {
		return nil, errors.New("userID is required")
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

func countMatched(matches []pipeline.Match) int {
	n := 0
	for _, m := range matches {
		if !m.IsGap() {
			n++
		}
	}
	return n
}

// referenceFor derives the human-facing proposal reference from the ID and
// creation date, e.g. RFP-20260115-1a2b.
func referenceFor(id string, createdAt time.Time) string {
	short := strings.ReplaceAll(id, "-", "")
	if len(short) > 4 {
		short = short[:4]
	}
	return fmt.Sprintf("RFP-%s-%s", createdAt.UTC().Format("20060102"), short)
}
