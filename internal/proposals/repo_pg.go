package proposals

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"rfp-backend/internal/pipeline"
)

// PGRepo implements Repo using Postgres. The full pipeline result is stored
// as JSONB alongside the summary columns used for listing.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new proposal.
func (r *PGRepo) Create(ctx context.Context, proposal Proposal) error {
	const query = `
INSERT INTO proposals (
    id,
    user_id,
    document_id,
    title,
    customer,
    status,
    requirement_count,
    matched_count,
    overall_score,
    recommendation,
    result,
    response_text,
    error_message,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	var resultJSON []byte
	if proposal.Result != nil {
		var err error
		resultJSON, err = json.Marshal(proposal.Result)
		if err != nil {
			return fmt.Errorf("marshal proposal result: %w", err)
		}
	}

	var documentID sql.NullString
	if proposal.DocumentID != "" {
		documentID = sql.NullString{String: proposal.DocumentID, Valid: true}
	}
	var errorMessage sql.NullString
	if proposal.ErrorMessage != "" {
		errorMessage = sql.NullString{String: proposal.ErrorMessage, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		proposal.ID,
		proposal.UserID,
		documentID,
		proposal.Title,
		proposal.Customer,
		proposal.Status,
		proposal.RequirementCount,
		proposal.MatchedCount,
		proposal.OverallScore,
		proposal.Recommendation,
		resultJSON,
		proposal.ResponseText,
		errorMessage,
		proposal.CreatedAt,
	)
	return err
}

const proposalColumns = `id, user_id, document_id, title, customer, status,
requirement_count, matched_count, overall_score, recommendation, result,
response_text, error_message, created_at`

// GetByID returns a proposal by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userID, proposalID string) (Proposal, error) {
	query := `
SELECT ` + proposalColumns + `
FROM proposals
WHERE user_id = $1 AND id = $2`
	row := r.DB.QueryRowContext(ctx, query, userID, proposalID)

	proposal, err := scanProposal(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Proposal{}, ErrNotFound
		}
		return Proposal{}, err
	}
	return proposal, nil
}

// ListByUser returns proposals for a user, newest first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Proposal, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
SELECT ` + proposalColumns + `
FROM proposals
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	proposals := []Proposal{}
	for rows.Next() {
		proposal, err := scanProposal(rows.Scan)
		if err != nil {
			return nil, err
		}
		proposals = append(proposals, proposal)
	}
	return proposals, rows.Err()
}

func scanProposal(scan func(dest ...any) error) (Proposal, error) {
	var (
		proposal     Proposal
		documentID   sql.NullString
		resultJSON   []byte
		errorMessage sql.NullString
	)
	err := scan(
		&proposal.ID,
		&proposal.UserID,
		&documentID,
		&proposal.Title,
		&proposal.Customer,
		&proposal.Status,
		&proposal.RequirementCount,
		&proposal.MatchedCount,
		&proposal.OverallScore,
		&proposal.Recommendation,
		&resultJSON,
		&proposal.ResponseText,
		&errorMessage,
		&proposal.CreatedAt,
	)
	if err != nil {
		return Proposal{}, err
	}
	proposal.DocumentID = documentID.String
	proposal.ErrorMessage = errorMessage.String
	if len(resultJSON) > 0 {
		var result pipeline.Result
		if err := json.Unmarshal(resultJSON, &result); err != nil {
			return Proposal{}, fmt.Errorf("unmarshal proposal result: %w", err)
		}
		proposal.Result = &result
	}
	proposal.Reference = referenceFor(proposal.ID, proposal.CreatedAt)
	return proposal, nil
}
