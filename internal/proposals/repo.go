package proposals

import "context"

// Repo defines persistence operations for proposals.
type Repo interface {
	Create(ctx context.Context, proposal Proposal) error
	GetByID(ctx context.Context, userID, proposalID string) (Proposal, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Proposal, error)
}
