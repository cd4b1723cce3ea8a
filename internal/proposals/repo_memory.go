package proposals

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Proposal // userID -> proposals
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]Proposal),
	}
}

// Create appends a proposal for a user.
func (r *MemoryRepo) Create(ctx context.Context, proposal Proposal) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[proposal.UserID] = append(r.data[proposal.UserID], proposal)
	return nil
}

// GetByID returns a proposal by ID for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, proposalID string) (Proposal, error) {
	if err := ctx.Err(); err != nil {
		return Proposal{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.data[userID] {
		if p.ID == proposalID {
			return p, nil
		}
	}
	return Proposal{}, ErrNotFound
}

// ListByUser returns proposals for a user, newest first, honoring limit/offset.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Proposal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	userProposals := r.data[userID]
	r.mu.RUnlock()

	if len(userProposals) == 0 || offset >= len(userProposals) {
		return []Proposal{}, nil
	}

	proposals := make([]Proposal, len(userProposals))
	copy(proposals, userProposals)
	sort.Slice(proposals, func(i, j int) bool {
		return proposals[i].CreatedAt.After(proposals[j].CreatedAt)
	})

	end := len(proposals)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	return proposals[offset:end], nil
}
