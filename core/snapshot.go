package core

import (
	"context"
)

// SnapshotService snapshot hub interface
type SnapshotService interface {
	// ListProposals list proposals of space ordered by creation, newest first
	ListProposals(ctx context.Context, space string, skip, limit int) ([]*Proposal, error)
	// FindProposal returns the proposal, and true as the second value if it is not found
	FindProposal(ctx context.Context, id string) (*Proposal, bool, error)
}
