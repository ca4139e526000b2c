package core

import (
	"context"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// ProposalState snapshot proposal state
type ProposalState string

const (
	// ProposalStatePending voting not started yet
	ProposalStatePending ProposalState = "pending"
	// ProposalStateActive voting in progress
	ProposalStateActive ProposalState = "active"
	// ProposalStateClosed voting concluded
	ProposalStateClosed ProposalState = "closed"
)

type (
	// Proposal governance proposal synced from the snapshot hub
	Proposal struct {
		ID          int64           `sql:"PRIMARY_KEY" json:"-"`
		CreatedAt   time.Time       `json:"created_at,omitempty"`
		UpdatedAt   time.Time       `json:"updated_at,omitempty"`
		Version     int64           `json:"version,omitempty"`
		ProposalID  string          `sql:"size:128" json:"id,omitempty"`
		Space       string          `sql:"size:64" json:"space,omitempty"`
		Author      string          `sql:"size:64" json:"author,omitempty"`
		Title       string          `sql:"size:512" json:"title,omitempty"`
		Body        string          `sql:"type:text" json:"body,omitempty"`
		Type        string          `sql:"size:36" json:"type,omitempty"`
		Choices     pq.StringArray  `sql:"type:varchar(1024)" json:"choices,omitempty"`
		Scores      Scores          `sql:"type:varchar(1024)" json:"scores,omitempty"`
		ScoresTotal decimal.Decimal `sql:"type:decimal(64,8)" json:"scores_total,omitempty"`
		State       ProposalState   `sql:"size:16" json:"state,omitempty"`
		Snapshot    int64           `json:"snapshot,omitempty"`
		Start       int64           `gorm:"column:start_at" json:"start,omitempty"`
		End         int64           `gorm:"column:end_at" json:"end,omitempty"`
	}

	// ProposalStore proposal store interface
	ProposalStore interface {
		Save(ctx context.Context, proposal *Proposal) error
		// Find returns the proposal, and true as the second value if it is not found
		Find(ctx context.Context, id string) (*Proposal, bool, error)
		List(ctx context.Context, space string, offset, limit int) ([]*Proposal, error)
	}
)

// VotingOver reports whether the voting period ended at or before now
func (p *Proposal) VotingOver(now time.Time) bool {
	return p.End <= now.Unix()
}

// StartAt voting start time
func (p *Proposal) StartAt() time.Time {
	return time.Unix(p.Start, 0)
}

// EndAt voting end time
func (p *Proposal) EndAt() time.Time {
	return time.Unix(p.End, 0)
}

// ScoreOf returns the score of the choice at idx, zero when out of range
func (p *Proposal) ScoreOf(idx int) decimal.Decimal {
	if idx < 0 || idx >= len(p.Scores) {
		return decimal.Zero
	}

	return p.Scores[idx]
}
