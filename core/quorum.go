package core

import (
	"context"

	"github.com/shopspring/decimal"
)

type (
	// QuorumData quorum progress of a proposal at its snapshot block
	QuorumData struct {
		// PctOfQuorum score / quorum, nil when the quorum is unknown
		PctOfQuorum *float64 `json:"pct_of_quorum,omitempty"`
		// Tag label of the counted score, "For" or "Total Votes"
		Tag        string          `json:"tag,omitempty"`
		Score      decimal.Decimal `json:"score"`
		Quorum     decimal.Decimal `json:"quorum"`
		QuorumPct  decimal.Decimal `json:"quorum_pct"`
		TotalStalk decimal.Decimal `json:"total_stalk"`
	}

	// Quorum block data of a proposal, absent until loaded
	Quorum struct {
		Loading bool       `json:"loading,omitempty"`
		Data    QuorumData `json:"data"`
	}

	// QuorumService resolves the quorum progress of proposals
	QuorumService interface {
		Find(ctx context.Context, proposal *Proposal) (*Quorum, error)
	}

	// StalkService reads total voting power at a block
	StalkService interface {
		TotalStalk(ctx context.Context, block int64) (decimal.Decimal, error)
	}
)

// PctOfQuorum returns the loaded quorum ratio, nil if absent or still loading
func (q *Quorum) PctOfQuorum() *float64 {
	if q == nil || q.Loading {
		return nil
	}

	return q.Data.PctOfQuorum
}
