package quorum

import (
	"context"
	"fmt"

	"beanstalk/core"
	"beanstalk/pkg/resthttp"

	"github.com/shopspring/decimal"
)

const siloQuery = `query Silo($id: ID!, $block: Int!) {
	silo(id: $id, block: {number: $block}) {
		stalk
	}
}`

// NewStalkService read total stalk from the beanstalk subgraph
func NewStalkService(cfg core.Subgraph) core.StalkService {
	return &stalkService{cfg: cfg}
}

type stalkService struct {
	cfg core.Subgraph
}

func (s *stalkService) TotalStalk(ctx context.Context, block int64) (decimal.Decimal, error) {
	var resp struct {
		Silo *struct {
			Stalk string `json:"stalk"`
		} `json:"silo"`
	}

	vars := map[string]interface{}{
		"id":    s.cfg.Beanstalk,
		"block": block,
	}
	if err := resthttp.Query(ctx, s.cfg.Endpoint, siloQuery, vars, &resp); err != nil {
		return decimal.Zero, fmt.Errorf("query silo at block %d: %w", block, err)
	}

	if resp.Silo == nil {
		return decimal.Zero, core.ErrQuorumUnavailable
	}

	stalk, err := decimal.NewFromString(resp.Silo.Stalk)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse stalk %q: %w", resp.Silo.Stalk, err)
	}

	return stalk.Shift(-s.cfg.Decimals), nil
}
