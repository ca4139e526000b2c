package snapshot

import (
	"context"
	"fmt"

	"beanstalk/core"
	"beanstalk/pkg/resthttp"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

const proposalFields = `
	id
	title
	body
	author
	type
	choices
	scores
	scores_total
	state
	snapshot
	start
	end
	space { id }
`

const listQuery = `query Proposals($space: String!, $skip: Int!, $first: Int!) {
	proposals(first: $first, skip: $skip, where: {space: $space}, orderBy: "created", orderDirection: desc) {` + proposalFields + `}
}`

const findQuery = `query Proposal($id: String!) {
	proposal(id: $id) {` + proposalFields + `}
}`

// New new snapshot hub client
func New(endpoint string) *Client {
	return &Client{endpoint: endpoint}
}

// Client snapshot hub graphql client
type Client struct {
	endpoint string
}

type proposal struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Body        *string       `json:"body"`
	Author      string        `json:"author"`
	Type        string        `json:"type"`
	Choices     []string      `json:"choices"`
	Scores      []interface{} `json:"scores"`
	ScoresTotal interface{}   `json:"scores_total"`
	State       string        `json:"state"`
	// snapshot block is a string on the hub
	Snapshot interface{} `json:"snapshot"`
	Start    int64       `json:"start"`
	End      int64       `json:"end"`
	Space    struct {
		ID string `json:"id"`
	} `json:"space"`
}

func (p *proposal) convert() *core.Proposal {
	out := &core.Proposal{
		ProposalID:  p.ID,
		Space:       p.Space.ID,
		Author:      p.Author,
		Title:       p.Title,
		Type:        p.Type,
		Choices:     p.Choices,
		ScoresTotal: toDecimal(p.ScoresTotal),
		State:       core.ProposalState(p.State),
		Snapshot:    cast.ToInt64(p.Snapshot),
		Start:       p.Start,
		End:         p.End,
	}

	if p.Body != nil {
		out.Body = *p.Body
	}

	if len(p.Scores) > 0 {
		out.Scores = make(core.Scores, len(p.Scores))
		for idx, s := range p.Scores {
			out.Scores[idx] = toDecimal(s)
		}
	}

	return out
}

func toDecimal(v interface{}) decimal.Decimal {
	return decimal.NewFromFloat(cast.ToFloat64(v))
}

func (c *Client) ListProposals(ctx context.Context, space string, skip, limit int) ([]*core.Proposal, error) {
	var resp struct {
		Proposals []*proposal `json:"proposals"`
	}

	vars := map[string]interface{}{
		"space": space,
		"skip":  skip,
		"first": limit,
	}
	if err := resthttp.Query(ctx, c.endpoint, listQuery, vars, &resp); err != nil {
		return nil, fmt.Errorf("%w: list proposals of %s: %v", core.ErrSnapshotHub, space, err)
	}

	proposals := make([]*core.Proposal, len(resp.Proposals))
	for idx, p := range resp.Proposals {
		proposals[idx] = p.convert()
	}

	return proposals, nil
}

func (c *Client) FindProposal(ctx context.Context, id string) (*core.Proposal, bool, error) {
	var resp struct {
		Proposal *proposal `json:"proposal"`
	}

	if err := resthttp.Query(ctx, c.endpoint, findQuery, map[string]interface{}{"id": id}, &resp); err != nil {
		return nil, false, fmt.Errorf("%w: find proposal %s: %v", core.ErrSnapshotHub, id, err)
	}

	if resp.Proposal == nil {
		return nil, true, core.ErrProposalNotFound
	}

	return resp.Proposal.convert(), false, nil
}
