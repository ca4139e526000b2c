package views

import (
	"time"

	"beanstalk/core"
	"beanstalk/service/proposal"

	"github.com/shopspring/decimal"
)

type (
	Proposal struct {
		ID          string            `json:"id,omitempty"`
		Space       string            `json:"space,omitempty"`
		Author      string            `json:"author,omitempty"`
		Title       string            `json:"title,omitempty"`
		Body        string            `json:"body"`
		Choices     []string          `json:"choices,omitempty"`
		Scores      []decimal.Decimal `json:"scores,omitempty"`
		ScoresTotal decimal.Decimal   `json:"scores_total"`
		State       string            `json:"state,omitempty"`
		Snapshot    int64             `json:"snapshot,omitempty"`
		Start       time.Time         `json:"start"`
		End         time.Time         `json:"end"`
	}

	Indicator struct {
		Value float64 `json:"value"`
		Badge string  `json:"badge"`
		Label string  `json:"label"`
	}

	Content struct {
		Title     string     `json:"title"`
		Indicator *Indicator `json:"quorum_indicator,omitempty"`
		Markdown  string     `json:"markdown"`
		Body      string     `json:"body"`
		Link      string     `json:"link,omitempty"`
	}
)

func ProposalView(p core.Proposal) Proposal {
	return Proposal{
		ID:          p.ProposalID,
		Space:       p.Space,
		Author:      p.Author,
		Title:       p.Title,
		Body:        p.Body,
		Choices:     p.Choices,
		Scores:      p.Scores,
		ScoresTotal: p.ScoresTotal,
		State:       string(p.State),
		Snapshot:    p.Snapshot,
		Start:       p.StartAt().UTC(),
		End:         p.EndAt().UTC(),
	}
}

func ProposalViews(ps []*core.Proposal) []Proposal {
	var items = make([]Proposal, len(ps))
	for i, item := range ps {
		items[i] = ProposalView(*item)
	}
	return items
}

func ContentView(c proposal.Content) Content {
	view := Content{
		Title:    c.Title,
		Markdown: c.Markdown,
		Body:     string(c.Body),
		Link:     c.Stats.Link,
	}

	if c.Indicator != nil {
		view.Indicator = &Indicator{
			Value: c.Indicator.Value,
			Badge: c.Indicator.Badge,
			Label: c.Indicator.Label,
		}
	}

	return view
}
