package proposal

import (
	"fmt"
	"time"

	"beanstalk/core"
	"beanstalk/pkg/number"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// BuildStats summarises votes, the voting window and quorum of the proposal
func BuildStats(p *core.Proposal, quorum *core.Quorum, now time.Time) Stats {
	stats := Stats{
		State:      string(proposalState(p, now)),
		Start:      p.StartAt(),
		End:        p.EndAt(),
		VotingOver: p.VotingOver(now),
		Remaining:  humanize.RelTime(p.EndAt(), now, "ago", "from now"),
		Votes:      formatStalk(p.ScoresTotal),
		ShowLink:   true,
	}

	leading := -1
	for idx := range p.Choices {
		if p.ScoreOf(idx).IsPositive() && (leading < 0 || p.ScoreOf(idx).GreaterThan(p.ScoreOf(leading))) {
			leading = idx
		}
	}

	for idx, label := range p.Choices {
		score := p.ScoreOf(idx)
		stats.Choices = append(stats.Choices, Choice{
			Label:   label,
			Score:   formatStalk(score),
			Percent: number.Percent(number.Ratio(score, p.ScoresTotal), 1),
			Leading: idx == leading,
		})
	}

	if quorum != nil && !quorum.Loading && quorum.Data.Quorum.IsPositive() {
		stats.Quorum = fmt.Sprintf("%s / %s", formatStalk(quorum.Data.Score), formatStalk(quorum.Data.Quorum))
	}

	return stats
}

func proposalState(p *core.Proposal, now time.Time) core.ProposalState {
	if p.State != "" {
		return p.State
	}

	switch {
	case now.Unix() < p.Start:
		return core.ProposalStatePending
	case p.VotingOver(now):
		return core.ProposalStateClosed
	default:
		return core.ProposalStateActive
	}
}

func formatStalk(d decimal.Decimal) string {
	f, _ := d.Float64()
	return humanize.CommafWithDigits(f, 0)
}
