package proposal

import (
	"testing"

	"beanstalk/core"
	"beanstalk/pkg/number"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStats(t *testing.T) {
	p := &core.Proposal{
		Choices:     []string{"For", "Against", "Abstain"},
		Scores:      core.Scores{number.Decimal("250"), number.Decimal("700")},
		ScoresTotal: number.Decimal("950"),
		Start:       now.Unix() - 7200,
		End:         now.Unix() - 3600,
	}

	q := quorumOf(0.5, "For")
	q.Data.Score = decimal.NewFromInt(250)
	q.Data.Quorum = decimal.NewFromInt(500)

	stats := BuildStats(p, q, now)
	assert.True(t, stats.VotingOver)
	assert.Equal(t, "closed", stats.State)
	assert.Equal(t, "1 hour ago", stats.Remaining)
	assert.Equal(t, "950", stats.Votes)
	assert.Equal(t, "250 / 500", stats.Quorum)

	require.Len(t, stats.Choices, 3)
	assert.Equal(t, "26.3%", stats.Choices[0].Percent)
	assert.False(t, stats.Choices[0].Leading)
	assert.True(t, stats.Choices[1].Leading)
	assert.Equal(t, "0", stats.Choices[2].Score)
	assert.Equal(t, "0.0%", stats.Choices[2].Percent)
}

func TestProposalState(t *testing.T) {
	assert.Equal(t, core.ProposalStatePending, proposalState(&core.Proposal{Start: now.Unix() + 1, End: now.Unix() + 2}, now))
	assert.Equal(t, core.ProposalStateActive, proposalState(&core.Proposal{Start: now.Unix() - 1, End: now.Unix() + 2}, now))
	assert.Equal(t, core.ProposalStateClosed, proposalState(&core.Proposal{End: now.Unix()}, now))
	assert.Equal(t, core.ProposalStateActive, proposalState(&core.Proposal{State: core.ProposalStateActive}, now))
}

func TestBuildStatsWithoutVotes(t *testing.T) {
	stats := BuildStats(&core.Proposal{Choices: []string{"For", "Against"}, End: now.Unix() + 86400}, nil, now)
	assert.False(t, stats.VotingOver)
	assert.Empty(t, stats.Quorum)
	for _, c := range stats.Choices {
		assert.False(t, c.Leading)
		assert.Equal(t, "0.0%", c.Percent)
	}
}
