package proposal

import (
	"testing"
	"time"

	"beanstalk/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Unix(1650000000, 0)

func quorumOf(pct float64, tag string) *core.Quorum {
	return &core.Quorum{
		Data: core.QuorumData{
			PctOfQuorum: &pct,
			Tag:         tag,
		},
	}
}

func TestBuildIndicatorOmitted(t *testing.T) {
	p := &core.Proposal{Title: "BIP-20", End: now.Unix() + 60}

	cases := map[string]*core.Quorum{
		"nil":      nil,
		"loading":  {Loading: true, Data: core.QuorumData{Tag: "For"}},
		"absent":   {Data: core.QuorumData{Tag: "For"}},
		"zero":     quorumOf(0, "For"),
		"negative": quorumOf(-0.1, "For"),
	}

	for name, q := range cases {
		t.Run(name, func(t *testing.T) {
			c := Build(p, q, now)
			assert.Nil(t, c.Indicator)
		})
	}
}

func TestBuildIndicatorClamped(t *testing.T) {
	p := &core.Proposal{End: now.Unix() + 60}

	c := Build(p, quorumOf(1.37, "For"), now)
	require.NotNil(t, c.Indicator)
	assert.Equal(t, 100.0, c.Indicator.Value)
	assert.Equal(t, "100%", c.Indicator.Badge)
	assert.Equal(t, "For is ~137.0% of the way to reaching quorum.", c.Indicator.Label)
}

func TestBuildIndicatorTruncatesBadge(t *testing.T) {
	p := &core.Proposal{End: now.Unix() + 60}

	c := Build(p, quorumOf(0.623, "For"), now)
	require.NotNil(t, c.Indicator)
	assert.InDelta(t, 62.3, c.Indicator.Value, 1e-9)
	assert.Equal(t, "62%", c.Indicator.Badge)
	assert.Contains(t, c.Indicator.Label, "~62.3%")

	c = Build(p, quorumOf(0.999, "For"), now)
	require.NotNil(t, c.Indicator)
	assert.Equal(t, "99%", c.Indicator.Badge)
	assert.Contains(t, c.Indicator.Label, "~99.9%")
}

func TestBuildIndicatorTense(t *testing.T) {
	q := quorumOf(0.5, "Total Votes")

	past := Build(&core.Proposal{End: now.Unix() - 3600}, q, now)
	require.NotNil(t, past.Indicator)
	assert.Equal(t, "Total Votes was ~50.0% of the way to reaching quorum.", past.Indicator.Label)

	ending := Build(&core.Proposal{End: now.Unix()}, q, now)
	require.NotNil(t, ending.Indicator)
	assert.Contains(t, ending.Indicator.Label, " was ")

	future := Build(&core.Proposal{End: now.Unix() + 3600}, q, now)
	require.NotNil(t, future.Indicator)
	assert.Equal(t, "Total Votes is ~50.0% of the way to reaching quorum.", future.Indicator.Label)
}

func TestBuildRewritesIPFS(t *testing.T) {
	p := &core.Proposal{Body: "see ipfs://abc123 for details"}
	assert.Equal(t, "see https://cf-ipfs.com/ipfs/abc123 for details", Build(p, nil, now).Markdown)

	p = &core.Proposal{Body: "[a](ipfs://x) and notipfs://y"}
	assert.Equal(t, "[a](https://cf-ipfs.com/ipfs/x) and nothttps://cf-ipfs.com/ipfs/y", Build(p, nil, now).Markdown)
}

func TestBuildEmptyBody(t *testing.T) {
	c := Build(&core.Proposal{Title: "BIP-1"}, nil, now)
	assert.Equal(t, "", c.Markdown)
	assert.Equal(t, "BIP-1", c.Title)
}
