package proposal

import (
	"fmt"
	"math"
	"strings"
	"time"

	"beanstalk/core"
	"beanstalk/pkg/number"
)

const (
	ipfsPrefix = "ipfs://"
	// IPFSGateway http gateway resolving ipfs content addresses
	IPFSGateway = "https://cf-ipfs.com/ipfs/"
)

// RewriteIPFS replaces every ipfs:// occurrence in body with the gateway prefix
func RewriteIPFS(body string) string {
	return strings.ReplaceAll(body, ipfsPrefix, IPFSGateway)
}

// Build projects the proposal and its quorum into the content layout.
// quorum may be nil while it is still loading.
func Build(p *core.Proposal, quorum *core.Quorum, now time.Time) Content {
	return Content{
		Title:     p.Title,
		Stats:     BuildStats(p, quorum, now),
		Indicator: buildIndicator(p, quorum, now),
		Markdown:  RewriteIPFS(p.Body),
	}
}

func buildIndicator(p *core.Proposal, quorum *core.Quorum, now time.Time) *Indicator {
	pct := quorum.PctOfQuorum()
	if pct == nil || !(*pct > 0) {
		return nil
	}

	raw := *pct * 100
	value := math.Min(raw, 100)

	verb := "is"
	if p.VotingOver(now) {
		verb = "was"
	}

	return &Indicator{
		Value: value,
		Badge: fmt.Sprintf("%d%%", int64(value)),
		Label: fmt.Sprintf("%s %s ~%s%% of the way to reaching quorum.", quorum.Data.Tag, verb, number.ToFixed(raw, 1)),
	}
}
