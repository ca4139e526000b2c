package quorum

import (
	"context"
	"fmt"
	"strings"
	"time"

	"beanstalk/core"

	"github.com/bluele/gcache"
	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

const (
	tagFor   = "For"
	tagTotal = "Total Votes"

	closedTTL     = 24 * time.Hour
	lookupTimeout = 15 * time.Second
)

// New new quorum service
func New(cfg *core.Config, stalks core.StalkService) core.QuorumService {
	return &service{
		cfg:    cfg,
		stalks: stalks,
		cache:  gcache.New(cfg.Quorum.CacheSize).LRU().Build(),
		sf:     &singleflight.Group{},
		now:    time.Now,
	}
}

type service struct {
	cfg    *core.Config
	stalks core.StalkService
	cache  gcache.Cache
	sf     *singleflight.Group
	now    func() time.Time
}

func (s *service) Find(ctx context.Context, p *core.Proposal) (*core.Quorum, error) {
	key := s.key(p)
	if v, err := s.cache.Get(key); err == nil {
		if q, ok := v.(*core.Quorum); ok {
			return q, nil
		}
	}

	ch := s.sf.DoChan(key, func() (interface{}, error) {
		if p.Snapshot <= 0 {
			return nil, core.ErrQuorumUnavailable
		}

		// shared by every caller waiting on key, so it must outlive any one of them
		ctx, cancel := context.WithTimeout(logger.WithContext(context.Background(), logger.FromContext(ctx)), lookupTimeout)
		defer cancel()

		totalStalk, err := s.stalks.TotalStalk(ctx, p.Snapshot)
		if err != nil {
			return nil, err
		}

		q := Compute(p, totalStalk, s.cfg.QuorumPct(p.Space))

		ttl := s.cfg.Quorum.TTL()
		if p.VotingOver(s.now()) {
			ttl = closedTTL
		}

		if ttl > 0 {
			if err := s.cache.SetWithExpire(key, q, ttl); err != nil {
				logger.FromContext(ctx).WithError(err).Warnln("cache.SetWithExpire", key)
			}
		}

		return q, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return nil, r.Err
		}

		return r.Val.(*core.Quorum), nil
	}
}

// scores change while voting is active
func (s *service) key(p *core.Proposal) string {
	return fmt.Sprintf("quorum:%s:%s", p.ProposalID, p.ScoresTotal.String())
}

// Compute quorum progress of p given the total stalk at its snapshot block
func Compute(p *core.Proposal, totalStalk, quorumPct decimal.Decimal) *core.Quorum {
	tag, score := tagTotal, p.ScoresTotal
	if len(p.Choices) > 0 && strings.EqualFold(p.Choices[0], tagFor) {
		tag, score = tagFor, p.ScoreOf(0)
	}

	data := core.QuorumData{
		Tag:        tag,
		Score:      score,
		Quorum:     totalStalk.Mul(quorumPct),
		QuorumPct:  quorumPct,
		TotalStalk: totalStalk,
	}

	if data.Quorum.IsPositive() {
		pct, _ := score.Div(data.Quorum).Float64()
		data.PctOfQuorum = &pct
	}

	return &core.Quorum{Data: data}
}
