package proposal

import (
	"context"
	"fmt"
	"time"

	"beanstalk/core"

	"github.com/bluele/gcache"
	"golang.org/x/sync/singleflight"
)

// Cache caches proposals found by id
func Cache(store core.ProposalStore, size int, exp time.Duration) core.ProposalStore {
	builder := gcache.New(size).LRU()
	if exp > 0 {
		builder = builder.Expiration(exp)
	}

	return &cacheProposalStore{
		ProposalStore: store,
		cache:         builder.Build(),
		sf:            &singleflight.Group{},
	}
}

type cacheProposalStore struct {
	core.ProposalStore
	cache gcache.Cache
	sf    *singleflight.Group
}

type findResult struct {
	proposal *core.Proposal
	notFound bool
}

func (s *cacheProposalStore) Save(ctx context.Context, proposal *core.Proposal) error {
	if err := s.ProposalStore.Save(ctx, proposal); err != nil {
		s.cache.Remove(s.key(proposal.ProposalID))
		return err
	}

	_ = s.cache.Set(s.key(proposal.ProposalID), proposal)
	return nil
}

func (s *cacheProposalStore) Find(ctx context.Context, id string) (*core.Proposal, bool, error) {
	key := s.key(id)
	if v, err := s.cache.Get(key); err == nil {
		if proposal, ok := v.(*core.Proposal); ok {
			return proposal, false, nil
		}
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		proposal, notFound, err := s.ProposalStore.Find(ctx, id)
		if err != nil {
			return findResult{notFound: notFound}, err
		}

		_ = s.cache.Set(key, proposal)
		return findResult{proposal: proposal}, nil
	})

	r := v.(findResult)
	return r.proposal, r.notFound, err
}

func (s *cacheProposalStore) key(id string) string {
	return fmt.Sprintf("proposal:id:%s", id)
}
