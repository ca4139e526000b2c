package proposal

import (
	"context"
	"errors"
	"testing"
	"time"

	"beanstalk/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	proposals map[string]*core.Proposal
	finds     int
	fail      bool
}

func (s *memoryStore) Save(_ context.Context, p *core.Proposal) error {
	if s.fail {
		return errors.New("db down")
	}

	s.proposals[p.ProposalID] = p
	return nil
}

func (s *memoryStore) Find(_ context.Context, id string) (*core.Proposal, bool, error) {
	s.finds++
	p, ok := s.proposals[id]
	if !ok {
		return nil, true, errors.New("record not found")
	}

	return p, false, nil
}

func (s *memoryStore) List(_ context.Context, _ string, _, _ int) ([]*core.Proposal, error) {
	return nil, nil
}

func TestCacheFind(t *testing.T) {
	mem := &memoryStore{proposals: map[string]*core.Proposal{
		"0x01": {ProposalID: "0x01", Title: "BIP-1"},
	}}
	store := Cache(mem, 16, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		p, notFound, err := store.Find(ctx, "0x01")
		require.NoError(t, err)
		assert.False(t, notFound)
		assert.Equal(t, "BIP-1", p.Title)
	}
	assert.Equal(t, 1, mem.finds)

	_, notFound, err := store.Find(ctx, "0x02")
	assert.Error(t, err)
	assert.True(t, notFound)

	_, _, _ = store.Find(ctx, "0x02")
	assert.Equal(t, 3, mem.finds, "misses are not cached")
}

func TestCacheSave(t *testing.T) {
	mem := &memoryStore{proposals: map[string]*core.Proposal{}}
	store := Cache(mem, 16, 0)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &core.Proposal{ProposalID: "0x01", Title: "v1"}))
	p, _, err := store.Find(ctx, "0x01")
	require.NoError(t, err)
	assert.Equal(t, "v1", p.Title)
	assert.Equal(t, 0, mem.finds)

	mem.fail = true
	assert.Error(t, store.Save(ctx, &core.Proposal{ProposalID: "0x01", Title: "v2"}))

	p, _, err = store.Find(ctx, "0x01")
	require.NoError(t, err)
	assert.Equal(t, "v1", p.Title)
	assert.Equal(t, 1, mem.finds, "failed save evicts the cached entry")
}
