package proposal

import (
	"context"
	"fmt"
	"io"
	"time"

	"beanstalk/core"

	"github.com/fox-one/pkg/logger"
)

// New new proposal service
func New(
	cfg *core.Config,
	proposals core.ProposalStore,
	snapshots core.SnapshotService,
	quorums core.QuorumService,
) *Service {
	return &Service{
		cfg:       cfg,
		proposals: proposals,
		snapshots: snapshots,
		quorums:   quorums,
		now:       time.Now,
	}
}

// Service resolves proposals and projects them into content
type Service struct {
	cfg       *core.Config
	proposals core.ProposalStore
	snapshots core.SnapshotService
	quorums   core.QuorumService
	now       func() time.Time
}

// Find find the proposal in store, falls back to the snapshot hub
func (s *Service) Find(ctx context.Context, id string) (*core.Proposal, error) {
	log := logger.FromContext(ctx).WithField("proposal", id)

	p, notFound, err := s.proposals.Find(ctx, id)
	if err == nil {
		return p, nil
	}

	if !notFound {
		log.WithError(err).Errorln("proposals.Find")
		return nil, err
	}

	p, notFound, err = s.snapshots.FindProposal(ctx, id)
	if err != nil {
		if notFound {
			return nil, core.ErrProposalNotFound
		}

		log.WithError(err).Errorln("snapshots.FindProposal")
		return nil, err
	}

	if _, ok := s.cfg.FindSpace(p.Space); !ok {
		return nil, core.ErrSpaceNotAllowed
	}

	if err := s.proposals.Save(ctx, p); err != nil {
		log.WithError(err).Warnln("proposals.Save")
	}

	return p, nil
}

// Quorum load the quorum of p, nil if it can not be resolved
func (s *Service) Quorum(ctx context.Context, p *core.Proposal) *core.Quorum {
	q, err := s.quorums.Find(ctx, p)
	if err != nil {
		logger.FromContext(ctx).WithError(err).WithField("proposal", p.ProposalID).Warnln("quorums.Find")
		return nil
	}

	return q
}

// Content build the content of p with its quorum
func (s *Service) Content(ctx context.Context, p *core.Proposal, quorum *core.Quorum) (Content, error) {
	c := Build(p, quorum, s.now())
	c.Stats.Link = s.link(p)

	body, err := Markdown(c.Markdown)
	if err != nil {
		return c, fmt.Errorf("render markdown: %w", err)
	}

	c.Body = body
	c.rendered = true
	return c, nil
}

// RenderPage find proposal id and write its html page to w
func (s *Service) RenderPage(ctx context.Context, w io.Writer, id string) error {
	p, err := s.Find(ctx, id)
	if err != nil {
		return err
	}

	c, err := s.Content(ctx, p, s.Quorum(ctx, p))
	if err != nil {
		return err
	}

	return RenderPage(w, c)
}

func (s *Service) link(p *core.Proposal) string {
	if s.cfg.Snapshot.Link == "" {
		return ""
	}

	return fmt.Sprintf(s.cfg.Snapshot.Link, p.Space, p.ProposalID)
}
