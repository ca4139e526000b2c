package syncer

import (
	"context"
	"fmt"
	"time"

	"beanstalk/core"
	"beanstalk/pkg/concurrency"
	"beanstalk/worker"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/property"
	"github.com/fox-one/pkg/uuid"
	"github.com/robfig/cron/v3"
)

const (
	maxConcurrentSpaces = 4

	// the hub keeps settling scores for a while after voting ends
	settleWindow = time.Hour
)

var _ worker.IJob = (*Syncer)(nil)

// Checkpoints persists the last sync time per space
type Checkpoints interface {
	Get(ctx context.Context, key string) (time.Time, error)
	Save(ctx context.Context, key string, t time.Time) error
}

// PropertyCheckpoints checkpoints kept in the property store
func PropertyCheckpoints(store property.Store) Checkpoints {
	return &propertyCheckpoints{store: store}
}

type propertyCheckpoints struct {
	store property.Store
}

func (c *propertyCheckpoints) Get(ctx context.Context, key string) (time.Time, error) {
	v, err := c.store.Get(ctx, key)
	if err != nil {
		return time.Time{}, err
	}

	return v.Time(), nil
}

func (c *propertyCheckpoints) Save(ctx context.Context, key string, t time.Time) error {
	return c.store.Save(ctx, key, t)
}

// Syncer sync proposals of the governed spaces from the snapshot hub
type Syncer struct {
	worker.BaseJob
	spaces      []string
	limit       int
	snapshots   core.SnapshotService
	proposals   core.ProposalStore
	checkpoints Checkpoints
	now         func() time.Time
}

// New new sync worker
func New(
	cfg *core.Config,
	snapshots core.SnapshotService,
	proposals core.ProposalStore,
	checkpoints Checkpoints,
) (*Syncer, error) {
	syncer := Syncer{
		spaces:      cfg.SpaceIDs(),
		limit:       cfg.Sync.Limit,
		snapshots:   snapshots,
		proposals:   proposals,
		checkpoints: checkpoints,
		now:         time.Now,
	}

	l, err := time.LoadLocation(cfg.App.Location)
	if err != nil {
		return nil, err
	}

	syncer.Cron = cron.New(cron.WithLocation(l))
	if _, err := syncer.Cron.AddFunc("@every "+cfg.Sync.Interval, syncer.Run); err != nil {
		return nil, fmt.Errorf("sync interval %q: %w", cfg.Sync.Interval, err)
	}

	syncer.OnWork = func() error {
		return syncer.Sync(context.Background())
	}

	return &syncer, nil
}

func checkpointKey(space string) string {
	return "sync_checkpoint:" + space
}

// Sync sync every space once
func (w *Syncer) Sync(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("run", uuid.New())
	ctx = logger.WithContext(ctx, log)

	errs := make([]error, len(w.spaces))
	concurrency.Await(concurrency.NewGoLimit(maxConcurrentSpaces), len(w.spaces), func(idx int) {
		errs[idx] = w.syncSpace(ctx, w.spaces[idx])
	})

	for idx, err := range errs {
		if err != nil {
			log.WithError(err).WithField("space", w.spaces[idx]).Errorln("sync space")
			return err
		}
	}

	return nil
}

func (w *Syncer) syncSpace(ctx context.Context, space string) error {
	log := logger.FromContext(ctx).WithField("space", space)

	key := checkpointKey(space)
	since, err := w.checkpoints.Get(ctx, key)
	if err != nil {
		log.WithError(err).Errorln("checkpoints.Get", key)
		return err
	}

	startedAt := w.now()
	saved := 0

	for skip := 0; ; skip += w.limit {
		batch, err := w.snapshots.ListProposals(ctx, space, skip, w.limit)
		if err != nil {
			log.WithError(err).Errorln("snapshots.ListProposals")
			return err
		}

		final := 0
		for _, p := range batch {
			// settled before the previous run, scores are final and already stored
			if !since.IsZero() && p.EndAt().Add(settleWindow).Before(since) {
				final++
				continue
			}

			if err := w.proposals.Save(ctx, p); err != nil {
				log.WithError(err).WithField("proposal", p.ProposalID).Errorln("proposals.Save")
				return err
			}

			saved++
		}

		if len(batch) < w.limit || final == len(batch) {
			break
		}
	}

	if err := w.checkpoints.Save(ctx, key, startedAt); err != nil {
		log.WithError(err).Errorln("checkpoints.Save", key)
		return err
	}

	log.Debugln("synced", saved, "proposals")
	return nil
}
