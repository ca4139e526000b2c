package cmd

import (
	"time"

	"beanstalk/core"
	"beanstalk/service/proposal"
	"beanstalk/service/quorum"
	"beanstalk/service/snapshot"
	proposalstore "beanstalk/store/proposal"

	"github.com/fox-one/pkg/property"
	"github.com/fox-one/pkg/store/db"
	propertystore "github.com/fox-one/pkg/store/property"
)

func provideDatabase() *db.DB {
	return db.MustOpen(cfg.DB)
}

func provideConfig() *core.Config {
	return &cfg
}

// ---------------store-----------------------------------------

func providePropertyStore(db *db.DB) property.Store {
	return propertystore.New(db)
}

func provideProposalStore(db *db.DB) core.ProposalStore {
	return proposalstore.Cache(proposalstore.New(db), 512, time.Minute)
}

// ------------------service------------------------------------

func provideSnapshotService() core.SnapshotService {
	return snapshot.New(cfg.Snapshot.Endpoint)
}

func provideQuorumService() core.QuorumService {
	return quorum.New(provideConfig(), quorum.NewStalkService(cfg.Subgraph))
}

func provideProposalService(proposals core.ProposalStore) *proposal.Service {
	return proposal.New(provideConfig(), proposals, provideSnapshotService(), provideQuorumService())
}
