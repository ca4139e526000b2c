package config

import (
	"beanstalk/core"

	configUtil "github.com/fox-one/pkg/config"
	"github.com/shopspring/decimal"
)

const (
	// DefaultSnapshotEndpoint snapshot hub graphql endpoint
	DefaultSnapshotEndpoint = "https://hub.snapshot.org/graphql"
	// DefaultSnapshotLink proposal page on snapshot.org
	DefaultSnapshotLink = "https://snapshot.org/#/%s/proposal/%s"
	// DefaultSubgraphEndpoint beanstalk subgraph endpoint
	DefaultSubgraphEndpoint = "https://graph.node.bean.money/subgraphs/name/beanstalk"
	// DefaultBeanstalk beanstalk diamond address
	DefaultBeanstalk = "0xc1e088fc1323b20bcbee9bd1b9fc9546db5624c5"
	// StalkDecimals stalk token decimals
	StalkDecimals = 10
)

// Load load config file
func Load(configFile string, config *core.Config) error {
	configUtil.AutomaticLoadEnv("BEANSTALK")
	if err := configUtil.LoadYaml(configFile, config); err != nil {
		return err
	}

	defaults(config)
	return nil
}

func defaults(cfg *core.Config) {
	if cfg.App.Location == "" {
		cfg.App.Location = "UTC"
	}

	if cfg.Snapshot.Endpoint == "" {
		cfg.Snapshot.Endpoint = DefaultSnapshotEndpoint
	}

	if cfg.Snapshot.Link == "" {
		cfg.Snapshot.Link = DefaultSnapshotLink
	}

	if cfg.Subgraph.Endpoint == "" {
		cfg.Subgraph.Endpoint = DefaultSubgraphEndpoint
	}

	if cfg.Subgraph.Beanstalk == "" {
		cfg.Subgraph.Beanstalk = DefaultBeanstalk
	}

	if cfg.Subgraph.Decimals <= 0 {
		cfg.Subgraph.Decimals = StalkDecimals
	}

	if len(cfg.Spaces) == 0 {
		cfg.Spaces = []core.Space{
			{ID: "beanstalkdao.eth", Quorum: decimal.NewFromFloat(0.5)},
			{ID: "beanstalkfarms.eth", Quorum: decimal.NewFromFloat(0.25)},
		}
	}

	if !cfg.Quorum.Default.IsPositive() {
		cfg.Quorum.Default = decimal.NewFromFloat(0.5)
	}

	if cfg.Quorum.CacheSize <= 0 {
		cfg.Quorum.CacheSize = 1024
	}

	if cfg.Quorum.CacheTTL == "" {
		cfg.Quorum.CacheTTL = "1m"
	}

	if cfg.Sync.Interval == "" {
		cfg.Sync.Interval = "5m"
	}

	if cfg.Sync.Limit <= 0 {
		cfg.Sync.Limit = 100
	}
}
