package core

import (
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Config beanstalk governance config
type Config struct {
	App      App          `json:"app"`
	DB       db.Config    `json:"db"`
	Snapshot Snapshot     `json:"snapshot"`
	Subgraph Subgraph     `json:"subgraph"`
	Quorum   QuorumConfig `json:"quorum"`
	Spaces   []Space      `json:"spaces"`
	Sync     Sync         `json:"sync"`
}

// App app config
type App struct {
	Location string `json:"location"`
}

// Snapshot snapshot hub config
type Snapshot struct {
	Endpoint string `json:"endpoint"`
	// Link proposal page on snapshot.org, formatted with space and proposal id
	Link string `json:"link"`
}

// Subgraph beanstalk subgraph config
type Subgraph struct {
	Endpoint  string `json:"endpoint"`
	Beanstalk string `json:"beanstalk"`
	Decimals  int32  `json:"decimals"`
}

// QuorumConfig quorum config
type QuorumConfig struct {
	Default decimal.Decimal `json:"default"`
	// CacheSize max cached quorum results
	CacheSize int `json:"cache_size"`
	// CacheTTL ttl of results of active proposals, eg 1m
	CacheTTL string `json:"cache_ttl"`
}

// Space governed snapshot space
type Space struct {
	ID     string          `json:"id"`
	Quorum decimal.Decimal `json:"quorum"`
}

// Sync syncer config
type Sync struct {
	Interval string `json:"interval"`
	Limit    int    `json:"limit"`
}

// TTL parsed cache ttl
func (q QuorumConfig) TTL() time.Duration {
	return cast.ToDuration(q.CacheTTL)
}

// FindSpace find the configured space by id
func (c *Config) FindSpace(id string) (Space, bool) {
	for _, s := range c.Spaces {
		if s.ID == id {
			return s, true
		}
	}

	return Space{}, false
}

// SpaceIDs ids of all configured spaces
func (c *Config) SpaceIDs() []string {
	ids := make([]string, len(c.Spaces))
	for idx, s := range c.Spaces {
		ids[idx] = s.ID
	}

	return ids
}

// QuorumPct quorum ratio required by the space
func (c *Config) QuorumPct(space string) decimal.Decimal {
	if s, ok := c.FindSpace(space); ok && s.Quorum.IsPositive() {
		return s.Quorum
	}

	return c.Quorum.Default
}
