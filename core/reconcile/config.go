package reconcile

import (
	"path"
	"time"
)

// Config holds the defaults used when reconciling views against source snapshots.
type Config struct {
	// SourcePrefix is the storage prefix source snapshots live under.
	SourcePrefix string `mapstructure:"source_prefix" default:"sources"`
	// IDField names the record field holding the identifier.
	IDField string `mapstructure:"id_field" default:"id"`
	// Strategy is the default insertion strategy ("source" or "append").
	Strategy string `mapstructure:"strategy" default:"source"`
	// Format is the snapshot encoding ("json" or "ndjson").
	Format string `mapstructure:"format" default:"json"`
	// CacheTTLSeconds is how long a loaded snapshot is reused. Zero disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"30"`
	// MaxObjectBytes caps the size of a snapshot object.
	MaxObjectBytes int64 `mapstructure:"max_object_bytes" default:"16777216"`
}

// CacheTTL returns the snapshot cache TTL as a duration.
func (c Config) CacheTTL() time.Duration {
	if c.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// ObjectPath returns the storage key of the snapshot named name.
func (c Config) ObjectPath(name string) string {
	if c.SourcePrefix == "" {
		return name
	}
	return path.Join(c.SourcePrefix, name)
}
