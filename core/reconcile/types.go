package reconcile

import (
	"time"

	"listsync/core/listsync"
)

// Record is a single item of a view or a source snapshot.
type Record struct {
	// ID is the normalized identifier taken from the configured id field.
	ID string `json:"id"`

	// Fields holds the decoded object, id field included.
	Fields map[string]any `json:"fields"`
}

// RecordID is the identifier function used for records.
func RecordID(r Record) string {
	return r.ID
}

// Spec defines one reconciliation source.
type Spec struct {
	// Adapter decodes the snapshot object.
	Adapter Adapter

	// SourceObject is the full storage key of the snapshot.
	SourceObject string

	// IDField names the identifier field in each record.
	IDField string

	// Strategy decides where new records are inserted.
	Strategy listsync.StrategyKind

	// CacheTTL is the time-to-live of a loaded snapshot.
	// If zero, caching is disabled.
	CacheTTL time.Duration

	// MaxObjectBytes caps the snapshot size. Zero means unlimited.
	MaxObjectBytes int64
}

// CacheKey returns the key a loaded snapshot is cached under.
// Specs reading the same object the same way share a snapshot.
func (s *Spec) CacheKey() string {
	return s.Adapter.Name() + "|" + s.IDField + "|" + s.SourceObject
}

// Plan is the outcome of reconciling a view against a snapshot, before it is stored.
type Plan struct {
	// Deleted lists the ids of removed records in their original order.
	Deleted []string `json:"deleted"`

	// Updated lists the ids replaced in place whose payload changed.
	Updated []string `json:"updated"`

	// Inserted lists the ids of new records in insertion order.
	Inserted []string `json:"inserted"`

	// Items is the reconciled list.
	Items []Record `json:"items"`

	// Selection holds the positions of the surviving selected records in Items.
	Selection []int `json:"selection"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a plan.
type PlanSummary struct {
	// TotalItems is the length of the reconciled list.
	TotalItems int `json:"total_items"`

	// Deleted counts removed records.
	Deleted int `json:"deleted"`

	// Matched counts records present on both sides.
	Matched int `json:"matched"`

	// Changed counts matched records whose payload differs.
	Changed int `json:"changed"`

	// Inserted counts new records.
	Inserted int `json:"inserted"`

	// SelectionLost counts selected records that did not survive.
	SelectionLost int `json:"selection_lost"`
}

// HasChanges reports whether applying the plan would change the stored view.
func (p *Plan) HasChanges() bool {
	return p.Summary.Deleted > 0 || p.Summary.Changed > 0 || p.Summary.Inserted > 0
}

// Options controls whether a plan is persisted.
type Options struct {
	// DryRun prevents persisting if true.
	DryRun bool

	// Confirmed indicates the caller confirmed the change.
	// If false, nothing is persisted regardless of DryRun.
	Confirmed bool
}
