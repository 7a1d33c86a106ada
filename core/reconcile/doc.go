// Package reconcile refreshes stored lists from source snapshots kept in object storage.
//
// A snapshot is a JSON (or NDJSON) object of records, each carrying an identifier field.
// Reconciliation itself is delegated to the listsync package; this package adds the
// plumbing around it:
//
//   - Adapter: decodes a snapshot object into records.
//   - LoadSnapshot and Cache: read snapshots from storage, with a TTL cache whose
//     loads are collapsed through singleflight.
//   - BuildPlan: reconciles a copy of a view and reports deleted, changed and
//     inserted ids together with the remapped selection.
//   - ApplyPlan: persists a plan through a Store, only when confirmed and not a dry run.
//
// # Usage Example
//
//	spec := &reconcile.Spec{
//	    Adapter:      reconcile.JSONAdapter{},
//	    SourceObject: cfg.Sync.ObjectPath("products.json"),
//	    IDField:      "id",
//	    CacheTTL:     cfg.Sync.CacheTTL(),
//	}
//
//	snap, err := cache.GetOrLoadSnapshot(ctx, client, bucket, spec)
//	plan, err := reconcile.BuildPlan(items, snap.Records, selection, spec)
//	saved, err := reconcile.ApplyPlan(ctx, store, viewID, plan, reconcile.Options{Confirmed: true})
package reconcile
