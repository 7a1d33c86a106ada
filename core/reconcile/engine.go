package reconcile

import (
	"bytes"
	"context"
	"fmt"
	"reflect"

	"listsync/core/listsync"
	"listsync/core/storage"
)

// LoadSnapshot reads spec.SourceObject from the bucket and decodes its records.
func LoadSnapshot(ctx context.Context, client storage.Client, bucket string, spec *Spec) ([]Record, error) {
	if spec.Adapter == nil {
		return nil, fmt.Errorf("spec for %s has no adapter", spec.SourceObject)
	}

	data, err := storage.ReadObject(ctx, client, bucket, spec.SourceObject, spec.MaxObjectBytes)
	if err != nil {
		return nil, err
	}

	records, err := spec.Adapter.Decode(bytes.NewReader(data), spec.IDField)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", spec.SourceObject, err)
	}
	return records, nil
}

// BuildPlan reconciles a copy of target with source and describes the result.
// target is not modified.
func BuildPlan(target, source []Record, selection []int, spec *Spec) (*Plan, error) {
	strategy, err := listsync.StrategyOf[Record](spec.Strategy)
	if err != nil {
		return nil, err
	}

	rec := &planRecorder{}
	res, items, err := listsync.Preview(target, source, RecordID, selection, listsync.Options[Record]{
		Strategy: strategy,
		Observer: rec,
	})
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		Deleted:   rec.deleted,
		Updated:   rec.updated,
		Inserted:  rec.inserted,
		Items:     items,
		Selection: res.Selection,
		Summary: PlanSummary{
			TotalItems:    len(items),
			Deleted:       res.Deleted,
			Matched:       res.Updated,
			Changed:       len(rec.updated),
			Inserted:      res.Inserted,
			SelectionLost: distinct(selection) - len(res.Selection),
		},
	}
	return plan, nil
}

// planRecorder collects the ids touched by a reconciliation.
type planRecorder struct {
	deleted  []string
	updated  []string
	inserted []string
}

func (r *planRecorder) Deleted(item Record, _ int) {
	r.deleted = append(r.deleted, item.ID)
}

func (r *planRecorder) Updated(previous, next Record, _ int) {
	if !reflect.DeepEqual(previous.Fields, next.Fields) {
		r.updated = append(r.updated, next.ID)
	}
}

func (r *planRecorder) Inserted(item Record, _ int) {
	r.inserted = append(r.inserted, item.ID)
}

func distinct(values []int) int {
	seen := make(map[int]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	return len(seen)
}
