package reconcile

import (
	"context"
	"fmt"
)

// Store persists a reconciled view.
type Store interface {
	// SaveItems replaces the items and selection of the view in one unit.
	SaveItems(ctx context.Context, viewID string, items []Record, selection []int) error
}

// ApplyPlan persists plan for viewID.
// Returns whether anything was written. Requires opts.Confirmed=true and
// opts.DryRun=false to actually write.
func ApplyPlan(ctx context.Context, store Store, viewID string, plan *Plan, opts Options) (bool, error) {
	if !opts.Confirmed || opts.DryRun {
		return false, nil
	}
	if plan == nil {
		return false, fmt.Errorf("no plan for view %s", viewID)
	}

	if err := store.SaveItems(ctx, viewID, plan.Items, plan.Selection); err != nil {
		return false, fmt.Errorf("failed to save view %s: %w", viewID, err)
	}
	return true, nil
}
