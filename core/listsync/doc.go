// Package listsync reconciles an ordered, mutable target list with a newer source
// collection of the same item type, in place, while carrying a caller-held selection
// across the change.
//
// It is the primitive behind editable list views: the target is what a user is looking
// at, the source is freshly loaded data. Items are matched by an identifier function.
//
// # Phases
//
// Reconcile runs four steps in a fixed order and never revisits an earlier one:
//
//  1. Key index: the set of distinct source identifiers.
//  2. Delete/retarget: target items whose identifier is absent from the source are removed;
//     survivors get their post-deletion position and selected survivors are carried over.
//  3. Update/collect: matched source items replace the target item in place, unmatched ones
//     are staged for insertion in source order.
//  4. Insert/remap: staged items are inserted one at a time and every selected position at or
//     past the insertion point is shifted right.
//
// # Insertion strategies
//
// Where unmatched items land is an explicit Strategy:
//   - AppendAtEnd: at the current end of the target, evaluated per insertion (Sync).
//   - BySourceOrder: at the item's rank in the source (Adjust). This is the zero value.
//   - CustomIndex: wherever the supplied function says.
//
// # Ownership
//
// The target is taken over for the duration of the call and handed back mutated; no
// replacement list is allocated. Nothing here is safe for concurrent use on the same
// target, callers serialize access themselves.
//
// # Usage
//
//	res, err := listsync.Sync(&rows, fresh, func(r Row) int64 { return r.ID }, []int{0, 2})
//	if err != nil {
//	    return err
//	}
//	if primary, ok := res.Primary(); ok {
//	    focus(primary, res.Secondary())
//	}
package listsync
