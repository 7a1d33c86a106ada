package listsync

// Sync reconciles target with source, appending unmatched source items at the end
// of target in source order.
func Sync[T any, I comparable](target *[]T, source []T, id IdentifierFunc[T, I], selection []int) (Result, error) {
	return reconcileSlice(target, source, id, selection, Options[T]{Strategy: AppendAtEnd[T]()})
}

// Adjust reconciles target with source, inserting unmatched source items at their
// position in source.
func Adjust[T any, I comparable](target *[]T, source []T, id IdentifierFunc[T, I], selection []int) (Result, error) {
	return reconcileSlice(target, source, id, selection, Options[T]{Strategy: BySourceOrder[T]()})
}

// SyncWithIndex reconciles target with source, inserting unmatched source items where
// index says. A nil index behaves like Adjust.
func SyncWithIndex[T any, I comparable](target *[]T, source []T, id IdentifierFunc[T, I], index IndexFunc[T], selection []int) (Result, error) {
	strategy := BySourceOrder[T]()
	if index != nil {
		strategy = CustomIndex(index)
	}
	return reconcileSlice(target, source, id, selection, Options[T]{Strategy: strategy})
}

// ReconcileSlice is Reconcile over a plain slice.
func ReconcileSlice[T any, I comparable](target *[]T, source []T, id IdentifierFunc[T, I], selection []int, opts Options[T]) (Result, error) {
	return reconcileSlice(target, source, id, selection, opts)
}

// Preview runs the reconciliation on a copy of target and returns the result together
// with the reconciled copy. target itself is left untouched.
func Preview[T any, I comparable](target []T, source []T, id IdentifierFunc[T, I], selection []int, opts Options[T]) (Result, []T, error) {
	work := make([]T, len(target), len(target)+len(source))
	copy(work, target)
	res, err := reconcileSlice(&work, source, id, selection, opts)
	if err != nil {
		return Result{}, nil, err
	}
	return res, work, nil
}

func reconcileSlice[T any, I comparable](target *[]T, source []T, id IdentifierFunc[T, I], selection []int, opts Options[T]) (Result, error) {
	if target == nil {
		return Result{}, NewArgumentError("target", "must not be nil")
	}
	return Reconcile(NewSlice(target), source, id, selection, opts)
}

// Reconcile mutates target so that it holds exactly the items of source: target items
// whose identifier is absent from source are removed, matched ones are replaced in place
// by the source item, and unmatched source items are inserted according to opts.Strategy.
//
// selection holds positions into target as it is before the call; duplicates are
// tolerated. The returned Result carries the positions of the surviving selected items
// in the mutated target, in their original relative order.
//
// Inputs are validated before the first mutation. An ErrIndexOutOfRange or
// ErrInconsistentState failure happens during insertion and leaves target structurally
// valid but only partially reconciled.
func Reconcile[T any, I comparable](target Sequence[T], source []T, id IdentifierFunc[T, I], selection []int, opts Options[T]) (Result, error) {
	if err := validate(target, id, selection, opts); err != nil {
		return Result{}, err
	}

	selected := make(map[int]struct{}, len(selection))
	for _, s := range selection {
		selected[s] = struct{}{}
	}

	res := Result{Selection: make([]int, 0, len(selected))}
	sourceKeys := keySet(source, id)

	// Delete/retarget. j walks the original positions, i the surviving ones.
	targetIndex := make(map[I]int, target.Len())
	for i, j := 0, 0; i < target.Len(); j++ {
		item := target.Get(i)
		key := id(item)
		if _, ok := sourceKeys[key]; !ok {
			target.Remove(i)
			res.Deleted++
			if opts.Observer != nil {
				opts.Observer.Deleted(item, j)
			}
			continue
		}
		if _, ok := selected[j]; ok {
			res.Selection = append(res.Selection, i)
		}
		retain(opts.Duplicates, targetIndex, key, i)
		i++
	}

	// Update in place, stage the rest in source order.
	var sourceIndex map[I]int
	if opts.Strategy.kind == KindBySourceOrder {
		sourceIndex = make(map[I]int)
	}
	staged := make([]T, 0, len(source))
	for k, item := range source {
		key := id(item)
		if at, ok := targetIndex[key]; ok {
			previous := target.Get(at)
			target.Set(at, item)
			res.Updated++
			if opts.Observer != nil {
				opts.Observer.Updated(previous, item, at)
			}
			continue
		}
		staged = append(staged, item)
		if sourceIndex != nil {
			sourceIndex[key] = k
		}
	}

	// Insert and shift the selection behind every insertion point.
	for _, item := range staged {
		at, err := insertionIndex(target, item, id, opts.Strategy, sourceIndex)
		if err != nil {
			return res, err
		}
		target.Insert(at, item)
		res.Inserted++
		if opts.Observer != nil {
			opts.Observer.Inserted(item, at)
		}
		for n, s := range res.Selection {
			if s >= at {
				res.Selection[n] = s + 1
			}
		}
	}

	return res, nil
}

// validate checks every precondition that can be checked without touching target.
func validate[T any, I comparable](target Sequence[T], id IdentifierFunc[T, I], selection []int, opts Options[T]) error {
	if target == nil {
		return NewArgumentError("target", "must not be nil")
	}
	if s, ok := target.(*Slice[T]); ok && (s == nil || s.items == nil) {
		return NewArgumentError("target", "must not be nil")
	}
	if id == nil {
		return NewArgumentError("identifier", "must not be nil")
	}
	switch opts.Strategy.kind {
	case KindBySourceOrder, KindAppendAtEnd:
	case KindCustomIndex:
		if opts.Strategy.index == nil {
			return NewArgumentError("strategy", "custom strategy without index function")
		}
	default:
		return NewArgumentError("strategy", opts.Strategy.kind.String())
	}
	if opts.Duplicates != LastWins {
		return NewArgumentError("duplicates", opts.Duplicates.String())
	}
	if opts.Selection == RejectOutOfRange {
		n := target.Len()
		for _, s := range selection {
			if s < 0 || s >= n {
				return &SelectionError{Index: s, Len: n}
			}
		}
	}
	return nil
}

// keySet collects the distinct identifiers of source.
func keySet[T any, I comparable](source []T, id IdentifierFunc[T, I]) map[I]struct{} {
	keys := make(map[I]struct{}, len(source))
	for _, item := range source {
		keys[id(item)] = struct{}{}
	}
	return keys
}

// retain records the surviving position of key according to policy.
func retain[I comparable](policy DuplicatePolicy, table map[I]int, key I, at int) {
	switch policy {
	case LastWins:
		table[key] = at
	}
}

func insertionIndex[T any, I comparable](target Sequence[T], item T, id IdentifierFunc[T, I], strategy Strategy[T], sourceIndex map[I]int) (int, error) {
	n := target.Len()
	switch strategy.kind {
	case KindAppendAtEnd:
		return n, nil
	case KindBySourceOrder:
		key := id(item)
		at, ok := sourceIndex[key]
		if !ok {
			return 0, &ConsistencyError{Identifier: key}
		}
		if at > n {
			return 0, &InsertionError{Identifier: key, Index: at, Len: n}
		}
		return at, nil
	default:
		at := strategy.index(item)
		if at < 0 || at > n {
			return 0, &InsertionError{Identifier: id(item), Index: at, Len: n}
		}
		return at, nil
	}
}
