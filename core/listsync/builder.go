package listsync

// Builder collects reconciliation parameters fluently:
//
//	res, err := listsync.From[Row, int64](fresh).
//	    To(&rows).
//	    IdentifiedBy(func(r Row) int64 { return r.ID }).
//	    Select(selected...).
//	    Sync()
//
// Unless Using is called, unmatched items are inserted by source order.
type Builder[T any, I comparable] struct {
	source    []T
	target    *[]T
	id        IdentifierFunc[T, I]
	selection []int
	opts      Options[T]
}

// From starts a builder reading from source.
func From[T any, I comparable](source []T) *Builder[T, I] {
	return &Builder[T, I]{source: source}
}

// To sets the slice that is reconciled in place.
func (b *Builder[T, I]) To(target *[]T) *Builder[T, I] {
	b.target = target
	return b
}

// IdentifiedBy sets the identifier function.
func (b *Builder[T, I]) IdentifiedBy(id IdentifierFunc[T, I]) *Builder[T, I] {
	b.id = id
	return b
}

// Select sets the current selection. Calling it again replaces the previous one.
func (b *Builder[T, I]) Select(selection ...int) *Builder[T, I] {
	b.selection = selection
	return b
}

// Using sets the insertion strategy.
func (b *Builder[T, I]) Using(strategy Strategy[T]) *Builder[T, I] {
	b.opts.Strategy = strategy
	return b
}

// IgnoreOutOfRange drops selection indices outside the target instead of failing.
func (b *Builder[T, I]) IgnoreOutOfRange() *Builder[T, I] {
	b.opts.Selection = IgnoreOutOfRange
	return b
}

// Observe registers an observer for the changes made to the target.
func (b *Builder[T, I]) Observe(o Observer[T]) *Builder[T, I] {
	b.opts.Observer = o
	return b
}

// Sync runs the reconciliation.
func (b *Builder[T, I]) Sync() (Result, error) {
	return reconcileSlice(b.target, b.source, b.id, b.selection, b.opts)
}
