package listsync

import (
	"fmt"
	"slices"
	"strings"
)

// Sequence is the mutable, index-addressable target of a reconciliation.
// Untouched elements must keep their relative order across Insert and Remove.
type Sequence[T any] interface {
	// Len returns the current number of elements.
	Len() int
	// Get returns the element at i.
	Get(i int) T
	// Set replaces the element at i.
	Set(i int, v T)
	// Insert places v at i, shifting the element at i and later ones right.
	// i may equal Len(), meaning append.
	Insert(i int, v T)
	// Remove deletes the element at i, shifting later ones left.
	Remove(i int)
}

// Slice adapts a caller-owned slice to Sequence. Mutations are written back
// through the pointer so the caller's slice header always reflects the result.
type Slice[T any] struct {
	items *[]T
}

// NewSlice wraps items. The pointer must not be nil.
func NewSlice[T any](items *[]T) *Slice[T] {
	return &Slice[T]{items: items}
}

func (s *Slice[T]) Len() int {
	return len(*s.items)
}

func (s *Slice[T]) Get(i int) T {
	return (*s.items)[i]
}

func (s *Slice[T]) Set(i int, v T) {
	(*s.items)[i] = v
}

func (s *Slice[T]) Insert(i int, v T) {
	*s.items = slices.Insert(*s.items, i, v)
}

func (s *Slice[T]) Remove(i int) {
	*s.items = slices.Delete(*s.items, i, i+1)
}

// IdentifierFunc returns the identity of an item. It must be deterministic for the
// duration of a call; identifiers are expected, not verified, to be unique.
type IdentifierFunc[T any, I comparable] func(T) I

// IndexFunc returns the target position an unmatched source item is inserted at.
// It is called at insertion time, so Len() of the target may legitimately be returned.
type IndexFunc[T any] func(T) int

// StrategyKind enumerates the insertion-position strategies.
type StrategyKind int

const (
	// KindBySourceOrder inserts unmatched items at their rank in the source.
	KindBySourceOrder StrategyKind = iota
	// KindAppendAtEnd inserts unmatched items at the current end of the target.
	KindAppendAtEnd
	// KindCustomIndex asks a caller-supplied IndexFunc.
	KindCustomIndex
)

// String returns the configuration name of the kind.
func (k StrategyKind) String() string {
	switch k {
	case KindBySourceOrder:
		return "source"
	case KindAppendAtEnd:
		return "append"
	case KindCustomIndex:
		return "custom"
	default:
		return fmt.Sprintf("StrategyKind(%d)", int(k))
	}
}

// ParseKind maps a configuration name ("source", "append") to a StrategyKind.
// The custom kind cannot be named in configuration since it needs a function.
func ParseKind(name string) (StrategyKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "source", "by_source_order":
		return KindBySourceOrder, nil
	case "append", "append_at_end":
		return KindAppendAtEnd, nil
	default:
		return 0, NewArgumentError("strategy", fmt.Sprintf("unknown strategy %q", name))
	}
}

// Strategy decides where unmatched source items are inserted.
// The zero value is BySourceOrder.
type Strategy[T any] struct {
	kind  StrategyKind
	index IndexFunc[T]
}

// AppendAtEnd inserts every unmatched item at the end of the target as it stands at
// that moment, so consecutive inserts keep their source order.
func AppendAtEnd[T any]() Strategy[T] {
	return Strategy[T]{kind: KindAppendAtEnd}
}

// BySourceOrder inserts every unmatched item at its position in the source.
func BySourceOrder[T any]() Strategy[T] {
	return Strategy[T]{kind: KindBySourceOrder}
}

// CustomIndex inserts every unmatched item where fn says.
func CustomIndex[T any](fn IndexFunc[T]) Strategy[T] {
	return Strategy[T]{kind: KindCustomIndex, index: fn}
}

// StrategyOf builds the strategy for a configurable kind.
func StrategyOf[T any](kind StrategyKind) (Strategy[T], error) {
	switch kind {
	case KindBySourceOrder:
		return BySourceOrder[T](), nil
	case KindAppendAtEnd:
		return AppendAtEnd[T](), nil
	default:
		return Strategy[T]{}, NewArgumentError("strategy", fmt.Sprintf("%s strategy needs an index function", kind))
	}
}

// Kind reports which strategy this is.
func (s Strategy[T]) Kind() StrategyKind {
	return s.kind
}

// DuplicatePolicy names how identifier collisions among surviving target items resolve.
type DuplicatePolicy int

const (
	// LastWins keeps the position of the last surviving occurrence of an identifier.
	// Source items with that identifier are written there; earlier occurrences stay
	// untouched in the target.
	LastWins DuplicatePolicy = iota
)

// String returns the policy name.
func (p DuplicatePolicy) String() string {
	if p == LastWins {
		return "last_wins"
	}
	return fmt.Sprintf("DuplicatePolicy(%d)", int(p))
}

// SelectionPolicy controls selection indices outside the pre-call target.
type SelectionPolicy int

const (
	// RejectOutOfRange fails the call before any mutation.
	RejectOutOfRange SelectionPolicy = iota
	// IgnoreOutOfRange drops such indices from the new selection.
	IgnoreOutOfRange
)

// Observer is told about every change Reconcile makes to the target.
type Observer[T any] interface {
	// Deleted is called for a removed item with its position in the original target.
	Deleted(item T, from int)
	// Updated is called when next replaces previous at position at.
	Updated(previous, next T, at int)
	// Inserted is called after item was inserted at position at.
	Inserted(item T, at int)
}

// Options tunes a reconciliation. The zero value is source-order insertion,
// last-wins duplicates and strict selection bounds.
type Options[T any] struct {
	Strategy   Strategy[T]
	Duplicates DuplicatePolicy
	Selection  SelectionPolicy
	// Observer is optional.
	Observer Observer[T]
}

// Result is the outcome of a reconciliation.
type Result struct {
	// Selection holds positions in the mutated target, in the relative order the
	// selected items had before the call. The first one is the primary selection.
	// Empty means nothing selected survived.
	Selection []int `json:"selection"`

	// Deleted counts removed target items.
	Deleted int `json:"deleted"`

	// Updated counts in-place replacements.
	Updated int `json:"updated"`

	// Inserted counts source items added to the target.
	Inserted int `json:"inserted"`
}

// Empty reports whether no selection survived.
func (r Result) Empty() bool {
	return len(r.Selection) == 0
}

// Primary returns the primary selected position.
func (r Result) Primary() (int, bool) {
	if len(r.Selection) == 0 {
		return 0, false
	}
	return r.Selection[0], true
}

// Secondary returns the remaining selected positions in order. It is never nil.
func (r Result) Secondary() []int {
	if len(r.Selection) < 2 {
		return []int{}
	}
	return r.Selection[1:]
}

// Changed reports whether the target was structurally or element-wise touched.
func (r Result) Changed() bool {
	return r.Deleted > 0 || r.Updated > 0 || r.Inserted > 0
}
