package depqueue

import (
	"fmt"

	"github.com/taskgraph/depqueue/set"
)

// Item is a named unit of work: a payload plus the topic names it
// provides and requires. An Item always provides its own name. It
// generalizes the bare T values held in
// github.com/lemon-mint/go-datastructures's queue.Queue[T] into a record
// with graph metadata attached, using set.Set[string] (itself adapted
// from the teacher's set.Set[T]) for the provides/requires bookkeeping.
type Item struct {
	name     string
	value    any
	provides set.Set[string]
	requires set.Set[string]
}

// newItem constructs an Item with name always present in provides, and
// the given provides/requires lists added via AddProvides/AddRequires
// (so duplicates coalesce and requires-self is discarded, same as any
// other mutation).
func newItem(name string, value any, provides, requires []string) (*Item, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: item name must be non-empty", ErrInvalidArgument)
	}
	it := &Item{name: name, value: value}
	if err := it.AddProvides(name); err != nil {
		return nil, err
	}
	if err := it.AddProvides(provides...); err != nil {
		return nil, err
	}
	if err := it.AddRequires(requires...); err != nil {
		return nil, err
	}
	return it, nil
}

// Name returns the item's name.
func (it *Item) Name() string { return it.name }

// Value returns the item's opaque payload.
func (it *Item) Value() any { return it.value }

// Provides returns a snapshot of the provides set's names, in insertion
// order.
func (it *Item) Provides() []string {
	return it.provides.Ordered()
}

// Requires returns a snapshot of the requires set's names, in insertion
// order.
func (it *Item) Requires() []string {
	return it.requires.Ordered()
}

// AddProvides adds names to the provides set. Adding a name present in
// requires removes it from requires first (provides and requires are
// disjoint, spec.md §4.3). Every name must be non-empty. Duplicate adds
// are idempotent.
func (it *Item) AddProvides(names ...string) error {
	for _, n := range names {
		if n == "" {
			return fmt.Errorf("%w: provides name must be non-empty", ErrInvalidArgument)
		}
	}
	for _, n := range names {
		if it.requires.Exists(n) {
			it.requires.Remove(n)
		}
		it.provides.Add(n)
	}
	return nil
}

// AddRequires adds names to the requires set. Adding a name present in
// provides removes it from provides first, unless the name equals the
// item's own name, in which case the add is silently discarded — an
// item never requires itself. Every name must be non-empty. Duplicate
// adds are idempotent.
func (it *Item) AddRequires(names ...string) error {
	for _, n := range names {
		if n == "" {
			return fmt.Errorf("%w: requires name must be non-empty", ErrInvalidArgument)
		}
	}
	for _, n := range names {
		if n == it.name {
			continue
		}
		if it.provides.Exists(n) {
			it.provides.Remove(n)
		}
		it.requires.Add(n)
	}
	return nil
}

// RemoveRequires removes name from the requires set. Removing a name
// not present is a no-op.
func (it *Item) RemoveRequires(name string) {
	it.requires.Remove(name)
}

// ready reports whether the item's requires set is empty.
func (it *Item) ready() bool {
	return it.requires.Len() == 0
}

// String renders the item as "name { value-or-literal-null }", matching
// spec.md §4.3's rendering contract.
func (it *Item) String() string {
	if it.value == nil {
		return fmt.Sprintf("%s { null }", it.name)
	}
	return fmt.Sprintf("%s { %v }", it.name, it.value)
}
