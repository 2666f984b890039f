package depqueue

// Builder is a non-thread-safe fluent accumulator that composes an
// item's name/value/provides/requires before calling Queue.Enqueue. Each
// Builder is used by one producer at a time; separate Builder instances
// over the same Queue may be used concurrently because contention only
// happens inside the terminal Enqueue call (spec.md §4.5).
//
// Builder is the one "external collaborator" spec.md calls out
// explicitly (a "trivial state holder"); it is built in the teacher's
// economical style — a handful of chainable setters and one terminal
// method, nothing more.
type Builder struct {
	queue    *Queue
	name     string
	hasName  bool
	value    any
	provides []string
	requires []string
}

// Name sets the item's name.
func (b *Builder) Name(name string) *Builder {
	b.name = name
	b.hasName = true
	return b
}

// Value sets the item's opaque payload.
func (b *Builder) Value(value any) *Builder {
	b.value = value
	return b
}

// Provide appends names to the item's provides set, matching
// set.Set[T].Add's variadic idiom from the teacher.
func (b *Builder) Provide(names ...string) *Builder {
	b.provides = append(b.provides, names...)
	return b
}

// Require appends names to the item's requires set.
func (b *Builder) Require(names ...string) *Builder {
	b.requires = append(b.requires, names...)
	return b
}

// Enqueue submits the accumulated name/value/provides/requires to the
// bound Queue, returning ErrInvalidState if Name was never called.
func (b *Builder) Enqueue() (*Item, error) {
	if !b.hasName {
		return nil, ErrInvalidState
	}
	return b.queue.Enqueue(b.name, b.value, b.provides, b.requires)
}
