/*
Package set provides Set, an insertion-ordered set over comparable
values.

It generalizes github.com/lemon-mint/go-datastructures's set.Set[T]: the
teacher keeps a map plus a "flattened" slice that is recomputed lazily
and invalidated (set to nil) on every mutation — a cache, not a source
of truth, since the teacher never needs a stable order. depqueue's item
provides/requires need exactly the opposite: a stable, observable
insertion order (cycle-detection's tie-breaks are a stable property,
spec.md §4.6), so here the order slice IS authoritative, maintained
incrementally rather than recomputed on read.

Set is not internally synchronized — unlike the teacher's Set, which
wraps every method in a sync.RWMutex. depqueue always mutates an Item's
provides/requires while already holding the owning Queue's monitor, so
a second lock here would only add contention without adding safety.
*/
package set

// Set is an insertion-ordered set of comparable values. The zero value
// is an empty, ready-to-use set.
type Set[T comparable] struct {
	index map[T]int // value -> position in order
	order []T
}

// Add inserts values into the set. Duplicate adds are idempotent and
// preserve the original insertion position.
func (s *Set[T]) Add(values ...T) {
	if s.index == nil {
		s.index = make(map[T]int, len(values))
	}
	for _, v := range values {
		if _, ok := s.index[v]; ok {
			continue
		}
		s.index[v] = len(s.order)
		s.order = append(s.order, v)
	}
}

// Remove deletes values from the set. Removing a value not present is a
// no-op.
func (s *Set[T]) Remove(values ...T) {
	for _, v := range values {
		pos, ok := s.index[v]
		if !ok {
			continue
		}
		delete(s.index, v)
		s.order = append(s.order[:pos:pos], s.order[pos+1:]...)
		for i := pos; i < len(s.order); i++ {
			s.index[s.order[i]] = i
		}
	}
}

// Exists reports whether value is a member of the set.
func (s *Set[T]) Exists(value T) bool {
	_, ok := s.index[value]
	return ok
}

// Len returns the number of members.
func (s *Set[T]) Len() int {
	return len(s.order)
}

// Ordered returns the set's members in insertion order. The returned
// slice is a copy; mutating it does not affect the set.
func (s *Set[T]) Ordered() []T {
	out := make([]T, len(s.order))
	copy(out, s.order)
	return out
}

// Clear removes every member.
func (s *Set[T]) Clear() {
	s.index = nil
	s.order = nil
}

// All returns a bool indicating if all of the supplied values are
// members of the set, matching the teacher's Set.All helper.
func (s *Set[T]) All(values ...T) bool {
	for _, v := range values {
		if !s.Exists(v) {
			return false
		}
	}
	return true
}
