/*
Package pqueue provides PredicateQueue, an insertion-ordered FIFO
container over which a first-match-wins removal scan runs in insertion
order.

It generalizes the unexported items[T] helper from
github.com/lemon-mint/go-datastructures's queue package (get/peek/
getUntil operating on a plain slice) into an exported type whose removal
walk can skip non-matching elements rather than stopping at the first
one, matching the "first element the predicate accepts, in FIFO order;
non-matching elements remain at their positions" contract a dependency
queue's ready-set needs.

PredicateQueue is not internally synchronized, exactly as the teacher's
items[T] is not: callers that need thread safety hold their own lock (see
the depqueue package, which guards a PredicateQueue[*Item] with a
monitor.Monitor).
*/
package pqueue

// PredicateQueue is a FIFO sequence of T. The zero value is an empty,
// ready-to-use queue.
type PredicateQueue[T any] struct {
	items []T
}

// Enqueue appends v to the back of the queue.
func (q *PredicateQueue[T]) Enqueue(v T) {
	q.items = append(q.items, v)
}

// Peek returns the front element without removing it.
func (q *PredicateQueue[T]) Peek() (T, bool) {
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	return q.items[0], true
}

// TryDequeueWhere walks the queue in FIFO order and removes the first
// element for which accept returns true, returning it. Elements before
// the match that accept rejected remain in place, in their original
// order. If accept is nil, the front element (if any) is removed and
// returned, matching unconditional dequeue semantics.
func (q *PredicateQueue[T]) TryDequeueWhere(accept func(T) bool) (T, bool) {
	var zero T
	for i, v := range q.items {
		if accept != nil && !accept(v) {
			continue
		}
		q.items = append(q.items[:i:i], q.items[i+1:]...)
		return v, true
	}
	return zero, false
}

// Len reports the number of live elements.
func (q *PredicateQueue[T]) Len() int {
	return len(q.items)
}

// Clear removes every element.
func (q *PredicateQueue[T]) Clear() {
	q.items = nil
}

// All returns a range-over-func iterator yielding live elements in FIFO
// order. Structural mutation of the queue during iteration (via the
// same goroutine, under whatever lock the caller holds) is not
// supported, matching the "tolerates no structural mutation during
// iteration" contract of a single-reader forward iterator.
func (q *PredicateQueue[T]) All(yield func(T) bool) {
	for _, v := range q.items {
		if !yield(v) {
			return
		}
	}
}
