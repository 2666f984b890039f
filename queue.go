/*
Package depqueue implements a dependency-ordered work queue: items
carrying named provides/requires topic sets are released to consumers
only after every item providing a prerequisite topic has been dequeued
and marked complete.

It generalizes github.com/lemon-mint/go-datastructures's queue.Queue[T] —
a mutex-guarded slice of items with channel-based wakeup for blocked
Gets — into a bipartite item/topic graph whose ready set is exactly the
items with no outstanding requirements, using the monitor package in
place of the teacher's inlined waiters/sema mechanism.
*/
package depqueue

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/taskgraph/depqueue/future"
	"github.com/taskgraph/depqueue/monitor"
	"github.com/taskgraph/depqueue/pqueue"
)

// defaultPollInterval is the periodic re-poll bound inside Dequeue's
// wait loop, ensuring an accept predicate that depends on external state
// is eventually reevaluated even absent a pulse (spec.md §4.5, §9).
const defaultPollInterval = time.Second

// Option configures a Queue at construction time.
type Option func(*Queue)

// WithComparer installs a custom name Comparer, overriding the default
// exact-byte-equal policy.
func WithComparer(c Comparer) Option {
	return func(q *Queue) { q.comparer = c }
}

// WithCaseInsensitiveNames installs a case-folding Comparer, the
// concrete instance of the "configurable case policy" spec.md §3 calls
// for.
func WithCaseInsensitiveNames() Option {
	return WithComparer(caseFoldComparer{})
}

// WithLogger installs a monitor.Logger that receives best-effort
// diagnostic events for wait/pulse activity. A nil logger (the default)
// disables this; see SPEC_FULL.md's Ambient Stack section for why the
// core itself never imports a concrete logging library.
func WithLogger(l monitor.Logger) Option {
	return func(q *Queue) { q.logger = l }
}

// WithPollInterval overrides the periodic re-poll bound used while
// Dequeue waits for a ready item. Must be positive; implementations must
// not make it zero (busy-wait) or allow blocking forever between
// reevaluations (spec.md §9).
func WithPollInterval(d time.Duration) Option {
	return func(q *Queue) {
		if d > 0 {
			q.pollInterval = d
		}
	}
}

// Queue is the dependency-ordered work queue core. The zero value is
// not usable; construct with New.
type Queue struct {
	id           uuid.UUID
	mon          *monitor.Monitor
	logger       monitor.Logger
	comparer     Comparer
	pollInterval time.Duration

	topics  map[string]*Topic
	ready   pqueue.PredicateQueue[*Item]
	drained *future.Signal

	valid    bool
	ending   bool
	disposed bool
}

// New constructs a Queue, applying the given Options in order.
func New(opts ...Option) *Queue {
	q := &Queue{
		id:           uuid.New(),
		comparer:     exactComparer{},
		pollInterval: defaultPollInterval,
		topics:       make(map[string]*Topic),
		drained:      future.New(),
	}
	for _, opt := range opts {
		opt(q)
	}
	q.mon = monitor.New(q.logger)
	q.checkDrained()
	return q
}

// ID returns the Queue's identity, assigned once at construction, used
// to correlate log lines and diagnostics across multiple concurrently
// running queues (SPEC_FULL.md §4).
func (q *Queue) ID() uuid.UUID { return q.id }

// Done returns a channel that closes once the queue is drained: the
// topic graph has emptied, or the queue has been marked ending. It is
// adapted from github.com/lemon-mint/go-datastructures's
// futures.Selectable[T], generalized into future.Signal (SPEC_FULL.md
// §6), so a consumer can select on queue exhaustion alongside other
// channels instead of polling Dequeue. A new queue starts drained; an
// Enqueue onto a drained queue that is not ending re-arms the signal, and
// later calls return the new, open channel. Done takes the monitor
// briefly, so it blocks while a View is held.
func (q *Queue) Done() <-chan struct{} {
	release := q.mon.Acquire()
	defer release()
	return q.drained.Done()
}

// checkDrained fills the drained signal when the ending flag is set or
// the topic graph is empty, the states in which Dequeue returns done.
// Must be called while holding the monitor.
func (q *Queue) checkDrained() {
	if q.ending || len(q.topics) == 0 {
		q.drained.Fill()
	}
}

// Enqueue adds a new Item with the given name, opaque value, and
// provides/requires topic names (name is implicitly added to provides).
// It fails with ErrDisposed on a disposed queue, ErrEnding on an ending
// queue, and ErrInvalidArgument on empty/invalid names. A successful
// Enqueue clears the valid flag and pulses all waiters.
func (q *Queue) Enqueue(name string, value any, provides, requires []string) (*Item, error) {
	release := q.mon.Acquire()
	defer release()

	if q.disposed {
		return nil, ErrDisposed
	}
	if q.ending {
		return nil, ErrEnding
	}

	name = q.comparer.Normalize(name)
	provides = q.normalizeAll(provides)
	requires = q.normalizeAll(requires)

	it, err := newItem(name, value, provides, requires)
	if err != nil {
		return nil, err
	}

	for _, n := range it.Provides() {
		t := q.getOrCreateTopic(n)
		t.addProvidedBy(it)
	}
	for _, n := range it.Requires() {
		t := q.getOrCreateTopic(n)
		t.addRequiredBy(it)
	}
	if it.ready() {
		q.ready.Enqueue(it)
	}
	if q.drained.Fulfilled() {
		q.drained = future.New()
	}

	q.valid = false
	q.logEvent("depqueue.enqueue", map[string]any{"item": it.name, "queue": q.id.String()})
	q.mon.PulseAll()
	return it, nil
}

// CreateBuilder returns a fluent, single-producer Builder bound to this
// Queue. Multiple Builders over the same Queue are safe to use
// concurrently because only the terminal call to Queue.Enqueue contends
// for the monitor (spec.md §4.5, §5).
func (q *Queue) CreateBuilder() *Builder {
	return &Builder{queue: q}
}

// Validate walks every topic, reporting an UnprovidedTopicError for any
// topic no enqueued item provides, then runs cycle detection over the
// remainder. It sets the valid flag iff the returned list is empty. Must
// not be called on a disposed queue.
func (q *Queue) Validate() (ValidationErrors, error) {
	release := q.mon.Acquire()
	defer release()

	if q.disposed {
		return nil, ErrDisposed
	}

	errs := q.validateLocked()
	q.valid = len(errs) == 0
	q.logEvent("depqueue.validate", map[string]any{"errors": len(errs), "queue": q.id.String()})
	return errs, nil
}

// Dequeue blocks (subject to accept and ctx) until a ready item is
// available, the queue is exhausted, or ctx is cancelled. accept may be
// nil to accept any ready item. It requires the valid flag to be set,
// returning ErrInvalidState otherwise. done is true when there are no
// more items to deliver (queue ending or topic graph empty); in that
// case item is nil and err is nil.
func (q *Queue) Dequeue(ctx context.Context, accept func(value any) bool) (item *Item, done bool, err error) {
	release, err := q.mon.AcquireCtx(ctx)
	if err != nil {
		return nil, false, err
	}
	defer release()

	if q.disposed {
		return nil, false, ErrDisposed
	}
	if !q.valid {
		return nil, false, ErrInvalidState
	}

	for {
		if q.ending {
			return nil, true, nil
		}
		if len(q.topics) == 0 {
			return nil, true, nil
		}
		var ok bool
		if accept == nil {
			item, ok = q.ready.TryDequeueWhere(nil)
		} else {
			item, ok = q.ready.TryDequeueWhere(func(it *Item) bool { return accept(it.Value()) })
		}
		if ok {
			q.logEvent("depqueue.dequeue", map[string]any{"item": item.name, "queue": q.id.String()})
			return item, false, nil
		}

		if werr := q.mon.ReleaseUntilPulseCtx(ctx, q.pollInterval); werr != nil {
			return nil, false, werr
		}
		// Reevaluate: disposed/ending state, or the predicate, may have
		// changed while the lock was released.
		if q.disposed {
			return nil, false, ErrDisposed
		}
	}
}

// Complete advances the graph after a consumer finishes processing
// item: item is removed from the provided-by list of every topic it
// provides, and once a topic's provided-by list is empty — every
// provider of that topic has completed, not just this one — every
// dependent item's requires set is updated, moving any dependent whose
// requires set becomes empty as a result to the ready queue. Complete
// tolerates items never enqueued in this queue (their topics are simply
// absent) and items not currently dequeued (idempotent-safe, spec.md
// §4.5).
func (q *Queue) Complete(item *Item) error {
	release := q.mon.Acquire()
	defer release()

	if q.disposed {
		return ErrDisposed
	}
	if item == nil {
		return nil
	}

	pulseWorthy := false
	for _, name := range item.Provides() {
		t, ok := q.topics[name]
		if !ok {
			continue
		}
		t.removeProvidedBy(item)

		// Dependents are only notified once every provider of this topic
		// has completed (spec.md glossary: "An item requiring topic t
		// waits until every item providing t is complete") — not on the
		// first provider to finish.
		if t.satisfied() {
			for _, dependent := range t.RequiredBy() {
				dependent.RemoveRequires(name)
				t.removeRequiredBy(dependent)
				if dependent.ready() {
					q.ready.Enqueue(dependent)
					pulseWorthy = true
				}
			}
		}

		if t.empty() {
			delete(q.topics, name)
			if len(q.topics) == 0 {
				pulseWorthy = true
			}
		}
	}

	q.logEvent("depqueue.complete", map[string]any{"item": item.name, "queue": q.id.String()})
	q.checkDrained()
	if pulseWorthy {
		q.mon.PulseAll()
	}
	return nil
}

// Clear drops all items, topics, and ready entries. The valid flag is
// left unchanged (an empty, previously-valid graph is still trivially
// valid). Pulses all waiters so any blocked Dequeue observes the newly
// empty topic map and returns done.
func (q *Queue) Clear() error {
	release := q.mon.Acquire()
	defer release()

	if q.disposed {
		return ErrDisposed
	}
	q.topics = make(map[string]*Topic)
	q.ready.Clear()
	q.logEvent("depqueue.clear", map[string]any{"queue": q.id.String()})
	q.checkDrained()
	q.mon.PulseAll()
	return nil
}

// SetEnding marks the queue as ending: subsequent Enqueue calls fail
// with ErrEnding, and Dequeue returns done immediately, even if ready
// items remain.
func (q *Queue) SetEnding() error {
	release := q.mon.Acquire()
	defer release()

	if q.disposed {
		return ErrDisposed
	}
	q.ending = true
	q.logEvent("depqueue.set_ending", map[string]any{"queue": q.id.String()})
	q.checkDrained()
	q.mon.PulseAll()
	return nil
}

// Dispose releases the monitor; every subsequent operation fails with
// ErrDisposed. Not safe to call concurrently with any other operation.
func (q *Queue) Dispose() {
	release := q.mon.Acquire()
	defer release()
	q.disposed = true
	q.topics = nil
	q.ready.Clear()
	q.checkDrained()
}

// Stats is a cheap, read-only counter snapshot (SPEC_FULL.md §6): not an
// observability/metrics system, just the scale of accessor the teacher's
// Queue[T].Len()/Empty() and Set[T].Len() already provide.
type Stats struct {
	Topics int
	Ready  int
	Valid  bool
	Ending bool
}

// Stats returns a point-in-time snapshot of the queue's size and
// lifecycle flags.
func (q *Queue) Stats() (Stats, error) {
	release := q.mon.Acquire()
	defer release()
	if q.disposed {
		return Stats{}, ErrDisposed
	}
	return Stats{
		Topics: len(q.topics),
		Ready:  q.ready.Len(),
		Valid:  q.valid,
		Ending: q.ending,
	}, nil
}

func (q *Queue) getOrCreateTopic(name string) *Topic {
	if t, ok := q.topics[name]; ok {
		return t
	}
	t, _ := newTopic(name) // name already validated non-empty by Item construction
	q.topics[name] = t
	return t
}

func (q *Queue) normalizeAll(names []string) []string {
	if names == nil {
		return nil
	}
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = q.comparer.Normalize(n)
	}
	return out
}

func (q *Queue) logEvent(name string, fields map[string]any) {
	if q.logger != nil {
		q.logger.Event(name, fields)
	}
}
