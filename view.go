package depqueue

import "context"

// View is a read-only, locked projection of a Queue's internal
// collections. Acquiring a View holds the Queue's monitor for the
// View's entire lifetime — exactly like holding a mutex across a scoped
// lock guard — so every other Queue operation blocks until the View is
// disposed. It's the "thin locked wrapper" spec.md calls for (§4.5,
// §9): no copying beyond what Topics/Ready already return as snapshot
// slices.
type View struct {
	queue     *Queue
	release   func()
	disposed  bool
}

// Inspect acquires the monitor and returns a View. Callers must call
// View.Dispose when finished to release the lock.
func (q *Queue) Inspect() (*View, error) {
	release := q.mon.Acquire()
	if q.disposed {
		release()
		return nil, ErrDisposed
	}
	return &View{queue: q, release: release}, nil
}

// InspectCtx is the cancellable variant of Inspect.
func (q *Queue) InspectCtx(ctx context.Context) (*View, error) {
	release, err := q.mon.AcquireCtx(ctx)
	if err != nil {
		return nil, err
	}
	if q.disposed {
		release()
		return nil, ErrDisposed
	}
	return &View{queue: q, release: release}, nil
}

// Topics returns the current topics, in no particular order (Go
// map enumeration order), or ErrLockReleased if the View has been
// disposed.
func (v *View) Topics() ([]*Topic, error) {
	if v.disposed {
		return nil, ErrLockReleased
	}
	out := make([]*Topic, 0, len(v.queue.topics))
	for _, t := range v.queue.topics {
		out = append(out, t)
	}
	return out, nil
}

// Topic looks up a single topic by name, or ErrLockReleased if the View
// has been disposed. Returns (nil, nil) if no such topic exists.
func (v *View) Topic(name string) (*Topic, error) {
	if v.disposed {
		return nil, ErrLockReleased
	}
	return v.queue.topics[v.queue.comparer.Normalize(name)], nil
}

// Ready returns the items currently in the ready queue, in FIFO order,
// or ErrLockReleased if the View has been disposed.
func (v *View) Ready() ([]*Item, error) {
	if v.disposed {
		return nil, ErrLockReleased
	}
	out := make([]*Item, 0, v.queue.ready.Len())
	v.queue.ready.All(func(it *Item) bool {
		out = append(out, it)
		return true
	})
	return out, nil
}

// Stats returns the queue's size and lifecycle flags, or ErrLockReleased
// if the View has been disposed.
func (v *View) Stats() (Stats, error) {
	if v.disposed {
		return Stats{}, ErrLockReleased
	}
	return Stats{
		Topics: len(v.queue.topics),
		Ready:  v.queue.ready.Len(),
		Valid:  v.queue.valid,
		Ending: v.queue.ending,
	}, nil
}

// Snapshot exports a point-in-time, serializable projection of the
// graph (SPEC_FULL.md §5.5) — topic/item names and edges, never the
// opaque payload — for diagnostics. A Snapshot is a copy, not queue
// state: nothing reloads one back into a Queue, so this does not
// reintroduce the persistence non-goal.
func (v *View) Snapshot() (Snapshot, error) {
	if v.disposed {
		return Snapshot{}, ErrLockReleased
	}
	snap := Snapshot{
		Valid:  v.queue.valid,
		Ending: v.queue.ending,
	}
	for name, t := range v.queue.topics {
		ts := TopicSnapshot{Name: name}
		for _, it := range t.providedBy {
			ts.ProvidedBy = append(ts.ProvidedBy, it.Name())
		}
		for _, it := range t.requiredBy {
			ts.RequiredBy = append(ts.RequiredBy, it.Name())
		}
		snap.Topics = append(snap.Topics, ts)
	}
	v.queue.ready.All(func(it *Item) bool {
		snap.Ready = append(snap.Ready, it.Name())
		return true
	})
	return snap, nil
}

// Dispose releases the monitor lock held since Inspect/InspectCtx.
// Every View accessor fails with ErrLockReleased after Dispose. Calling
// Dispose more than once is a no-op.
func (v *View) Dispose() {
	if v.disposed {
		return
	}
	v.disposed = true
	v.release()
}
