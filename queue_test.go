package depqueue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustValidate(t *testing.T, q *Queue) {
	t.Helper()
	errs, err := q.Validate()
	require.NoError(t, err)
	require.Empty(t, errs)
}

func dequeueNow(t *testing.T, q *Queue, accept func(any) bool) (*Item, bool) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	item, done, err := q.Dequeue(ctx, accept)
	require.NoError(t, err)
	return item, done
}

// Scenario 1: Simple chain.
func TestSimpleChain(t *testing.T) {
	q := New()
	_, err := q.Enqueue("a", nil, nil, nil)
	require.NoError(t, err)
	_, err = q.Enqueue("b", nil, nil, []string{"a"})
	require.NoError(t, err)
	mustValidate(t, q)

	item, done := dequeueNow(t, q, nil)
	require.False(t, done)
	assert.Equal(t, "a", item.Name())
	require.NoError(t, q.Complete(item))

	item, done = dequeueNow(t, q, nil)
	require.False(t, done)
	assert.Equal(t, "b", item.Name())
	require.NoError(t, q.Complete(item))

	_, done = dequeueNow(t, q, nil)
	assert.True(t, done)
}

// Scenario 2: Fan-in.
func TestFanIn(t *testing.T) {
	q := New()
	_, err := q.Enqueue("x", nil, nil, []string{"b", "c"})
	require.NoError(t, err)
	_, err = q.Enqueue("y", nil, []string{"b"}, nil)
	require.NoError(t, err)
	_, err = q.Enqueue("z", nil, []string{"c"}, nil)
	require.NoError(t, err)
	mustValidate(t, q)

	first, done := dequeueNow(t, q, nil)
	require.False(t, done)
	second, done := dequeueNow(t, q, nil)
	require.False(t, done)

	names := map[string]bool{first.Name(): true, second.Name(): true}
	assert.True(t, names["y"] && names["z"])

	require.NoError(t, q.Complete(first))
	require.NoError(t, q.Complete(second))

	item, done := dequeueNow(t, q, nil)
	require.False(t, done)
	assert.Equal(t, "x", item.Name())
}

// Scenario 3: Duplicate providers.
func TestDuplicateProviders(t *testing.T) {
	q := New()
	_, err := q.Enqueue("a", nil, nil, []string{"b"})
	require.NoError(t, err)
	_, err = q.Enqueue("b0", nil, []string{"b"}, nil)
	require.NoError(t, err)
	_, err = q.Enqueue("b1", nil, []string{"b"}, nil)
	require.NoError(t, err)
	mustValidate(t, q)

	b0, done := dequeueNow(t, q, nil)
	require.False(t, done)
	assert.Equal(t, "b0", b0.Name())

	b1, done := dequeueNow(t, q, nil)
	require.False(t, done)
	assert.Equal(t, "b1", b1.Name())

	require.NoError(t, q.Complete(b0))

	// a is not yet ready: only b1 is in flight, nothing ready to dequeue
	// without blocking, so use a short timeout and expect none.
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_, _, err = q.Dequeue(ctx, nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, q.Complete(b1))

	item, done := dequeueNow(t, q, nil)
	require.False(t, done)
	assert.Equal(t, "a", item.Name())
}

// Scenario 4: Direct cycle.
func TestDirectCycle(t *testing.T) {
	q := New()
	_, err := q.Enqueue("a", nil, nil, []string{"b"})
	require.NoError(t, err)
	_, err = q.Enqueue("b", nil, nil, []string{"a"})
	require.NoError(t, err)

	errs, err := q.Validate()
	require.NoError(t, err)
	require.Len(t, errs, 1)

	cycleErr, ok := errs[0].(*CycleError)
	require.True(t, ok)
	assert.Equal(t, "b", cycleErr.Requiring)
	assert.Equal(t, "a", cycleErr.Topic)
}

// Scenario 5: Unprovided topic.
func TestUnprovidedTopic(t *testing.T) {
	q := New()
	_, err := q.Enqueue("a", nil, nil, []string{"missing"})
	require.NoError(t, err)

	errs, err := q.Validate()
	require.NoError(t, err)
	require.Len(t, errs, 1)

	unprovided, ok := errs[0].(*UnprovidedTopicError)
	require.True(t, ok)
	assert.Equal(t, "missing", unprovided.Topic)
}

// Scenario 6: Predicate rejection, then acceptance after the re-poll.
func TestPredicateRejectionThenAccept(t *testing.T) {
	q := New(WithPollInterval(50 * time.Millisecond))
	_, err := q.Enqueue("a", 1, nil, nil)
	require.NoError(t, err)
	mustValidate(t, q)

	var calls int
	var mu sync.Mutex
	accept := func(v any) bool {
		mu.Lock()
		defer mu.Unlock()
		calls++
		return calls > 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	start := time.Now()
	item, done, err := q.Dequeue(ctx, accept)
	require.NoError(t, err)
	require.False(t, done)
	assert.Equal(t, "a", item.Name())
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}

func TestDequeue_EmptyValidatedQueueReturnsNoMoreItems(t *testing.T) {
	q := New()
	mustValidate(t, q)
	_, done := dequeueNow(t, q, nil)
	assert.True(t, done)
}

func TestDequeue_RequiresValidFlag(t *testing.T) {
	q := New()
	_, err := q.Enqueue("a", nil, nil, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, _, err = q.Dequeue(ctx, nil)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestEnqueue_InvalidatesPreviousValidate(t *testing.T) {
	q := New()
	_, err := q.Enqueue("a", nil, nil, nil)
	require.NoError(t, err)
	mustValidate(t, q)

	_, err = q.Enqueue("b", nil, nil, []string{"missing"})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, _, err = q.Dequeue(ctx, nil)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestEnqueue_OnEndingQueueFails(t *testing.T) {
	q := New()
	require.NoError(t, q.SetEnding())
	_, err := q.Enqueue("a", nil, nil, nil)
	assert.ErrorIs(t, err, ErrEnding)
}

func TestDequeue_OnEndingQueueReturnsNoMoreItemsImmediately(t *testing.T) {
	q := New()
	_, err := q.Enqueue("a", nil, nil, nil)
	require.NoError(t, err)
	mustValidate(t, q)
	require.NoError(t, q.SetEnding())

	start := time.Now()
	_, done := dequeueNow(t, q, nil)
	assert.True(t, done)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestDisposed_AllOperationsFail(t *testing.T) {
	q := New()
	q.Dispose()

	_, err := q.Enqueue("a", nil, nil, nil)
	assert.ErrorIs(t, err, ErrDisposed)

	_, err = q.Validate()
	assert.ErrorIs(t, err, ErrDisposed)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, _, err = q.Dequeue(ctx, nil)
	assert.ErrorIs(t, err, ErrDisposed)

	err = q.Complete(nil)
	assert.ErrorIs(t, err, ErrDisposed)

	_, err = q.Inspect()
	assert.ErrorIs(t, err, ErrDisposed)
}

func TestComplete_NeverEnqueuedItemIsPermittedNoop(t *testing.T) {
	q := New()
	_, err := q.Enqueue("a", nil, nil, nil)
	require.NoError(t, err)
	mustValidate(t, q)

	foreign, err := newItem("foreign", nil, nil, nil)
	require.NoError(t, err)
	assert.NoError(t, q.Complete(foreign))

	item, done := dequeueNow(t, q, nil)
	require.False(t, done)
	assert.Equal(t, "a", item.Name())
}

func TestComplete_AlreadyCompletedIsIdempotentSafe(t *testing.T) {
	q := New()
	_, err := q.Enqueue("a", nil, nil, nil)
	require.NoError(t, err)
	mustValidate(t, q)

	item, done := dequeueNow(t, q, nil)
	require.False(t, done)
	require.NoError(t, q.Complete(item))
	assert.NoError(t, q.Complete(item))
}

func TestClear_DropsEverything(t *testing.T) {
	q := New()
	_, err := q.Enqueue("a", nil, nil, nil)
	require.NoError(t, err)
	mustValidate(t, q)

	require.NoError(t, q.Clear())
	stats, err := q.Stats()
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Topics)
	assert.Equal(t, 0, stats.Ready)
}

func TestEnqueue_DuplicateNamesCoalesce(t *testing.T) {
	q := New()
	item, err := q.Enqueue("a", nil, []string{"x", "x"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "x"}, item.Provides())
}

func TestEnqueue_FIFOAmongReadyItems(t *testing.T) {
	q := New()
	_, err := q.Enqueue("first", nil, nil, nil)
	require.NoError(t, err)
	_, err = q.Enqueue("second", nil, nil, nil)
	require.NoError(t, err)
	mustValidate(t, q)

	item, done := dequeueNow(t, q, nil)
	require.False(t, done)
	assert.Equal(t, "first", item.Name())
}

func TestCaseInsensitiveComparer(t *testing.T) {
	q := New(WithCaseInsensitiveNames())
	_, err := q.Enqueue("A", nil, nil, nil)
	require.NoError(t, err)
	_, err = q.Enqueue("b", nil, nil, []string{"a"})
	require.NoError(t, err)
	mustValidate(t, q)

	item, done := dequeueNow(t, q, nil)
	require.False(t, done)
	assert.Equal(t, "a", item.Name())
}

func TestComplete_PropagatesReadiness(t *testing.T) {
	q := New()
	_, err := q.Enqueue("a", nil, nil, nil)
	require.NoError(t, err)
	_, err = q.Enqueue("b", nil, nil, []string{"a"})
	require.NoError(t, err)
	_, err = q.Enqueue("c", nil, nil, []string{"b"})
	require.NoError(t, err)
	mustValidate(t, q)

	a, done := dequeueNow(t, q, nil)
	require.False(t, done)
	require.NoError(t, q.Complete(a))

	b, done := dequeueNow(t, q, nil)
	require.False(t, done)
	assert.Equal(t, "b", b.Name())
	require.NoError(t, q.Complete(b))

	c, done := dequeueNow(t, q, nil)
	require.False(t, done)
	assert.Equal(t, "c", c.Name())
}

func TestConcurrentWorkersDrainGraph(t *testing.T) {
	q := New()
	_, err := q.Enqueue("a", nil, nil, nil)
	require.NoError(t, err)
	_, err = q.Enqueue("b", nil, nil, nil)
	require.NoError(t, err)
	_, err = q.Enqueue("c", nil, nil, []string{"a", "b"})
	require.NoError(t, err)
	mustValidate(t, q)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var wg sync.WaitGroup
	var mu sync.Mutex
	var processed []string

	worker := func() {
		defer wg.Done()
		for {
			item, done, err := q.Dequeue(ctx, nil)
			require.NoError(t, err)
			if done {
				return
			}
			mu.Lock()
			processed = append(processed, item.Name())
			mu.Unlock()
			require.NoError(t, q.Complete(item))
		}
	}

	wg.Add(3)
	go worker()
	go worker()
	go worker()
	wg.Wait()

	assert.ElementsMatch(t, []string{"a", "b", "c"}, processed)
	// c must come after both a and b.
	cIndex, aIndex, bIndex := -1, -1, -1
	for i, name := range processed {
		switch name {
		case "c":
			cIndex = i
		case "a":
			aIndex = i
		case "b":
			bIndex = i
		}
	}
	assert.Greater(t, cIndex, aIndex)
	assert.Greater(t, cIndex, bIndex)
}
