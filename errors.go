package depqueue

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmer-error and lifecycle conditions. These
// are raised immediately and never retried by the core, matching the
// style of github.com/lemon-mint/go-datastructures's queue package
// (ErrDisposed, ErrTimeout, ErrEmptyQueue compared with errors.Is).
var (
	// ErrInvalidArgument is returned when a name is empty, or a
	// collection of names contains an empty or otherwise invalid entry.
	ErrInvalidArgument = errors.New("depqueue: invalid argument")

	// ErrDisposed is returned by any operation on a disposed Queue.
	ErrDisposed = errors.New("depqueue: queue disposed")

	// ErrEnding is returned by Enqueue on a queue that has been told to
	// end via Queue.SetEnding.
	ErrEnding = errors.New("depqueue: queue is ending")

	// ErrInvalidState is returned by Dequeue/DequeueCtx when the queue's
	// valid flag is not set (Validate has not been called successfully
	// since the last mutating Enqueue), and by a Builder with no
	// current entry.
	ErrInvalidState = errors.New("depqueue: queue has not been validated")

	// ErrLockReleased is returned by View accessors called after the
	// View has been disposed.
	ErrLockReleased = errors.New("depqueue: view lock already released")
)

// ErrNoMoreItems is not a failure: it's the sentinel Dequeue/DequeueCtx
// return, as a distinguished value rather than an error, when the queue
// is ending or exhausted. It's declared here only so callers can
// recognize it with errors.Is against a return channel if they choose to
// wrap it; Dequeue itself never returns it, reporting a (nil, true, nil) "done" signal
// rather than as an error — see Queue.Dequeue.
var ErrNoMoreItems = errors.New("depqueue: no more items")

// CycleError reports a dependency cycle found during Validate. It names
// the item that carried the back edge (Requiring) and the topic it
// requires that closes the cycle (Topic).
type CycleError struct {
	Requiring string // name of the item whose requires edge closes the cycle
	Topic     string // name of the required topic already mid-traversal
}

func (e *CycleError) Error() string {
	return fmt.Sprintf(
		"The item '%s' cannot require topic '%s' because an item providing that topic already requires item '%s'. The dependency graph does not permit cycles.",
		e.Requiring, e.Topic, e.Requiring,
	)
}

// UnprovidedTopicError reports a topic named in some item's requires set
// for which no enqueued item provides it.
type UnprovidedTopicError struct {
	Topic string
}

func (e *UnprovidedTopicError) Error() string {
	return fmt.Sprintf("The topic '%s' is required but not provided.", e.Topic)
}

// ValidationErrors is the list Validate returns: zero or more
// *CycleError / *UnprovidedTopicError values. A non-nil, non-empty
// ValidationErrors also satisfies the error interface so callers that
// prefer treating validation failure as a single error may do so.
type ValidationErrors []error

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "depqueue: no validation errors"
	}
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}
