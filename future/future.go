/*
Package future provides Signal, a one-shot completion future with a
channel exposed for external select, adapted from
github.com/lemon-mint/go-datastructures's futures.Selectable[T].

The teacher's Selectable carries a value and an error, fulfilled once by
Fill. depqueue's use (a Queue's "drained" signal, see Queue.Done) never
has a value or an error to carry — only the fact of completion — so
Signal drops the value/error plumbing but keeps the same lazy
channel-allocation and atomic-fast-path structure: Done returns a
pre-closed channel once fulfilled without taking the lock, exactly as
Selectable.WaitChan does.
*/
package future

import (
	"sync"
	"sync/atomic"
)

// Signal is a one-shot completion future. The zero value is valid and
// unfulfilled.
type Signal struct {
	m      sync.Mutex
	wait   chan struct{}
	filled atomic.Bool
}

// New returns a fresh, unfulfilled Signal.
func New() *Signal {
	return &Signal{}
}

func (f *Signal) wchan() <-chan struct{} {
	f.m.Lock()
	if f.wait == nil {
		f.wait = make(chan struct{})
	}
	ch := f.wait
	f.m.Unlock()
	return ch
}

// Done returns a channel that is closed once the Signal is fulfilled.
// Safe to call before or after Fill, and from multiple goroutines.
func (f *Signal) Done() <-chan struct{} {
	if f.filled.Load() {
		return closedChan
	}
	return f.wchan()
}

// Fulfilled reports whether Fill has been called.
func (f *Signal) Fulfilled() bool {
	return f.filled.Load()
}

// Fill fulfills the Signal if it has not already been fulfilled.
// Subsequent calls are no-ops, matching Selectable.Fill's "if not
// already fulfilled" guard.
func (f *Signal) Fill() {
	f.m.Lock()
	defer f.m.Unlock()
	if f.filled.Load() {
		return
	}
	f.filled.Store(true)
	w := f.wait
	f.wait = closedChan
	if w != nil {
		close(w)
	}
}

var closedChan = make(chan struct{})

func init() {
	close(closedChan)
}
