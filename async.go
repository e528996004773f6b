// async.go
//
// Sequential asynchronous traversal. Exactly one element's action is in
// flight at a time: the driver pulls an element, hands it to the action
// together with a control handle, and does not pull the next element until
// the action has signaled Resolve, Cancel or Reject. The whole traversal is
// one outstanding operation that completes exactly once.
//
// Cancellation is self-initiated — an action calls Cancel — there is no
// external token. A panicking action counts as a rejection.

package enumerable

import (
	"fmt"
	"sync"
)

type asyncSignal struct {
	cancel bool
	err    error
}

// AsyncControl is the completion handle passed to each action. Exactly one
// of Resolve, Cancel or Reject must be called; later calls are ignored.
type AsyncControl struct {
	once sync.Once
	ch   chan asyncSignal
}

// Resolve continues the traversal with the next element.
func (c *AsyncControl) Resolve() {
	c.once.Do(func() { c.ch <- asyncSignal{} })
}

// Cancel terminates the traversal early without error.
func (c *AsyncControl) Cancel() {
	c.once.Do(func() { c.ch <- asyncSignal{cancel: true} })
}

// Reject fails the traversal with err.
func (c *AsyncControl) Reject(err error) {
	if err == nil {
		err = fmt.Errorf("async: rejected")
	}
	c.once.Do(func() { c.ch <- asyncSignal{err: err} })
}

// AsyncOperation represents one in-flight asynchronous traversal.
type AsyncOperation struct {
	done      chan struct{}
	once      sync.Once
	err       error
	cancelled bool
}

func (op *AsyncOperation) finish(cancelled bool, err error) {
	op.once.Do(func() {
		op.cancelled = cancelled
		op.err = err
		close(op.done)
	})
}

// Done is closed when the traversal completes, by any outcome.
func (op *AsyncOperation) Done() <-chan struct{} { return op.done }

// Wait blocks until completion and returns the rejection error, or nil for
// a resolved or cancelled traversal.
func (op *AsyncOperation) Wait() error {
	<-op.done
	return op.err
}

// Err returns the rejection error after completion, without blocking
// guarantees; call it after Done or Wait.
func (op *AsyncOperation) Err() error { return op.err }

// Cancelled reports whether an action terminated the traversal early.
func (op *AsyncOperation) Cancelled() bool { return op.cancelled }

// Async starts a sequential asynchronous traversal: action receives each
// element, its zero-based index and a control handle, and must signal the
// handle before the next element is pulled. The traversal resolves when the
// source is exhausted, stops silently on Cancel, and fails with the
// rejection error (or an upstream iteration error) otherwise.
func (s *Sequence) Async(action func(v Value, index int, ctrl *AsyncControl)) *AsyncOperation {
	op := &AsyncOperation{done: make(chan struct{})}
	go func() {
		for {
			v, ok := s.Next()
			if !ok {
				op.finish(false, s.err)
				return
			}
			ctrl := &AsyncControl{ch: make(chan asyncSignal, 1)}
			invokeAsync(action, v, s.index, ctrl)
			sig := <-ctrl.ch
			switch {
			case sig.err != nil:
				op.finish(false, sig.err)
				return
			case sig.cancel:
				op.finish(true, nil)
				return
			}
		}
	}()
	return op
}

// invokeAsync runs the action, turning a panic into a rejection so the
// driver cannot deadlock on a control that is never signaled.
func invokeAsync(action func(Value, int, *AsyncControl), v Value, index int, ctrl *AsyncControl) {
	defer func() {
		if r := recover(); r != nil {
			ctrl.Reject(fmt.Errorf("async action panic at index %d: %v", index, r))
		}
	}()
	action(v, index, ctrl)
}
