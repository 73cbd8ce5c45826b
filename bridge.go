// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tasuku

// Bridge between asynchronous completion and synchronous callers.
//
// A SynchronizedTask's terminal action calls an external notifier instead of
// transferring to a continuation. This is the single mechanism that converts
// a completion event inside a chain into a signal observable by code outside
// it. Wait builds on it with a binary semaphore to give ordinary blocking
// call semantics.

// Notifier receives the completion signal of a SynchronizedTask.
// The notifier is supplied by, and must outlive, the caller of Start; the
// task never owns it.
type Notifier interface {
	NotifyCompletion()
}

// SynchronizedTask is a task variant whose terminal action is a plain call
// to a notifier rather than a resumption transfer: the resuming goroutine's
// control returns normally after the call, it does not hop onward.
type SynchronizedTask[T any] struct {
	f *frame[T]
}

// Synchronize wraps an awaitable into a synchronized task that awaits it
// and stores the outcome. Lazy: nothing runs until Start.
func Synchronize[T any](aw Awaitable[T]) *SynchronizedTask[T] {
	f := newFrame[T]()
	f.step = func() Resumable {
		return awaitIn[T, T](f, aw, func() Resumable {
			moveOutcome[T](&f.slot, aw)
			return f.finish()
		})
	}
	return &SynchronizedTask[T]{f: f}
}

// Start binds the notifier and resumes the frame immediately, running the
// chain until its next true suspension — typically straight to terminal
// suspension, unless the wrapped awaitable hands its work to another
// goroutine. The notifier is called exactly once, on whichever goroutine
// completes the chain.
func (st *SynchronizedTask[T]) Start(n Notifier) {
	logger.Debug("tasuku: synchronized task started")
	st.f.notify = n
	drive(st.f)
}

// Result consumes the stored outcome. Valid only after the notifier passed
// to Start has been observed to fire.
func (st *SynchronizedTask[T]) Result() (T, error) {
	return st.f.slot.take()
}

// Destroy frees the frame whatever state it is in.
func (st *SynchronizedTask[T]) Destroy() {
	st.f.destroy()
}

// semaphore is the binary semaphore backing Wait: one release paired with
// one acquire, single waiter. The channel handoff is the memory-visibility
// barrier between the completing goroutine's slot write and the waiter's
// read.
type semaphore chan struct{}

func (s semaphore) NotifyCompletion() { s <- struct{}{} }

func (s semaphore) acquire() { <-s }

// Wait blocks the calling goroutine until the awaitable resolves, then
// returns its value or re-raises its failure. It is the sole entry point
// for callers not themselves inside a chain. No polling is involved, and
// no timeout exists: a chain that never completes blocks forever.
func Wait[T any](aw Awaitable[T]) (T, error) {
	st := Synchronize(aw)
	defer st.Destroy()
	done := make(semaphore, 1)
	st.Start(done)
	done.acquire()
	return st.Result()
}
