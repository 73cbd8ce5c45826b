// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tasuku

// Awaitable is the contract for values a computation can await.
// It is the explicit form of the suspend/resume protocol:
//
//  1. Ready reports whether the result is already available, letting the
//     awaiter skip suspension entirely.
//  2. Suspend records the awaiter's resumption handle as the continuation
//     and returns what to resume next — typically the awaitable's own frame,
//     a tail transfer that the trampoline performs without stack growth.
//     A nil return is a true suspension (the result will arrive from
//     another goroutine).
//  3. Result retrieves the outcome. Valid only once the awaitable has
//     completed; it consumes the stored value or re-raises the stored
//     failure.
type Awaitable[T any] interface {
	Ready() bool
	Suspend(k Resumable) Resumable
	Result() (T, error)
}

// Task is a lazy computation producing a value of type T.
// Constructing a Task never runs body code; execution starts when the task
// is first awaited (or started through the synchronization bridge).
//
// A Task exclusively owns its frame and is single-consumer: at most one
// continuation may ever be attached, and the result may be read at most
// once. These are documented preconditions, deliberately unchecked — the
// composition layer adds no runtime bookkeeping to enforce them.
type Task[T any] struct {
	f *frame[T]
}

// New creates a task from a plain body function. The body runs when the
// task is first resumed; a returned error or an escaping panic is captured
// into the result slot and surfaces at the first read.
func New[T any](fn func() (T, error)) *Task[T] {
	f := newFrame[T]()
	f.step = func() Resumable {
		protect(&f.slot, fn)
		return f.finish()
	}
	return &Task[T]{f: f}
}

// Lift wraps an arbitrary awaitable into a uniform Task. The lifted task
// awaits the awaitable and stores its outcome, letting heterogeneous
// awaitables be stored and returned through one type.
func Lift[T any](aw Awaitable[T]) *Task[T] {
	f := newFrame[T]()
	f.step = func() Resumable {
		return awaitIn[T, T](f, aw, func() Resumable {
			moveOutcome[T](&f.slot, aw)
			return f.finish()
		})
	}
	return &Task[T]{f: f}
}

// Ready reports whether the task's frame has reached terminal suspension.
func (t *Task[T]) Ready() bool {
	return t.f.state == stateDone
}

// Suspend records k as this task's continuation and hands control to the
// task's own frame: the trampoline resumes it next, running the body until
// it completes or truly suspends.
func (t *Task[T]) Suspend(k Resumable) Resumable {
	t.f.cont = k
	return t.f
}

// Result consumes the task's outcome: the value is moved out, a captured
// error is returned, a captured panic is re-raised with its original
// payload. Valid only after the task has completed.
func (t *Task[T]) Result() (T, error) {
	return t.f.slot.take()
}

// Destroy frees the task's frame whatever state it is in. If the frame has
// not reached terminal suspension, body code past the last reached
// suspension point never runs and the result is discarded. This is the only
// way to stop an in-flight task early; it cannot retract a worker
// goroutine an awaited offload already spawned.
func (t *Task[T]) Destroy() {
	logger.Debug("tasuku: task destroyed")
	t.f.destroy()
}
