// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tasuku

// Offload is an awaitable that runs a callable on a worker goroutine and
// resumes the awaiting chain on completion. It never reports ready: an
// offload always suspends, hands control back to the resumer, and reenters
// the chain exactly once through its one-shot resumption handle — the only
// point where control crosses from the worker back into the chain.
type Offload[T any] struct {
	fn   func() (T, error)
	ex   Executor
	slot slot[T]
}

// Async wraps a callable for offloaded execution on the default executor.
// The result is valid only when awaited from inside a computation.
func Async[T any](fn func() (T, error)) *Offload[T] {
	return AsyncOn(defaultExecutor, fn)
}

// AsyncOn wraps a callable for offloaded execution on a specific executor.
func AsyncOn[T any](ex Executor, fn func() (T, error)) *Offload[T] {
	return &Offload[T]{fn: fn, ex: ex}
}

// Ready always reports false: an offload must suspend.
func (o *Offload[T]) Ready() bool { return false }

// Suspend submits the callable to the executor and truly suspends. The
// worker runs the callable, captures its value, error, or escaping panic
// into the result slot, then resumes the chain — on the worker goroutine.
func (o *Offload[T]) Suspend(k Resumable) Resumable {
	h := Once(k)
	logger.Debug("tasuku: offload submitted")
	o.ex.Execute(func() {
		protect(&o.slot, o.fn)
		logger.Debug("tasuku: offload completed")
		h.Resume()
	})
	return nil
}

// Result consumes the callable's outcome: its return value, its error, or
// its re-raised panic.
func (o *Offload[T]) Result() (T, error) {
	return o.slot.take()
}
