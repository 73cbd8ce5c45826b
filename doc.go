// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package tasuku provides a minimal asynchronous-computation runtime:
// lazy single-consumer tasks with continuation chaining, a bridge for
// blocking a synchronous caller on an asynchronous result, and a
// goroutine-offload adapter for CPU-bound or blocking work.
//
// # Design Philosophy
//
// tasuku provides:
//   - A lazy [Task] primitive whose body never runs until awaited
//   - Tail-style control transfer through an explicit trampoline, so chains
//     of arbitrary depth never grow the call stack
//   - Exactly-once result storage: a value, an error, or a captured panic,
//     surfaced exactly once at the first read
//
// # Suspend/Resume Protocol
//
// Every awaitable value implements [Awaitable]: a ready check, a suspend
// step that records the awaiter's continuation and reports what to resume
// next, and a resume step that reads the outcome. [Resumable] is the
// trampoline contract: Resume returns the next entity to resume instead of
// recursing into it, and the driving loop performs the hop.
//
// Frames move strictly forward through their suspension points. Terminal
// suspension is absorbing: once a frame completes (or is destroyed), no
// resumption ever runs body code again.
//
// # Core Operations
//
//   - [New]: Create a lazy task from a body function
//   - [Lift]: Lift any awaitable into a uniform task
//   - [Bind]: Await a task and continue with its value
//   - [Map]: Apply a pure function to a task's result
//   - [Then]: Sequence, discarding the first result
//
// # Bridge
//
//   - [SynchronizedTask]: task variant whose terminal action calls an
//     external [Notifier] instead of resuming a continuation
//   - [Synchronize]: wrap an awaitable for explicit starting
//   - [Wait]: block the calling goroutine on a chain's result — the sole
//     entry point for callers not themselves inside a chain
//
// # Offloading
//
//   - [Async]: run a callable on a worker goroutine; the chain suspends and
//     is resumed on the worker once the callable finishes
//   - [Executor]: pluggable execution strategy; [GoExecutor] spawns one
//     goroutine per callable (the default, unpooled), [PoolExecutor] bounds
//     concurrency with a worker pool
//
// # Concurrency Model
//
// Chaining is single-threaded and cooperative: a task and everything it
// directly awaits run synchronously on whichever goroutine resumed them.
// Exactly two cross-goroutine rendezvous exist: the offload-completion
// resumption (worker into chain, guarded by a one-shot [Resumption]) and
// the blocking-wait semaphore (one release per one acquire). Both act as
// memory-visibility barriers for the result slot.
//
// There is no cancellation token and no timeout. Destroying a task is the
// only way to stop it early: the frame is freed and remaining body code
// never runs, but a worker already spawned by an awaited offload keeps
// running unobserved.
//
// # Errors
//
// A body failure — a returned error or an escaping panic — is captured at
// its escape point into the task's result slot and re-raised exactly once,
// with its original payload, at the first read of the chain's result. If
// the slot is never read, the failure is silently discarded with the frame.
//
// Misuse conditions (awaiting a task twice, reading a result before
// completion, using a destroyed task) are documented preconditions,
// deliberately unchecked at run time.
//
// # Example
//
//	blocking := tasuku.Async(func() (int, error) {
//		return 41, nil // runs on a worker goroutine
//	})
//	sum := tasuku.Bind(tasuku.Lift[int](blocking), func(x int) *tasuku.Task[int] {
//		return tasuku.New(func() (int, error) { return x + 1, nil })
//	})
//	v, err := tasuku.Wait[int](sum)
//	// v == 42, err == nil
package tasuku
