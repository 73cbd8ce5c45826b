// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tasuku

import "sync/atomic"

// Resumption wraps a continuation with one-shot enforcement.
// The continuation can be resumed at most once; subsequent attempts
// panic (Resume) or return false (TryResume).
//
// Every cross-thread reentry into a chain goes through a Resumption: a
// worker goroutine that completed an offload resumes the awaiting frame
// exactly once, and a duplicate resume is a protocol violation rather than
// a silent data race.
type Resumption struct {
	used   atomic.Uintptr
	target Resumable
}

// Once creates a one-shot resumption handle for the given continuation.
func Once(r Resumable) *Resumption {
	return &Resumption{target: r}
}

// Resume drives the wrapped continuation to its next true suspension on the
// calling goroutine. Panics if the handle has already been used.
func (r *Resumption) Resume() {
	if r.used.Add(1) != 1 {
		panic("tasuku: resumption handle resumed twice")
	}
	drive(r.target)
}

// TryResume attempts to drive the wrapped continuation.
// Returns false if the handle has already been used.
func (r *Resumption) TryResume() bool {
	if r.used.Add(1) != 1 {
		return false
	}
	drive(r.target)
	return true
}

// Discard marks the handle as used without resuming.
// The suspended chain is abandoned and will never run further.
func (r *Resumption) Discard() {
	r.used.Store(1)
}
