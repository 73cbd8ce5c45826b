// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tasuku

// frameState tracks a frame through its lifecycle.
// A frame moves strictly forward; done and destroyed are absorbing.
type frameState uint8

const (
	stateCreated frameState = iota
	stateSuspended
	stateDone
	stateDestroyed
)

// destroyable is implemented by awaitables whose backing frame can be torn
// down early. Destroying a frame cascades into whatever it currently awaits.
type destroyable interface {
	Destroy()
}

// frame is the heap-resident state of one in-flight computation: its result
// slot, its continuation (noop until an awaiter attaches), and the body step
// to run at the next resumption. A frame is resumed by exactly one goroutine
// at a time by protocol, so no locking guards its fields.
type frame[T any] struct {
	slot    slot[T]
	cont    Resumable
	notify  Notifier
	awaited destroyable
	state   frameState
	step    func() Resumable
}

func newFrame[T any]() *frame[T] {
	return &frame[T]{cont: noop}
}

// Resume advances the frame's body from its current suspension point.
// Resuming a done or destroyed frame is a no-op true suspension, which is
// what makes destruction absorbing: a late resume from an abandoned worker
// finds nothing left to run.
func (f *frame[T]) Resume() Resumable {
	if f.state == stateDone || f.state == stateDestroyed {
		return nil
	}
	step := f.step
	f.step = nil
	return step()
}

// finish records terminal suspension and performs the terminal action:
// a tail transfer to the recorded continuation, or — when a notifier is
// bound — a plain call into it, after which control returns normally to
// the resuming goroutine.
func (f *frame[T]) finish() Resumable {
	f.state = stateDone
	f.awaited = nil
	if n := f.notify; n != nil {
		logger.Debug("tasuku: completion notified")
		n.NotifyCompletion()
		return nil
	}
	return f.cont
}

// awaitIn arranges for f to await aw, continuing at after once aw reaches
// terminal suspension. The ready fast path skips suspension entirely: an
// already-finished awaitable costs no round trip through the trampoline.
func awaitIn[T, A any](f *frame[T], aw Awaitable[A], after func() Resumable) Resumable {
	if aw.Ready() {
		return after()
	}
	f.state = stateSuspended
	f.step = after
	if d, ok := aw.(destroyable); ok {
		f.awaited = d
	}
	return aw.Suspend(f)
}

// destroy tears the frame down whatever state it is in. Body code past the
// last reached suspension point never runs, and the teardown cascades into
// the awaited frame. A worker goroutine already spawned by an awaited
// offload is not retracted; it keeps running with no observer.
func (f *frame[T]) destroy() {
	if f.state == stateDestroyed {
		return
	}
	f.state = stateDestroyed
	f.step = nil
	f.notify = nil
	if a := f.awaited; a != nil {
		f.awaited = nil
		a.Destroy()
	}
}
