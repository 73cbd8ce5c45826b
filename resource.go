// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tasuku

// Resource safety combinators over tasks: acquire-release-use with
// guaranteed cleanup, and cleanup-on-failure.

// swallow runs fn, dropping an escaping panic. Cleanup paths use it so a
// failing release can never mask the primary outcome already stored.
func swallow(fn func()) {
	defer func() { _ = recover() }()
	fn()
}

// Bracket sequences acquire → use → release, with release guaranteed to
// run once acquisition succeeded, whether use completed, failed, or
// panicked. The combined task yields use's outcome; release's own outcome
// is discarded. If acquire fails, release never runs.
func Bracket[R, A any](
	acquire *Task[R],
	release func(R) *Task[Void],
	use func(R) *Task[A],
) *Task[A] {
	f := newFrame[A]()
	f.step = func() Resumable {
		return awaitIn[A, R](f, acquire, func() Resumable {
			var res R
			capture(&f.slot, func() {
				v, err := acquire.Result()
				if err != nil {
					f.slot.storeError(err)
					return
				}
				res = v
			})
			if f.slot.filled() {
				return f.finish()
			}
			var used *Task[A]
			capture(&f.slot, func() { used = use(res) })
			if used == nil || f.slot.filled() {
				return releaseThen(f, release, res)
			}
			return awaitIn[A, A](f, used, func() Resumable {
				moveOutcome[A](&f.slot, used)
				return releaseThen(f, release, res)
			})
		})
	}
	return &Task[A]{f: f}
}

// releaseThen awaits the release task and finishes with the outcome already
// stored in f's slot.
func releaseThen[R, A any](f *frame[A], release func(R) *Task[Void], res R) Resumable {
	var rel *Task[Void]
	swallow(func() { rel = release(res) })
	if rel == nil {
		return f.finish()
	}
	return awaitIn[A, Void](f, rel, func() Resumable {
		swallow(func() { _, _ = rel.Result() })
		return f.finish()
	})
}

// OnError runs cleanup only when body fails; the failure is re-surfaced
// afterwards. Cleanup receives the stored error, or nil when the failure
// was a captured panic. The cleanup task's own outcome is discarded.
func OnError[A any](body *Task[A], cleanup func(error) *Task[Void]) *Task[A] {
	f := newFrame[A]()
	f.step = func() Resumable {
		return awaitIn[A, A](f, body, func() Resumable {
			moveOutcome[A](&f.slot, body)
			if f.slot.state == slotValue {
				return f.finish()
			}
			var cl *Task[Void]
			swallow(func() { cl = cleanup(f.slot.err) })
			if cl == nil {
				return f.finish()
			}
			return awaitIn[A, Void](f, cl, func() Resumable {
				swallow(func() { _, _ = cl.Result() })
				return f.finish()
			})
		})
	}
	return &Task[A]{f: f}
}
