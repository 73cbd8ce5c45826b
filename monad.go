// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tasuku

// Continuation chaining over tasks.
//
// Bind is the await operation; Map and Then are derived operations kept as
// optimizations to avoid an intermediate task allocation when the follow-up
// is pure or independent of the first result.
//
// All three short-circuit on failure: an error or panic captured by the
// first task propagates to the combined task's slot and the follow-up never
// runs.

// Bind sequences a task with a continuation body: it awaits t, passes the
// value to fn, and awaits the resulting subtask. The transfer into t and
// into the subtask is tail-style, so chains of arbitrary depth do not grow
// the call stack.
func Bind[A, B any](t *Task[A], fn func(A) *Task[B]) *Task[B] {
	f := newFrame[B]()
	f.step = func() Resumable {
		return awaitIn[B, A](f, t, func() Resumable {
			var sub *Task[B]
			capture(&f.slot, func() {
				v, err := t.Result()
				if err != nil {
					f.slot.storeError(err)
					return
				}
				sub = fn(v)
			})
			if f.slot.filled() {
				return f.finish()
			}
			return awaitIn[B, B](f, sub, func() Resumable {
				moveOutcome[B](&f.slot, sub)
				return f.finish()
			})
		})
	}
	return &Task[B]{f: f}
}

// Map applies a pure function to the result of a task.
// Equivalent to Bind with a body that returns an immediate task, minus the
// extra frame.
func Map[A, B any](t *Task[A], fn func(A) B) *Task[B] {
	f := newFrame[B]()
	f.step = func() Resumable {
		return awaitIn[B, A](f, t, func() Resumable {
			capture(&f.slot, func() {
				v, err := t.Result()
				if err != nil {
					f.slot.storeError(err)
					return
				}
				f.slot.storeValue(fn(v))
			})
			return f.finish()
		})
	}
	return &Task[B]{f: f}
}

// Then sequences two tasks, discarding the first result. The second task is
// not started when the first fails.
func Then[A, B any](t *Task[A], u *Task[B]) *Task[B] {
	f := newFrame[B]()
	f.step = func() Resumable {
		return awaitIn[B, A](f, t, func() Resumable {
			capture(&f.slot, func() {
				if _, err := t.Result(); err != nil {
					f.slot.storeError(err)
				}
			})
			if f.slot.filled() {
				return f.finish()
			}
			return awaitIn[B, B](f, u, func() Resumable {
				moveOutcome[B](&f.slot, u)
				return f.finish()
			})
		})
	}
	return &Task[B]{f: f}
}
