// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tasuku

// Void is the value type for computations that produce no result.
// A Task[Void] carries no payload but still propagates errors.
type Void struct{}

// slotState tags the contents of a result slot.
type slotState uint8

const (
	slotEmpty slotState = iota
	slotValue
	slotError
	slotPanicked
)

// slot is single-write/single-read storage for a computation's outcome:
// a produced value, a returned error, or a panic payload captured at its
// escape point. Each store method may be called at most once, and take
// consumes whatever was stored. Double writes and reads before completion
// are protocol violations, not recoverable states.
type slot[T any] struct {
	state slotState
	value T
	err   error
	pval  any
}

func (s *slot[T]) storeValue(v T) {
	s.value = v
	s.state = slotValue
}

func (s *slot[T]) storeError(err error) {
	s.err = err
	s.state = slotError
}

func (s *slot[T]) storePanic(v any) {
	s.pval = v
	s.state = slotPanicked
}

func (s *slot[T]) filled() bool { return s.state != slotEmpty }

// take consumes the slot: it moves the value out, returns the stored error,
// or re-raises the stored panic with its original payload. Exactly one
// observable read outcome exists per slot; there is no fallback value.
func (s *slot[T]) take() (T, error) {
	switch s.state {
	case slotValue:
		v := s.value
		var zero T
		s.value = zero
		return v, nil
	case slotError:
		var zero T
		return zero, s.err
	case slotPanicked:
		panic(s.pval)
	}
	panic("tasuku: result slot read before completion")
}

// protect runs a body function and stores its outcome in s.
// A panic escaping the body is caught at this boundary and stored instead
// of propagating through the resume machinery.
func protect[T any](s *slot[T], fn func() (T, error)) {
	defer func() {
		if v := recover(); v != nil {
			s.storePanic(v)
		}
	}()
	v, err := fn()
	if err != nil {
		s.storeError(err)
		return
	}
	s.storeValue(v)
}

// capture runs fn, diverting an escaping panic into s.
// Used around user callbacks that run between suspension points.
func capture[T any](s *slot[T], fn func()) {
	defer func() {
		if v := recover(); v != nil {
			s.storePanic(v)
		}
	}()
	fn()
}

// moveOutcome moves aw's outcome into s, whichever channel it arrived on:
// the value is moved, an error is copied, and a re-raised panic is
// re-captured so it surfaces again at the next read.
func moveOutcome[T any](s *slot[T], aw Awaitable[T]) {
	capture(s, func() {
		v, err := aw.Result()
		if err != nil {
			s.storeError(err)
			return
		}
		s.storeValue(v)
	})
}
