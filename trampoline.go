// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tasuku

// Resumable is the contract for anything the trampoline can advance.
//
// Resume runs the entity up to its next suspension point and reports what to
// resume next. Returning the next entity instead of resuming it recursively
// keeps chain depth off the call stack: the driving loop performs the hop.
// A nil result is a true suspension — the loop stops and control returns to
// whoever initiated the resumption.
type Resumable interface {
	Resume() Resumable
}

// noopResumable is the sentinel continuation installed in every frame at
// construction time. Finishing a frame that nothing awaits transfers here,
// which immediately ends the drive loop. Using a sentinel instead of a nil
// continuation keeps the terminal transfer branch-free.
type noopResumable struct{}

func (noopResumable) Resume() Resumable { return nil }

var noop Resumable = noopResumable{}

// drive is the trampoline loop. It repeatedly resumes until a true
// suspension is reached. Tail-style control transfer: each hop replaces the
// previous one, so a chain of any depth consumes constant stack.
func drive(r Resumable) {
	for r != nil {
		r = r.Resume()
	}
}
