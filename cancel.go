// +build linux

package iouring

import "github.com/ringcore/iouring/internal/sys"

// Cancel requests cancellation of the operation identified by target,
// a token previously returned from a submit call. Cancellation is
// best-effort: the original op still completes on its own, typically
// with -ECANCELED, and this op's completion reports whether the cancel
// landed.
func (r *Ring) Cancel(target uint64, cb Callback, state interface{}) (uint64, error) {
	entry := sys.SubmitEntry{
		Opcode: sys.AsyncCancel,
		Fd:     -1,
		Addr:   target,
	}
	return r.stage(entry, cb, state)
}
